package order

import (
	"errors"
	"strconv"
	"strings"

	"dryclean-api/internal/domain/catalog"
)

var (
	ErrEmptyCart        = errors.New("at least one item or laundry bag must be selected")
	ErrQuantityTooLarge = errors.New("quantity exceeds the per-line limit")
	ErrBagCountTooLarge = errors.New("bag count exceeds the per-order limit")
	ErrTotalTooLarge    = errors.New("order total exceeds the storable maximum")
)

const (
	MaxQuantity = 999
	MaxBagCount = 99
)

// LineRequest is one cart row as submitted. Quantity is kept raw.
type LineRequest struct {
	Product  catalog.ProductKey
	Quantity string
	Service  catalog.ServiceKey
}

type PricedLine struct {
	Product   catalog.ProductKey
	Service   catalog.ServiceKey
	Quantity  int
	UnitPrice catalog.Money
	Subtotal  catalog.Money
}

type Quote struct {
	Lines    []PricedLine
	BagCount int
	BagPrice catalog.Money
	BagTotal catalog.Money
	Total    catalog.Money
}

type PriceCalculator interface {
	Quote(prices *catalog.PriceCatalog, lines []LineRequest, bagCount int) (Quote, error)
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

// Quote skips lines the customer did not order (bad or non-positive quantity, or
// ServiceNone) and fails with ErrEmptyCart when nothing is left to charge. Quantities,
// bag counts and totals past their limits are refused rather than clamped.
func (pc *DefaultPriceCalculator) Quote(prices *catalog.PriceCatalog, lines []LineRequest, bagCount int) (Quote, error) {
	q := Quote{
		Lines:    make([]PricedLine, 0, len(lines)),
		BagPrice: prices.BagPrice(),
	}

	for _, l := range lines {
		qty := ParseQuantity(l.Quantity)
		if qty <= 0 || l.Service == catalog.ServiceNone {
			continue
		}
		if qty > MaxQuantity {
			return Quote{}, ErrQuantityTooLarge
		}

		unit := prices.UnitPrice(l.Product, l.Service)
		subtotal := unit.Mul(qty)
		q.Lines = append(q.Lines, PricedLine{
			Product:   l.Product,
			Service:   l.Service,
			Quantity:  qty,
			UnitPrice: unit,
			Subtotal:  subtotal,
		})
		q.Total = q.Total.Add(subtotal)
	}

	if bagCount > MaxBagCount {
		return Quote{}, ErrBagCountTooLarge
	}
	if bagCount > 0 {
		q.BagCount = bagCount
		q.BagTotal = prices.BagPrice().Mul(bagCount)
		q.Total = q.Total.Add(q.BagTotal)
	}

	if q.Total.IsZero() {
		return Quote{}, ErrEmptyCart
	}
	if q.Total.GreaterThan(catalog.MaxAmount) {
		return Quote{}, ErrTotalTooLarge
	}

	return q, nil
}

// ParseQuantity returns 0 for blank or non-integer input. Integers too large for int
// come back as MaxQuantity+1 so the caller refuses them.
func ParseQuantity(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(s, "-") {
		return MaxQuantity + 1
	}
	if err != nil {
		return 0
	}
	return n
}
