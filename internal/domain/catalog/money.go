package catalog

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// MaxAmount is the largest value a NUMERIC(10,2) price or total column holds.
var MaxAmount = NewMoney(9_999_999_999)

// Money is a TL amount rounded to kuruş (1/100 TL).
type Money struct {
	amount decimal.Decimal
}

func NewMoney(kurus int64) Money {
	return Money{amount: decimal.New(kurus, -2)}
}

func TL(lira int64) Money {
	return FromDecimal(decimal.NewFromInt(lira))
}

// FromDecimal rounds half away from zero to kuruş.
func FromDecimal(d decimal.Decimal) Money {
	return Money{amount: d.Round(2)}
}

// ParseMoney accepts plain decimal notation with "." or "," as the separator. Exponents,
// signs and amounts above MaxAmount are rejected.
func ParseMoney(raw string) (Money, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if !isPlainDecimal(s) {
		return Money{}, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}

	m := FromDecimal(d)
	if m.GreaterThan(MaxAmount) {
		return Money{}, ErrInvalidAmount
	}
	return m, nil
}

func isPlainDecimal(s string) bool {
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Kurus is only exact for amounts within the int64 kuruş range.
func (m Money) Kurus() int64 {
	return m.amount.Shift(2).IntPart()
}

func (m Money) Lira() float64 {
	return m.amount.InexactFloat64()
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Mul(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// String renders whole amounts without decimals ("160") and the rest with two ("85.50").
func (m Money) String() string {
	if m.amount.IsInteger() {
		return m.amount.StringFixed(0)
	}
	return m.amount.StringFixed(2)
}
