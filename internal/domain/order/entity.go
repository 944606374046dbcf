package order

import (
	"errors"
	"strings"
	"time"

	"dryclean-api/internal/domain/catalog"
)

var (
	ErrInvalidCustomer = errors.New("order requires a customer")
	ErrInvalidBranch   = errors.New("order requires a branch")
)

const DefaultPaymentMethod = "kapida"

// Order is created at checkout; only its status changes afterwards and it is never
// deleted.
type Order struct {
	id            int64
	customerID    int64
	branchID      int64
	status        Status
	paymentMethod string
	description   string
	total         catalog.Money
	lines         []PricedLine
	createdAt     time.Time
}

func NewOrder(customerID, branchID int64, h Header, q Quote, now time.Time) (*Order, error) {
	if customerID <= 0 {
		return nil, ErrInvalidCustomer
	}
	if branchID <= 0 {
		return nil, ErrInvalidBranch
	}
	if q.Total.IsZero() {
		return nil, ErrEmptyCart
	}

	h.PaymentMethod = NormalizePaymentMethod(h.PaymentMethod)

	lines := make([]PricedLine, len(q.Lines))
	copy(lines, q.Lines)

	return &Order{
		customerID:    customerID,
		branchID:      branchID,
		status:        StatusReceived,
		paymentMethod: h.PaymentMethod,
		description:   Describe(h, q),
		total:         q.Total,
		lines:         lines,
		createdAt:     now,
	}, nil
}

func ReconstructOrder(id, customerID, branchID int64, status Status, paymentMethod, description string, total catalog.Money, createdAt time.Time) *Order {
	return &Order{
		id:            id,
		customerID:    customerID,
		branchID:      branchID,
		status:        status,
		paymentMethod: paymentMethod,
		description:   description,
		total:         total,
		createdAt:     createdAt,
	}
}

func NormalizePaymentMethod(raw string) string {
	if s := strings.TrimSpace(raw); s != "" {
		return s
	}
	return DefaultPaymentMethod
}

func (o *Order) ID() int64                  { return o.id }
func (o *Order) Code() string               { return FormatCode(o.id) }
func (o *Order) CustomerID() int64          { return o.customerID }
func (o *Order) BranchID() int64            { return o.branchID }
func (o *Order) Status() Status             { return o.status }
func (o *Order) PaymentMethod() string      { return o.paymentMethod }
func (o *Order) Description() string        { return o.description }
func (o *Order) Total() catalog.Money       { return o.total }
func (o *Order) Lines() []PricedLine        { return o.lines }
func (o *Order) CreatedAt() time.Time       { return o.createdAt }
func (o *Order) AssignID(id int64)          { o.id = id }
func (o *Order) StatusMessage() string      { return MessageFor(string(o.status)) }
func (o *Order) DescriptionLines() []string { return SplitDescription(o.description) }
