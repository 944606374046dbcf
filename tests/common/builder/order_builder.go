//go:build unit || e2e

package builder

import (
	"strconv"
	"time"

	"dryclean-api/internal/domain/catalog"
	"dryclean-api/internal/domain/order"
	reqdto "dryclean-api/internal/handler/dto/request"
	"dryclean-api/internal/usecase/queries"
)

type OrderBuilder struct {
	CustomerID    int64
	BranchID      int64
	Branch        string
	Address       string
	PaymentMethod string
	Lines         []order.LineRequest
	BagCount      int
	Catalog       *catalog.PriceCatalog
	CreatedAt     time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		CustomerID:    1,
		BranchID:      1,
		Branch:        "İstanbul - Kadıköy",
		Address:       "Moda Cad. No:1",
		PaymentMethod: "kapida",
		Lines: []order.LineRequest{
			{Product: catalog.ProductShirt, Quantity: "2", Service: catalog.ServiceWashDry},
		},
		Catalog:   catalog.Default(),
		CreatedAt: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

func (o *OrderBuilder) WithLines(lines ...order.LineRequest) *OrderBuilder {
	o.Lines = lines
	return o
}

func (o *OrderBuilder) WithBags(n int) *OrderBuilder {
	o.BagCount = n
	return o
}

func (o *OrderBuilder) WithCatalog(c *catalog.PriceCatalog) *OrderBuilder {
	o.Catalog = c
	return o
}

func (o *OrderBuilder) Header() order.Header {
	return order.Header{Branch: o.Branch, Address: o.Address, PaymentMethod: o.PaymentMethod}
}

// Build methods
func (o *OrderBuilder) BuildQuote() (order.Quote, error) {
	return order.NewDefaultPriceCalculator().Quote(o.Catalog, o.Lines, o.BagCount)
}

func (o *OrderBuilder) BuildDomain() (*order.Order, error) {
	q, err := o.BuildQuote()
	if err != nil {
		return nil, err
	}
	return order.NewOrder(o.CustomerID, o.BranchID, o.Header(), q, o.CreatedAt)
}

func (o *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	items := make([]reqdto.OrderLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		items = append(items, reqdto.OrderLine{
			Product:  string(l.Product),
			Quantity: l.Quantity,
			Service:  string(l.Service),
		})
	}
	return reqdto.CreateOrderRequest{
		Branch:        o.Branch,
		Address:       o.Address,
		PaymentMethod: o.PaymentMethod,
		Items:         items,
		BagCount:      strconv.Itoa(o.BagCount),
	}
}

// BuildAdminView mirrors what the order queries return after decoration.
func (o *OrderBuilder) BuildAdminView(id int64) *queries.AdminOrderView {
	q, _ := o.BuildQuote()
	desc := order.Describe(o.Header(), q)
	phone := "05551112233"
	return &queries.AdminOrderView{
		ID:               id,
		Code:             order.FormatCode(id),
		CustomerName:     "Ayşe Yılmaz",
		CustomerPhone:    &phone,
		BranchName:       "Kadıköy",
		BranchCity:       "İstanbul",
		Status:           order.StatusReceived.String(),
		StatusMessage:    order.StatusReceived.Message(),
		PaymentMethod:    o.PaymentMethod,
		Description:      desc,
		DescriptionLines: order.SplitDescription(desc),
		Total:            q.Total,
		CreatedAt:        o.CreatedAt,
	}
}

func (o *OrderBuilder) BuildCustomerView(id int64) *queries.CustomerOrderView {
	v := o.BuildAdminView(id)
	return &queries.CustomerOrderView{
		ID:               v.ID,
		Code:             v.Code,
		BranchName:       v.BranchName,
		BranchCity:       v.BranchCity,
		Status:           v.Status,
		StatusMessage:    v.StatusMessage,
		PaymentMethod:    v.PaymentMethod,
		Description:      v.Description,
		DescriptionLines: v.DescriptionLines,
		Total:            v.Total,
		CreatedAt:        v.CreatedAt,
	}
}
