package request

import (
	"dryclean-api/internal/domain/catalog"
	"dryclean-api/internal/domain/order"
	"dryclean-api/internal/usecase/commands"
)

// OrderLine keeps quantity as text; unparsable or non-positive values skip the line.
type OrderLine struct {
	Product  string `json:"product" binding:"required"`
	Quantity string `json:"quantity"`
	Service  string `json:"service"`
}

type QuoteRequest struct {
	Items    []OrderLine `json:"items" binding:"dive"`
	BagCount string      `json:"bagCount"`
}

func (r *QuoteRequest) LineRequests() []order.LineRequest {
	return toLineRequests(r.Items)
}

type CreateOrderRequest struct {
	Branch        string      `json:"branch"`
	Address       string      `json:"address"`
	PaymentMethod string      `json:"paymentMethod"`
	Items         []OrderLine `json:"items" binding:"dive"`
	BagCount      string      `json:"bagCount"`
}

func (r *CreateOrderRequest) ToCommand() commands.CreateOrderRequest {
	return commands.CreateOrderRequest{
		Branch:        r.Branch,
		Address:       r.Address,
		PaymentMethod: r.PaymentMethod,
		Lines:         toLineRequests(r.Items),
		BagCount:      r.BagCount,
	}
}

type TrackOrderRequest struct {
	Code  string `json:"code"`
	Phone string `json:"phone"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func toLineRequests(items []OrderLine) []order.LineRequest {
	lines := make([]order.LineRequest, 0, len(items))
	for _, it := range items {
		lines = append(lines, order.LineRequest{
			Product:  catalog.ProductKey(it.Product),
			Quantity: it.Quantity,
			Service:  catalog.ServiceKey(it.Service),
		})
	}
	return lines
}
