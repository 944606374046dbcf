package response

import (
	"time"

	"dryclean-api/internal/domain/order"
	"dryclean-api/internal/usecase/commands"
	"dryclean-api/internal/usecase/queries"
)

type CustomerOrderResponse struct {
	ID               int64     `json:"id"`
	Code             string    `json:"code"`
	BranchName       string    `json:"branchName"`
	BranchCity       string    `json:"branchCity"`
	Status           string    `json:"status"`
	StatusMessage    string    `json:"statusMessage"`
	PaymentMethod    string    `json:"paymentMethod"`
	DescriptionLines []string  `json:"descriptionLines"`
	Total            float64   `json:"total"`
	CreatedAt        time.Time `json:"createdAt"`
}

type AdminOrderResponse struct {
	ID               int64     `json:"id"`
	Code             string    `json:"code"`
	CustomerName     string    `json:"customerName"`
	CustomerPhone    *string   `json:"customerPhone,omitempty"`
	BranchName       string    `json:"branchName"`
	BranchCity       string    `json:"branchCity"`
	Status           string    `json:"status"`
	StatusMessage    string    `json:"statusMessage"`
	PaymentMethod    string    `json:"paymentMethod"`
	DescriptionLines []string  `json:"descriptionLines"`
	Total            float64   `json:"total"`
	CreatedAt        time.Time `json:"createdAt"`
}

type AdminOrderPageResponse struct {
	Orders        []AdminOrderResponse `json:"orders"`
	Page          int                  `json:"page"`
	PerPage       int                  `json:"perPage"`
	TotalPages    int                  `json:"totalPages"`
	TotalCount    int64                `json:"totalCount"`
	StatusOptions []string             `json:"statusOptions"`
}

type TrackedOrderResponse struct {
	ID               int64     `json:"id"`
	Code             string    `json:"code"`
	BranchName       string    `json:"branchName"`
	BranchCity       string    `json:"branchCity"`
	Status           string    `json:"status"`
	StatusMessage    string    `json:"statusMessage"`
	DescriptionLines []string  `json:"descriptionLines"`
	Total            float64   `json:"total"`
	CreatedAt        time.Time `json:"createdAt"`
}

type DashboardResponse struct {
	TotalCustomers int64                `json:"totalCustomers"`
	TotalOrders    int64                `json:"totalOrders"`
	Revenue        float64              `json:"revenue"`
	RecentOrders   []AdminOrderResponse `json:"recentOrders"`
}

type CreateOrderResponse struct {
	ID    int64   `json:"id"`
	Code  string  `json:"code"`
	Total float64 `json:"total"`
}

type QuoteLineResponse struct {
	Product      string  `json:"product"`
	ProductLabel string  `json:"productLabel"`
	Service      string  `json:"service"`
	ServiceLabel string  `json:"serviceLabel"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	Subtotal     float64 `json:"subtotal"`
}

type QuoteResponse struct {
	Lines    []QuoteLineResponse `json:"lines"`
	BagCount int                 `json:"bagCount"`
	BagPrice float64             `json:"bagPrice"`
	BagTotal float64             `json:"bagTotal"`
	Total    float64             `json:"total"`
}

type UpdateStatusResponse struct {
	OrderID       int64  `json:"orderId"`
	Status        string `json:"status"`
	StatusMessage string `json:"statusMessage"`
	Changed       bool   `json:"changed"`
}

func FromCustomerOrders(views []*queries.CustomerOrderView) ([]CustomerOrderResponse, error) {
	out, err := copyView[[]CustomerOrderResponse](views)
	if out == nil {
		out = []CustomerOrderResponse{}
	}
	return out, err
}

func FromAdminOrderPage(p *queries.AdminOrderPage) (*AdminOrderPageResponse, error) {
	out, err := copyView[AdminOrderPageResponse](p)
	if err != nil {
		return nil, err
	}
	if out.Orders == nil {
		out.Orders = []AdminOrderResponse{}
	}
	return &out, nil
}

func FromTrackedOrder(v *queries.TrackedOrderView) (*TrackedOrderResponse, error) {
	out, err := copyView[TrackedOrderResponse](v)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func FromDashboard(v *queries.DashboardView) (*DashboardResponse, error) {
	out, err := copyView[DashboardResponse](v)
	if err != nil {
		return nil, err
	}
	if out.RecentOrders == nil {
		out.RecentOrders = []AdminOrderResponse{}
	}
	return &out, nil
}

func FromCreateOrderResult(r *commands.CreateOrderResult) *CreateOrderResponse {
	return &CreateOrderResponse{
		ID:    r.ID,
		Code:  r.Code,
		Total: r.Total.Lira(),
	}
}

func FromQuote(q *order.Quote) *QuoteResponse {
	lines := make([]QuoteLineResponse, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, QuoteLineResponse{
			Product:      l.Product.String(),
			ProductLabel: l.Product.Label(),
			Service:      l.Service.String(),
			ServiceLabel: l.Service.Label(),
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice.Lira(),
			Subtotal:     l.Subtotal.Lira(),
		})
	}
	return &QuoteResponse{
		Lines:    lines,
		BagCount: q.BagCount,
		BagPrice: q.BagPrice.Lira(),
		BagTotal: q.BagTotal.Lira(),
		Total:    q.Total.Lira(),
	}
}

func FromUpdateStatusResult(r *commands.UpdateStatusResult) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		OrderID:       r.OrderID,
		Status:        r.Status.String(),
		StatusMessage: r.Status.Message(),
		Changed:       r.Changed,
	}
}
