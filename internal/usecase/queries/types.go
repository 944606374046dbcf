package queries

import (
	"time"

	"dryclean-api/internal/domain/catalog"
)

// PriceItemView is one labelled catalog entry
type PriceItemView struct {
	Key   string        `json:"key"`
	Label string        `json:"label"`
	Price catalog.Money `json:"price"`
}

type CatalogView struct {
	Products []PriceItemView `json:"products"`
	Services []PriceItemView `json:"services"`
	BagPrice catalog.Money   `json:"bag_price"`
}

// CustomerOrderView is an order as its owner sees it
type CustomerOrderView struct {
	ID               int64         `json:"id"`
	Code             string        `json:"code"`
	BranchName       string        `json:"branch_name"`
	BranchCity       string        `json:"branch_city"`
	Status           string        `json:"status"`
	StatusMessage    string        `json:"status_message"`
	PaymentMethod    string        `json:"payment_method"`
	Description      string        `json:"-"`
	DescriptionLines []string      `json:"description_lines"`
	Total            catalog.Money `json:"total"`
	CreatedAt        time.Time     `json:"created_at"`
}

// AdminOrderView adds the customer columns shown on the admin screens
type AdminOrderView struct {
	ID               int64         `json:"id"`
	Code             string        `json:"code"`
	CustomerName     string        `json:"customer_name"`
	CustomerPhone    *string       `json:"customer_phone,omitempty"`
	BranchName       string        `json:"branch_name"`
	BranchCity       string        `json:"branch_city"`
	Status           string        `json:"status"`
	StatusMessage    string        `json:"status_message"`
	PaymentMethod    string        `json:"payment_method"`
	Description      string        `json:"-"`
	DescriptionLines []string      `json:"description_lines"`
	Total            catalog.Money `json:"total"`
	CreatedAt        time.Time     `json:"created_at"`
}

type AdminOrderPage struct {
	Orders        []*AdminOrderView `json:"orders"`
	Page          int               `json:"page"`
	PerPage       int               `json:"per_page"`
	TotalPages    int               `json:"total_pages"`
	TotalCount    int64             `json:"total_count"`
	StatusOptions []string          `json:"status_options"`
}

type TrackedOrderView struct {
	ID               int64         `json:"id"`
	Code             string        `json:"code"`
	BranchName       string        `json:"branch_name"`
	BranchCity       string        `json:"branch_city"`
	Status           string        `json:"status"`
	StatusMessage    string        `json:"status_message"`
	Description      string        `json:"-"`
	DescriptionLines []string      `json:"description_lines"`
	Total            catalog.Money `json:"total"`
	CreatedAt        time.Time     `json:"created_at"`
}

type DashboardView struct {
	TotalCustomers int64             `json:"total_customers"`
	TotalOrders    int64             `json:"total_orders"`
	Revenue        catalog.Money     `json:"revenue"`
	RecentOrders   []*AdminOrderView `json:"recent_orders"`
}

type BranchView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Address   *string   `json:"address,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerView never carries the password hash
type CustomerView struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactMessageView struct {
	ID        int64     `json:"id"`
	Name      *string   `json:"name,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
