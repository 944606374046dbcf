//go:build unit || e2e

package builder

import (
	"time"

	"dryclean-api/internal/domain/customer"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
	"dryclean-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type CustomerBuilder struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Password     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:           1,
		FirstName:    "Ayşe",
		LastName:     "Yılmaz",
		Email:        "ayse@example.com",
		Phone:        "0555 111 22 33",
		Password:     "sifre1234",
		PasswordHash: "hashed_password",
		Role:         string(customer.RoleCustomer),
		CreatedAt:    time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (c *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(c)
	return c
}

func (c *CustomerBuilder) AsAdmin(email string) *CustomerBuilder {
	c.Email = email
	c.Role = string(customer.RoleAdmin)
	return c
}

// Build methods
func (c *CustomerBuilder) BuildDomain() (*customer.Customer, error) {
	email, err := customer.NewEmail(c.Email)
	if err != nil {
		return nil, err
	}
	phone, err := customer.NewPhone(c.Phone)
	if err != nil {
		return nil, err
	}
	if _, err := customer.NewPassword(c.Password, customer.DefaultMinPasswordLength); err != nil {
		return nil, err
	}
	fullName, err := customer.FullName(c.FirstName, c.LastName)
	if err != nil {
		return nil, err
	}

	return customer.NewCustomer(fullName, email, phone, c.PasswordHash, c.CreatedAt), nil
}

func (c *CustomerBuilder) FullName() string {
	return c.FirstName + " " + c.LastName
}

func (c *CustomerBuilder) BuildSnapshot() *shared.CustomerSnapshot {
	email := c.Email
	phone := customer.NormalizePhone(c.Phone)
	return &shared.CustomerSnapshot{
		ID:           c.ID,
		FullName:     c.FullName(),
		Email:        &email,
		Phone:        &phone,
		PasswordHash: c.PasswordHash,
		Role:         c.Role,
	}
}

func (c *CustomerBuilder) BuildInfra() sqlc.Customers {
	return sqlc.Customers{
		ID:           c.ID,
		FullName:     c.FullName(),
		Email:        pgtype.Text{String: c.Email, Valid: c.Email != ""},
		Phone:        pgtype.Text{String: customer.NormalizePhone(c.Phone), Valid: c.Phone != ""},
		PasswordHash: c.PasswordHash,
		Role:         c.Role,
		CreatedAt:    pgtype.Timestamptz{Time: c.CreatedAt, Valid: true},
	}
}
