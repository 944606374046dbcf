package customer

import (
	"time"
)

// Customer is an account; administrators share the table with role admin.
type Customer struct {
	id           int64
	fullName     string
	email        *Email
	phone        *Phone
	passwordHash string
	role         Role
	createdAt    time.Time
}

// NewCustomer registers a self-service account. Email and phone are both mandatory at
// registration even though stored rows may lack either.
func NewCustomer(fullName string, email Email, phone Phone, passwordHash string, now time.Time) *Customer {
	return &Customer{
		fullName:     fullName,
		email:        &email,
		phone:        &phone,
		passwordHash: passwordHash,
		role:         RoleCustomer,
		createdAt:    now,
	}
}

func ReconstructCustomer(id int64, fullName string, email *Email, phone *Phone, passwordHash string, role Role, createdAt time.Time) *Customer {
	return &Customer{
		id:           id,
		fullName:     fullName,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

// IsAdmin reports whether the account may use the admin login for adminEmail.
func (c *Customer) IsAdmin(adminEmail string) bool {
	if c.role != RoleAdmin || c.email == nil {
		return false
	}
	return adminEmail != "" && c.email.Value() == adminEmail
}

func (c *Customer) ChangePasswordHash(hash string) {
	c.passwordHash = hash
}

func (c *Customer) ID() int64            { return c.id }
func (c *Customer) FullName() string     { return c.fullName }
func (c *Customer) Email() *Email        { return c.email }
func (c *Customer) Phone() *Phone        { return c.phone }
func (c *Customer) PasswordHash() string { return c.passwordHash }
func (c *Customer) Role() Role           { return c.role }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) AssignID(id int64)    { c.id = id }
