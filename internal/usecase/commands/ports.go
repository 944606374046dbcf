package commands

import (
	"dryclean-api/internal/domain/customer"
	"dryclean-api/internal/pkg/jwt"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// TokenIssuer is satisfied by *jwt.Service.
type TokenIssuer interface {
	GenerateAccessToken(customerID int64, role customer.Role) (string, error)
	GenerateResetToken(customerID int64) (string, error)
	ValidateResetToken(token string) (*jwt.Claims, error)
}
