package jwt

import (
	"errors"
	"time"

	"dryclean-api/internal/domain/customer"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token expired")
	ErrWrongTokenType = errors.New("unexpected token type")
)

const (
	TokenTypeAccess        = "access"
	TokenTypePasswordReset = "password_reset"
)

type Claims struct {
	CustomerID int64  `json:"customer_id"`
	Role       string `json:"role"`
	TokenType  string `json:"token_type"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey      []byte
	accessDuration time.Duration
	resetDuration  time.Duration
	now            func() time.Time
}

func NewService(secretKey string, accessDuration, resetDuration time.Duration) *Service {
	return &Service{
		secretKey:      []byte(secretKey),
		accessDuration: accessDuration,
		resetDuration:  resetDuration,
		now:            time.Now,
	}
}

func (s *Service) AccessDuration() time.Duration {
	return s.accessDuration
}

func (s *Service) GenerateAccessToken(customerID int64, role customer.Role) (string, error) {
	return s.sign(customerID, role.String(), TokenTypeAccess, s.accessDuration)
}

// GenerateResetToken proves a reset code was verified; it carries no role.
func (s *Service) GenerateResetToken(customerID int64) (string, error) {
	return s.sign(customerID, "", TokenTypePasswordReset, s.resetDuration)
}

func (s *Service) sign(customerID int64, role, tokenType string, d time.Duration) (string, error) {
	now := s.now()
	claims := Claims{
		CustomerID: customerID,
		Role:       role,
		TokenType:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(d)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken accepts access tokens only.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	return s.validate(tokenString, TokenTypeAccess)
}

func (s *Service) ValidateResetToken(tokenString string) (*Claims, error) {
	return s.validate(tokenString, TokenTypePasswordReset)
}

func (s *Service) validate(tokenString, tokenType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != tokenType {
		return nil, ErrWrongTokenType
	}

	return claims, nil
}
