package password

import (
	"errors"

	"dryclean-api/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errs.New("password hashing failed")
	ErrComparisonFailed = errs.New("password comparison failed")
	ErrInvalidPassword  = errs.New("invalid password")
	// bcrypt only reads the first 72 bytes; longer input is refused instead of truncated
	ErrTooLong = errs.New("password longer than 72 bytes")
)

var cost = bcrypt.DefaultCost

// SetCostForTesting lowers the bcrypt cost until restore runs.
func SetCostForTesting(c int) (restore func()) {
	prev := cost
	cost = c
	return func() { cost = prev }
}

func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrInvalidPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	switch {
	case errors.Is(err, bcrypt.ErrPasswordTooLong):
		return "", ErrTooLong
	case err != nil:
		return "", errs.Mark(errs.Wrap(err, "bcrypt"), ErrHashingFailed)
	}
	return string(hash), nil
}

// ComparePassword returns ErrComparisonFailed for a wrong password and a wrapped error for a corrupt hash.
func ComparePassword(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrInvalidPassword
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	default:
		return errs.Wrap(err, "compare password hash")
	}
}
