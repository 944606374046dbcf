package resetcode

import (
	"errors"
	"time"
)

var ErrInvalidTTL = errors.New("reset code ttl must be positive")

// DefaultTTL is how long an issued code stays valid.
const DefaultTTL = 10 * time.Minute

// ResetCode is a single-use, time-limited password reset code.
// Several codes may be live for one customer at once.
type ResetCode struct {
	id         int64
	customerID int64
	code       string
	expiresAt  time.Time
	used       bool
	createdAt  time.Time
}

func NewResetCode(customerID int64, code string, now time.Time, ttl time.Duration) (*ResetCode, error) {
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	if !IsWellFormed(code) {
		return nil, ErrInvalidCode
	}
	return &ResetCode{
		customerID: customerID,
		code:       code,
		expiresAt:  now.Add(ttl),
		createdAt:  now,
	}, nil
}

func ReconstructResetCode(id, customerID int64, code string, expiresAt time.Time, used bool, createdAt time.Time) *ResetCode {
	return &ResetCode{
		id:         id,
		customerID: customerID,
		code:       code,
		expiresAt:  expiresAt,
		used:       used,
		createdAt:  createdAt,
	}
}

// IsUsable reports whether the code may still be consumed at now.
func (r *ResetCode) IsUsable(now time.Time) bool {
	return !r.used && now.Before(r.expiresAt)
}

func (r *ResetCode) ID() int64            { return r.id }
func (r *ResetCode) CustomerID() int64    { return r.customerID }
func (r *ResetCode) Code() string         { return r.code }
func (r *ResetCode) ExpiresAt() time.Time { return r.expiresAt }
func (r *ResetCode) Used() bool           { return r.used }
func (r *ResetCode) CreatedAt() time.Time { return r.createdAt }
func (r *ResetCode) AssignID(id int64)    { r.id = id }
