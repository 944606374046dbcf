package order

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidOrderCode = errors.New("order code must look like SP-123")

const codePrefix = "SP-"

// FormatCode renders the customer-facing order number.
func FormatCode(id int64) string {
	return codePrefix + strconv.FormatInt(id, 10)
}

// ParseCode accepts "SP-123" with a case-insensitive prefix.
func ParseCode(code string) (int64, error) {
	s := strings.TrimSpace(code)
	if !strings.HasPrefix(strings.ToUpper(s), codePrefix) {
		return 0, ErrInvalidOrderCode
	}

	digits := s[len(codePrefix):]
	if i := strings.Index(digits, "-"); i >= 0 {
		digits = digits[:i]
	}

	id, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidOrderCode
	}
	return id, nil
}
