package branch

import (
	"errors"
	"strconv"
	"strings"
)

var ErrEmptySelector = errors.New("branch selector is empty")

// Selector identifies the branch picked at checkout, either by id or by "City - Name".
type Selector struct {
	ID   int64
	City string
	Name string
}

// ParseSelector treats an all-digit value as an id. Otherwise "City - Name" is split on
// the first " - "; a value without the separator is used as both city and name.
func ParseSelector(raw string) (Selector, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Selector{}, ErrEmptySelector
	}

	if isDigits(s) {
		id, err := strconv.ParseInt(s, 10, 64)
		if err == nil && id > 0 {
			return Selector{ID: id}, nil
		}
	}

	if city, name, ok := strings.Cut(s, " - "); ok {
		return Selector{City: strings.TrimSpace(city), Name: strings.TrimSpace(name)}, nil
	}
	return Selector{City: s, Name: s}, nil
}

func (s Selector) ByID() bool {
	return s.ID > 0
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
