package queries

import (
	"strconv"
	"strings"
)

const (
	DefaultPerPage = 5
	MaxPerPage     = 200
)

type Page struct {
	Number  int
	PerPage int
}

// ParsePage turns a query-string page number into a 1-based page. Anything that is not
// a positive integer becomes 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func ValidatePerPage(perPage int) int {
	if perPage <= 0 {
		return DefaultPerPage
	}
	if perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}

// TotalPages is ceil(count/perPage), and 1 for an empty result.
func TotalPages(count int64, perPage int) int {
	if count <= 0 || perPage <= 0 {
		return 1
	}
	return int((count + int64(perPage) - 1) / int64(perPage))
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}
