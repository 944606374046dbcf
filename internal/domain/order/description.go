package order

import (
	"fmt"
	"strings"
)

// Header is the delivery part of an order description.
type Header struct {
	Branch        string
	Address       string
	PaymentMethod string
}

// Describe renders the multi-line text stored with an order. Output depends only on
// its arguments.
func Describe(h Header, q Quote) string {
	lines := make([]string, 0, len(q.Lines)+5)
	lines = append(lines,
		"Şube: "+h.Branch,
		"Adres: "+h.Address,
		"Ödeme yöntemi: "+h.PaymentMethod,
	)

	if q.BagCount > 0 {
		lines = append(lines, fmt.Sprintf("Çamaşır filesi adedi: %d (%s TL/adet)", q.BagCount, q.BagPrice))
	}

	for _, l := range q.Lines {
		lines = append(lines, fmt.Sprintf("%d x %s (%s) = %s TL", l.Quantity, l.Product.Label(), l.Service.Display(), l.Subtotal))
	}

	lines = append(lines, fmt.Sprintf("Tahmini toplam tutar: %s TL", q.Total))

	return strings.Join(lines, "\n")
}

// SplitDescription returns the trimmed, non-empty lines of a stored description.
func SplitDescription(desc string) []string {
	if desc == "" {
		return []string{}
	}
	parts := strings.Split(desc, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
