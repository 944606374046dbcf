// Package errs is the cockroachdb/errors surface used across the module.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// ErrDomainValidation marks input rejected by a domain constructor. Handlers answer
// 400 for it when no more specific sentinel matches.
var ErrDomainValidation = cr.New("domain validation error")

func New(msg string) error {
	return cr.New(msg)
}

// Wrap returns nil for a nil err.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark tags err so that Is(err, mark) holds without changing its message.
// A nil err yields mark itself.
func Mark(err, mark error) error {
	if err == nil {
		return mark
	}
	return cr.Mark(err, mark)
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// ExtractStackLines renders err with its stack trace and keeps the first maxLines
// non-blank lines; maxLines <= 0 keeps them all.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	var out []string
	for _, line := range strings.Split(fmt.Sprintf("%+v", err), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
		if maxLines > 0 && len(out) == maxLines {
			break
		}
	}
	return out
}
