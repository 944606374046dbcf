package contact

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyMessage = errors.New("message is required")

type Message struct {
	id        int64
	name      *string
	email     *string
	body      string
	createdAt time.Time
}

// NewMessage keeps name and email optional; only the body is required.
func NewMessage(name, email, body string, now time.Time) (*Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}
	return &Message{
		name:      optional(name),
		email:     optional(email),
		body:      body,
		createdAt: now,
	}, nil
}

func ReconstructMessage(id int64, name, email *string, body string, createdAt time.Time) *Message {
	return &Message{id: id, name: name, email: email, body: body, createdAt: createdAt}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func (m *Message) ID() int64            { return m.id }
func (m *Message) Name() *string        { return m.name }
func (m *Message) Email() *string       { return m.email }
func (m *Message) Body() string         { return m.body }
func (m *Message) CreatedAt() time.Time { return m.createdAt }
func (m *Message) AssignID(id int64)    { m.id = id }
