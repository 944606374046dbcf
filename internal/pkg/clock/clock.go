package clock

import "time"

// Clock is injected wherever order timestamps and reset-code expiry are computed.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func NewRealClock() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

// MockClock always reports the instant it was built with.
type MockClock struct {
	now time.Time
}

func NewMockClock(t time.Time) *MockClock { return &MockClock{now: t} }

func (c *MockClock) Now() time.Time { return c.now }
