package branch

import (
	"errors"
	"strings"
)

var (
	ErrNameRequired = errors.New("branch name is required")
	ErrCityRequired = errors.New("branch city is required")
)

// Branch is never removed; deactivation keeps order history intact.
type Branch struct {
	id      int64
	name    string
	city    string
	address *string
	phone   *string
	active  bool
}

func NewBranch(name, city string, address, phone *string, active bool) (*Branch, error) {
	b := &Branch{active: active}
	if err := b.set(name, city, address, phone); err != nil {
		return nil, err
	}
	return b, nil
}

func ReconstructBranch(id int64, name, city string, address, phone *string, active bool) *Branch {
	return &Branch{
		id:      id,
		name:    name,
		city:    city,
		address: address,
		phone:   phone,
		active:  active,
	}
}

// Update replaces every editable field.
func (b *Branch) Update(name, city string, address, phone *string, active bool) error {
	if err := b.set(name, city, address, phone); err != nil {
		return err
	}
	b.active = active
	return nil
}

func (b *Branch) Deactivate() {
	b.active = false
}

func (b *Branch) set(name, city string, address, phone *string) error {
	name = strings.TrimSpace(name)
	city = strings.TrimSpace(city)
	if name == "" {
		return ErrNameRequired
	}
	if city == "" {
		return ErrCityRequired
	}
	b.name = name
	b.city = city
	b.address = blankToNil(address)
	b.phone = blankToNil(phone)
	return nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func (b *Branch) ID() int64         { return b.id }
func (b *Branch) Name() string      { return b.name }
func (b *Branch) City() string      { return b.city }
func (b *Branch) Address() *string  { return b.address }
func (b *Branch) Phone() *string    { return b.phone }
func (b *Branch) IsActive() bool    { return b.active }
func (b *Branch) AssignID(id int64) { b.id = id }
