package binding

import (
	"errors"
	"fmt"
)

// ErrUnknown is returned when a name has no binding.
var ErrUnknown = errors.New("unknown binding")

// Set holds bindings by name in definition order.
type Set struct {
	order []string
	items map[string]Binding
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{items: make(map[string]Binding)}
}

// Define adds b. Names must be unique.
func (s *Set) Define(b Binding) error {
	if _, exists := s.items[b.Name()]; exists {
		return fmt.Errorf("binding %q is already defined", b.Name())
	}
	s.items[b.Name()] = b
	s.order = append(s.order, b.Name())
	return nil
}

// Lookup returns the binding called name.
func (s *Set) Lookup(name string) (Binding, bool) {
	b, ok := s.items[name]
	return b, ok
}

// Get is Lookup that reports a missing name as ErrUnknown.
func (s *Set) Get(name string) (Binding, error) {
	b, ok := s.items[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknown)
	}
	return b, nil
}

// Mutable returns the mutable binding called name, or ErrImmutable if the
// binding exists but cannot be written.
func (s *Set) Mutable(name string) (*Mutable, error) {
	b, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	m, ok := b.(*Mutable)
	if !ok {
		return nil, fmt.Errorf("cannot borrow %q mutably: %w", name, ErrImmutable)
	}
	return m, nil
}

// Names returns binding names in definition order.
func (s *Set) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Values returns a snapshot of every binding's current value.
func (s *Set) Values() map[string]int32 {
	out := make(map[string]int32, len(s.items))
	for name, b := range s.items {
		out[name] = b.Value()
	}
	return out
}
