package binding

import (
	"errors"
	"fmt"
)

var (
	// ErrImmutable is returned when a write targets an immutable binding.
	ErrImmutable = errors.New("binding is immutable")
	// ErrAlreadyBorrowed is returned when a mutable binding already has a
	// live reference.
	ErrAlreadyBorrowed = errors.New("binding is already mutably borrowed")
	// ErrReleased is returned when a released reference is used.
	ErrReleased = errors.New("reference has been released")
)

// Binding is a named int32 value.
type Binding interface {
	Name() string
	Value() int32
	IsMutable() bool
	// Assign replaces the value. It fails for immutable bindings and for
	// mutable bindings with an outstanding reference.
	Assign(v int32) error
}

// Immutable is a binding whose value is fixed at construction.
type Immutable struct {
	name  string
	value int32
}

// NewImmutable creates an immutable binding.
func NewImmutable(name string, value int32) *Immutable {
	return &Immutable{name: name, value: value}
}

func (b *Immutable) Name() string { return b.name }
func (b *Immutable) Value() int32 { return b.value }
func (b *Immutable) IsMutable() bool { return false }

// Assign always fails with ErrImmutable.
func (b *Immutable) Assign(int32) error {
	return fmt.Errorf("cannot assign to %q: %w", b.name, ErrImmutable)
}

// Mutable is a binding that may be reassigned and mutably borrowed.
type Mutable struct {
	name  string
	value int32
	ref   *Ref
}

// NewMutable creates a mutable binding.
func NewMutable(name string, value int32) *Mutable {
	return &Mutable{name: name, value: value}
}

func (b *Mutable) Name() string { return b.name }
func (b *Mutable) Value() int32 { return b.value }
func (b *Mutable) IsMutable() bool { return true }

// Borrowed reports whether a reference is currently live.
func (b *Mutable) Borrowed() bool { return b.ref != nil }

func (b *Mutable) Assign(v int32) error {
	if b.ref != nil {
		return fmt.Errorf("cannot assign to %q: %w", b.name, ErrAlreadyBorrowed)
	}
	b.value = v
	return nil
}

// Borrow returns the single mutable reference to b. It must be released
// before b can be borrowed or assigned again.
func (b *Mutable) Borrow() (*Ref, error) {
	if b.ref != nil {
		return nil, fmt.Errorf("cannot borrow %q: %w", b.name, ErrAlreadyBorrowed)
	}
	b.ref = &Ref{owner: b}
	return b.ref, nil
}

// Ref is an exclusive mutable reference to a Mutable binding.
type Ref struct {
	owner    *Mutable
	released bool
}

// Get reads the referenced value.
func (r *Ref) Get() (int32, error) {
	if r.released {
		return 0, ErrReleased
	}
	return r.owner.value, nil
}

// Set writes through the reference.
func (r *Ref) Set(v int32) error {
	if r.released {
		return ErrReleased
	}
	r.owner.value = v
	return nil
}

// Ptr exposes the referenced storage for helpers that take *int32. The
// pointer must not be retained past Release.
func (r *Ref) Ptr() (*int32, error) {
	if r.released {
		return nil, ErrReleased
	}
	return &r.owner.value, nil
}

// Release ends the borrow. Releasing twice is a no-op.
func (r *Ref) Release() {
	if r.released {
		return
	}
	r.released = true
	r.owner.ref = nil
}
