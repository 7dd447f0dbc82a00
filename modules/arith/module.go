// Package arith provides the integer steps of the demo: direct reassignment,
// mutation through a borrowed reference, and calls to the funcs helpers.
package arith

import (
	"context"
	"fmt"

	"github.com/rsmj1/Smallproj/internal/ctxlog"
	"github.com/rsmj1/Smallproj/internal/funcs"
	"github.com/rsmj1/Smallproj/internal/registry"
	"github.com/rsmj1/Smallproj/internal/scenario"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnDecrement reassigns target to target - amount.
func OnDecrement(ctx context.Context, state *registry.State, step *scenario.Step) error {
	m, err := state.Bindings.Mutable(step.Target)
	if err != nil {
		return err
	}
	v, err := funcs.Sub(m.Value(), step.Amount)
	if err != nil {
		return fmt.Errorf("%s - %d: %w", step.Target, step.Amount, err)
	}
	if err := m.Assign(v); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Decremented binding.", "binding", step.Target, "value", v)
	return nil
}

// OnBorrowAdd takes the single mutable reference to target and adds amount
// through it.
func OnBorrowAdd(ctx context.Context, state *registry.State, step *scenario.Step) error {
	m, err := state.Bindings.Mutable(step.Target)
	if err != nil {
		return err
	}
	ref, err := m.Borrow()
	if err != nil {
		return err
	}
	defer ref.Release()

	cur, err := ref.Get()
	if err != nil {
		return err
	}
	v, err := funcs.Add(cur, step.Amount)
	if err != nil {
		return fmt.Errorf("%s + %d: %w", step.Target, step.Amount, err)
	}
	if err := ref.Set(v); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Added through mutable reference.", "binding", step.Target, "value", v)
	return nil
}

// OnAdd10 lends target to funcs.Add10 by pointer.
func OnAdd10(ctx context.Context, state *registry.State, step *scenario.Step) error {
	m, err := state.Bindings.Mutable(step.Target)
	if err != nil {
		return err
	}
	ref, err := m.Borrow()
	if err != nil {
		return err
	}
	defer ref.Release()

	p, err := ref.Ptr()
	if err != nil {
		return err
	}
	if err := funcs.Add10(p); err != nil {
		return fmt.Errorf("add10(%s): %w", step.Target, err)
	}
	ctxlog.FromContext(ctx).Debug("Called add10.", "binding", step.Target, "value", *p)
	return nil
}

// OnAdd calls funcs.Add on the two argument bindings by value. The sum is
// only logged; neither argument changes.
func OnAdd(ctx context.Context, state *registry.State, step *scenario.Step) error {
	if len(step.Args) != 2 {
		return fmt.Errorf("add: exactly two args are required, got %d", len(step.Args))
	}
	a, err := state.Bindings.Get(step.Args[0])
	if err != nil {
		return err
	}
	b, err := state.Bindings.Get(step.Args[1])
	if err != nil {
		return err
	}
	sum, err := funcs.Add(a.Value(), b.Value())
	if err != nil {
		return fmt.Errorf("add(%s, %s): %w", a.Name(), b.Name(), err)
	}
	ctxlog.FromContext(ctx).Debug("Called add.", "a", a.Value(), "b", b.Value(), "sum", sum)
	return nil
}

// Register registers the handlers with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(scenario.KindDecrement, OnDecrement)
	r.Register(scenario.KindBorrowAdd, OnBorrowAdd)
	r.Register(scenario.KindAdd10, OnAdd10)
	r.Register(scenario.KindAdd, OnAdd)
}
