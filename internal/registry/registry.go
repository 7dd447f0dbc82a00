package registry

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/rsmj1/Smallproj/internal/binding"
	"github.com/rsmj1/Smallproj/internal/scenario"
)

// State is the mutable environment a handler operates on.
type State struct {
	Bindings *binding.Set
	Out      io.Writer
}

// Handler executes one step against the run state.
type Handler func(ctx context.Context, state *State, step *scenario.Step) error

// Module is implemented by every package that contributes handlers.
type Module interface {
	Register(r *Registry)
}

// Registry holds the step handlers for a single application instance.
type Registry struct {
	handlers map[string]Handler
}

// New creates a Registry with the given modules registered.
func New(modules ...Module) *Registry {
	r := &Registry{handlers: make(map[string]Handler)}
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// Register binds kind to h. Registering a kind twice is a programming error
// and panics.
func (r *Registry) Register(kind string, h Handler) {
	if _, exists := r.handlers[kind]; exists {
		panic(fmt.Sprintf("registry: handler for step kind %q registered twice", kind))
	}
	r.handlers[kind] = h
}

// Lookup returns the handler for kind.
func (r *Registry) Lookup(kind string) (Handler, bool) {
	h, ok := r.handlers[kind]
	return h, ok
}

// Kinds returns all registered kinds, sorted.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.handlers))
	for k := range r.handlers {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// ValidateScenario ensures every step in s has a registered handler.
func (r *Registry) ValidateScenario(s *scenario.Scenario) error {
	for i, st := range s.Steps {
		if _, ok := r.handlers[st.Kind]; !ok {
			return fmt.Errorf("step %d: no handler registered for kind %q (known: %v)", i, st.Kind, r.Kinds())
		}
	}
	return nil
}
