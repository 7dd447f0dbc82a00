package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/rsmj1/Smallproj/internal/binding"
	"github.com/rsmj1/Smallproj/internal/ctxlog"
	"github.com/rsmj1/Smallproj/internal/registry"
	"github.com/rsmj1/Smallproj/internal/scenario"
)

// Result summarizes a completed run.
type Result struct {
	// Values holds each binding's value after the last step.
	Values map[string]int32
	// Steps is the number of steps that ran successfully.
	Steps int
}

// StepError reports which step failed.
type StepError struct {
	Index int
	Kind  string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s) failed: %v", e.Index, e.Kind, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Bind creates the binding set declared by s.
func Bind(s *scenario.Scenario) (*binding.Set, error) {
	set := binding.NewSet()
	for _, def := range s.Bindings {
		var b binding.Binding
		if def.Mutable {
			b = binding.NewMutable(def.Name, def.Value)
		} else {
			b = binding.NewImmutable(def.Name, def.Value)
		}
		if err := set.Define(b); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// Run executes s against reg, writing program output to out. On a step
// failure the returned Result reflects the state after the last successful
// step.
func Run(ctx context.Context, s *scenario.Scenario, reg *registry.Registry, out io.Writer) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Engine run started.", "bindings", len(s.Bindings), "steps", len(s.Steps))

	set, err := Bind(s)
	if err != nil {
		return nil, fmt.Errorf("failed to create bindings: %w", err)
	}
	state := &registry.State{Bindings: set, Out: out}
	result := &Result{}

	for i := range s.Steps {
		step := &s.Steps[i]
		if err := ctx.Err(); err != nil {
			result.Values = set.Values()
			return result, err
		}

		h, ok := reg.Lookup(step.Kind)
		if !ok {
			result.Values = set.Values()
			return result, &StepError{Index: i, Kind: step.Kind, Err: fmt.Errorf("no handler registered for kind %q", step.Kind)}
		}

		stepCtx, stepLogger := ctxlog.With(ctx, "step", i, "kind", step.Kind)
		stepLogger.Debug("Executing step.")
		if err := h(stepCtx, state, step); err != nil {
			stepLogger.Debug("Step failed.", "error", err)
			result.Values = set.Values()
			return result, &StepError{Index: i, Kind: step.Kind, Err: err}
		}
		result.Steps++
	}

	result.Values = set.Values()
	logger.Debug("Engine run finished.", "steps", result.Steps, "values", result.Values)
	return result, nil
}
