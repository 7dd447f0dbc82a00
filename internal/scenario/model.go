package scenario

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// Well-known step kinds provided by the built-in modules.
const (
	KindPrint     = "print"
	KindDecrement = "decrement"
	KindBorrowAdd = "borrow_add"
	KindAdd10     = "add10"
	KindAdd       = "add"
)

// BindingDef describes a binding to create before the first step runs.
type BindingDef struct {
	Name    string
	Value   int32
	Mutable bool
}

// Step is a single operation in a scenario.
type Step struct {
	Kind    string
	Target  string
	Amount  int32
	Args    []string
	// Message is an HCL string template evaluated when the step runs.
	Message hcl.Expression
}

// Scenario is an ordered program over a set of bindings.
type Scenario struct {
	Bindings []BindingDef
	Steps    []Step
}

// Validate checks the scenario's internal references. It does not check that
// step kinds have handlers; that is the registry's job.
func (s *Scenario) Validate() error {
	var errs []error
	names := make(map[string]struct{}, len(s.Bindings))
	for _, b := range s.Bindings {
		if b.Name == "" {
			errs = append(errs, errors.New("binding with empty name"))
			continue
		}
		if _, dup := names[b.Name]; dup {
			errs = append(errs, fmt.Errorf("binding %q is defined more than once", b.Name))
		}
		names[b.Name] = struct{}{}
	}

	for i, st := range s.Steps {
		if st.Target != "" {
			if _, ok := names[st.Target]; !ok {
				errs = append(errs, fmt.Errorf("step %d (%s): unknown target %q", i, st.Kind, st.Target))
			}
		}
		for _, arg := range st.Args {
			if _, ok := names[arg]; !ok {
				errs = append(errs, fmt.Errorf("step %d (%s): unknown argument %q", i, st.Kind, arg))
			}
		}
		switch st.Kind {
		case KindPrint:
			if st.Message == nil {
				errs = append(errs, fmt.Errorf("step %d (print): message is required", i))
			}
		case KindDecrement, KindBorrowAdd, KindAdd10:
			if st.Target == "" {
				errs = append(errs, fmt.Errorf("step %d (%s): target is required", i, st.Kind))
			}
		case KindAdd:
			if len(st.Args) != 2 {
				errs = append(errs, fmt.Errorf("step %d (add): exactly two args are required, got %d", i, len(st.Args)))
			}
		}
	}
	return errors.Join(errs...)
}
