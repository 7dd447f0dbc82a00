package print

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/rsmj1/Smallproj/internal/ctxlog"
	"github.com/rsmj1/Smallproj/internal/registry"
	"github.com/rsmj1/Smallproj/internal/scenario"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnPrint renders the step's message template and writes it as one line to
// the run output. Every binding is visible to the template by name, and the
// process environment is available as env.
func OnPrint(ctx context.Context, state *registry.State, step *scenario.Step) error {
	logger := ctxlog.FromContext(ctx)

	if step.Message == nil {
		return errors.New("print: message is required")
	}

	evalCtx := EvalContext(state)
	val, diags := step.Message.Value(evalCtx)
	if diags.HasErrors() {
		return fmt.Errorf("print: failed to evaluate message: %w", diags)
	}
	if val.IsNull() {
		return errors.New("print: message evaluated to null")
	}
	if !val.IsWhollyKnown() {
		return errors.New("print: message is not known")
	}

	strVal, err := convert.Convert(val, cty.String)
	if err != nil {
		return fmt.Errorf("print: message of type %s cannot be printed: %w", val.Type().FriendlyName(), err)
	}

	line := strVal.AsString()
	logger.Debug("Printing message.", "line", line)
	_, err = fmt.Fprintln(state.Out, line)
	return err
}

// EvalContext builds the variables a print template can reference.
func EvalContext(state *registry.State) *hcl.EvalContext {
	vars := map[string]cty.Value{
		"env": envValue(),
	}
	for name, v := range state.Bindings.Values() {
		vars[name] = cty.NumberIntVal(int64(v))
	}
	return &hcl.EvalContext{Variables: vars}
}

func envValue() cty.Value {
	env := make(map[string]cty.Value)
	for _, e := range os.Environ() {
		k, v, ok := strings.Cut(e, "=")
		if ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}
	if len(env) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	return cty.MapVal(env)
}

// Register registers the handler with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(scenario.KindPrint, OnPrint)
}
