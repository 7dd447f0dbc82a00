package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/rsmj1/Smallproj/internal/scenario"
)

// defaultAmount applies to decrement and borrow_add steps that omit amount.
const defaultAmount int32 = 1

func translateBinding(b *bindingBlock) scenario.BindingDef {
	return scenario.BindingDef{
		Name:    b.Name,
		Value:   b.Value,
		Mutable: b.Mutable != nil && *b.Mutable,
	}
}

func translateStep(s *stepBlock) scenario.Step {
	st := scenario.Step{
		Kind: s.Kind,
		Args: s.Args,
	}
	if s.Target != nil {
		st.Target = *s.Target
	}
	switch {
	case s.Amount != nil:
		st.Amount = *s.Amount
	case s.Kind == scenario.KindDecrement || s.Kind == scenario.KindBorrowAdd:
		st.Amount = defaultAmount
	}
	if present(s.Message) {
		st.Message = s.Message
	}
	return st
}

// present reports whether an optional expression attribute was set. gohcl
// fills a missing one with a static null.
func present(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	val, diags := expr.Value(nil)
	return diags.HasErrors() || !val.IsNull()
}
