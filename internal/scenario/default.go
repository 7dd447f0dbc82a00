package scenario

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// Default returns the canonical demo: an immutable "immuta" of 12 and a
// mutable "muta" of 10 that is decremented, bumped by 100 through a mutable
// reference, then passed by reference to the add10 helper.
func Default() *Scenario {
	return &Scenario{
		Bindings: []BindingDef{
			{Name: "immuta", Value: 12},
			{Name: "muta", Value: 10, Mutable: true},
		},
		Steps: []Step{
			{Kind: KindPrint, Message: MustTemplate("Hello, new project!")},
			{Kind: KindDecrement, Target: "muta", Amount: 1},
			{Kind: KindBorrowAdd, Target: "muta", Amount: 100},
			{Kind: KindPrint, Message: MustTemplate("muta:${muta}, muta2")},
			{Kind: KindAdd10, Target: "muta"},
			{Kind: KindAdd, Args: []string{"immuta", "muta"}},
			{Kind: KindPrint, Message: MustTemplate("muta: ${muta}, immuta: ${immuta}")},
		},
	}
}

// ParseTemplate parses src as an HCL string template.
func ParseTemplate(src string) (hcl.Expression, error) {
	expr, diags := hclsyntax.ParseTemplate([]byte(src), "<builtin>", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse template %q: %w", src, diags)
	}
	return expr, nil
}

// MustTemplate is ParseTemplate for compile-time constants.
func MustTemplate(src string) hcl.Expression {
	expr, err := ParseTemplate(src)
	if err != nil {
		panic(err)
	}
	return expr
}
