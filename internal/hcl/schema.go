package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level block a scenario file may contain.
type fileRoot struct {
	Bindings []*bindingBlock `hcl:"binding,block"`
	Steps    []*stepBlock    `hcl:"step,block"`
}

// bindingBlock is `binding "<name>" { value = N  mutable = bool }`.
type bindingBlock struct {
	Name    string `hcl:"name,label"`
	Value   int32  `hcl:"value"`
	Mutable *bool  `hcl:"mutable,optional"`
}

// stepBlock is `step "<kind>" { ... }`.
type stepBlock struct {
	Kind    string         `hcl:"kind,label"`
	Target  *string        `hcl:"target,optional"`
	Amount  *int32         `hcl:"amount,optional"`
	Args    []string       `hcl:"args,optional"`
	Message hcl.Expression `hcl:"message,optional"`
}
