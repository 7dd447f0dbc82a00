package app

import (
	"github.com/rsmj1/Smallproj/internal/registry"
	"github.com/rsmj1/Smallproj/modules/arith"
	"github.com/rsmj1/Smallproj/modules/print"
)

// coreModules is the list of modules compiled into the binary.
var coreModules = []registry.Module{
	&print.Module{},
	&arith.Module{},
}
