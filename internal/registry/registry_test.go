package registry

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rsmj1/Smallproj/internal/scenario"
	"github.com/stretchr/testify/require"
)

type noopModule struct{ kinds []string }

func (m noopModule) Register(r *Registry) {
	for _, k := range m.kinds {
		r.Register(k, func(context.Context, *State, *scenario.Step) error { return nil })
	}
}

func TestNew_RegistersModules(t *testing.T) {
	t.Parallel()

	r := New(noopModule{kinds: []string{"b", "a"}}, noopModule{kinds: []string{"c"}})

	if diff := cmp.Diff([]string{"a", "b", "c"}, r.Kinds()); diff != "" {
		t.Errorf("Kinds() mismatch (-want +got):\n%s", diff)
	}
	_, ok := r.Lookup("a")
	require.True(t, ok)
	_, ok = r.Lookup("z")
	require.False(t, ok)
}

func TestRegister_DuplicatePanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		New(noopModule{kinds: []string{"print"}}, noopModule{kinds: []string{"print"}})
	})
}

func TestValidateScenario(t *testing.T) {
	t.Parallel()

	r := New(noopModule{kinds: []string{"print"}})

	require.NoError(t, r.ValidateScenario(&scenario.Scenario{Steps: []scenario.Step{{Kind: "print"}}}))

	err := r.ValidateScenario(&scenario.Scenario{Steps: []scenario.Step{{Kind: "print"}, {Kind: "teleport"}}})
	require.Error(t, err)
	require.Contains(t, err.Error(), `step 1: no handler registered for kind "teleport"`)
}
