package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/rsmj1/Smallproj/internal/binding"
	"github.com/rsmj1/Smallproj/internal/scenario"
	"github.com/rsmj1/Smallproj/modules/print"
	"github.com/stretchr/testify/require"
)

// stubLoader returns a fixed scenario or error.
type stubLoader struct {
	s   *scenario.Scenario
	err error
}

func (l stubLoader) Load(context.Context, string) (*scenario.Scenario, error) {
	return l.s, l.err
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		in        Config
		want      *Config
		expectErr bool
	}{
		{
			name: "defaults",
			in:   Config{},
			want: &Config{LogFormat: "text", LogLevel: "warn"},
		},
		{
			name: "explicit",
			in:   Config{ScenarioPath: "demo.hcl", LogFormat: "json", LogLevel: "debug"},
			want: &Config{ScenarioPath: "demo.hcl", LogFormat: "json", LogLevel: "debug"},
		},
		{name: "bad format", in: Config{LogFormat: "xml"}, expectErr: true},
		{name: "bad level", in: Config{LogLevel: "loud"}, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewConfig(tc.in)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("NewConfig() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApp_RunsBuiltinScenario(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	cfg := &Config{LogLevel: "debug", LogFormat: "text"}
	a := NewApp(out, logs, cfg, stubLoader{err: errors.New("must not be called")})

	// --- Act ---
	result, err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "Hello, new project!\nmuta:109, muta2\nmuta: 119, immuta: 12\n", out.String())
	require.Equal(t, int32(119), result.Values["muta"])
	require.Equal(t, int32(12), result.Values["immuta"])

	_, err = uuid.Parse(a.RunID())
	require.NoError(t, err)
	require.Contains(t, logs.String(), "run_id="+a.RunID())
	require.NotContains(t, out.String(), "run_id", "logs must not leak into program output")
}

func TestApp_UsesLoaderForPath(t *testing.T) {
	t.Parallel()

	s := &scenario.Scenario{
		Bindings: []scenario.BindingDef{{Name: "x", Value: 7}},
		Steps:    []scenario.Step{{Kind: scenario.KindPrint, Message: scenario.MustTemplate("x=${x}")}},
	}
	out := &bytes.Buffer{}
	a := NewApp(out, &bytes.Buffer{}, &Config{ScenarioPath: "x.hcl", LogLevel: "error", LogFormat: "json"}, stubLoader{s: s})

	_, err := a.Run(context.Background())

	require.NoError(t, err)
	require.Equal(t, "x=7\n", out.String())
	require.Same(t, s, a.Scenario())
}

func TestNewApp_PanicsOnLoadFailure(t *testing.T) {
	t.Parallel()

	cfg := &Config{ScenarioPath: "broken.hcl", LogLevel: "error", LogFormat: "text"}

	require.PanicsWithError(t, "failed to load scenario: boom", func() {
		NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg, stubLoader{err: errors.New("boom")})
	})
}

func TestNewApp_PanicsOnMissingHandler(t *testing.T) {
	t.Parallel()

	// Only the print module is registered, so the built-in arithmetic steps
	// have no handler.
	cfg := &Config{LogLevel: "error", LogFormat: "text"}

	require.Panics(t, func() {
		NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg, stubLoader{}, &print.Module{})
	})
}

func TestApp_RunReportsStepFailure(t *testing.T) {
	t.Parallel()

	s := &scenario.Scenario{
		Bindings: []scenario.BindingDef{{Name: "immuta", Value: 12}},
		Steps:    []scenario.Step{{Kind: scenario.KindAdd10, Target: "immuta"}},
	}
	a := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, &Config{ScenarioPath: "p", LogLevel: "error", LogFormat: "text"}, stubLoader{s: s})

	result, err := a.Run(context.Background())

	require.ErrorIs(t, err, binding.ErrImmutable)
	require.Contains(t, err.Error(), "execution failed")
	require.Equal(t, int32(12), result.Values["immuta"])
}
