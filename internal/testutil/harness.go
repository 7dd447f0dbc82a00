// Package testutil provides a harness for running scenarios end to end
// through the app layer in tests.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rsmj1/Smallproj/internal/app"
	"github.com/rsmj1/Smallproj/internal/engine"
	"github.com/rsmj1/Smallproj/internal/hcl"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a scenario run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Result    *engine.Result
	Err       error
	App       *app.App
}

// RunScenario writes files into a temporary directory, loads it as a
// scenario, and runs it. A startup panic is returned as Err.
func RunScenario(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}

	cfg := &app.Config{
		ScenarioPath: dir,
		LogLevel:     "debug",
		LogFormat:    "text",
	}

	out, logs := &SafeBuffer{}, &SafeBuffer{}
	res := &HarnessResult{}

	func() {
		defer func() {
			if r := recover(); r != nil {
				res.Err = fmt.Errorf("startup panicked: %v", r)
			}
		}()
		res.App = app.NewApp(out, logs, cfg, hcl.NewLoader())
	}()

	if res.App != nil {
		res.Result, res.Err = res.App.Run(context.Background())
	}

	res.Output = out.String()
	res.LogOutput = logs.String()

	t.Cleanup(func() {
		if os.Getenv("SMALLPROJ_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), res.LogOutput)
		}
	})

	return res
}
