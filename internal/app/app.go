package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rsmj1/Smallproj/internal/ctxlog"
	"github.com/rsmj1/Smallproj/internal/registry"
	"github.com/rsmj1/Smallproj/internal/scenario"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	runID    string
	registry *registry.Registry
	scenario *scenario.Scenario
}

// NewApp returns a fully initialized App. Program output goes to outW and
// logs to logW. A scenario that fails to load or validate is a fatal
// startup error and panics.
func NewApp(outW, logW io.Writer, cfg *Config, loader scenario.Loader, modules ...registry.Module) *App {
	runID := uuid.NewString()
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", runID)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var s *scenario.Scenario
	if cfg.ScenarioPath == "" {
		logger.Debug("No scenario path configured, using the built-in scenario.")
		s = scenario.Default()
	} else {
		loaded, err := loader.Load(ctx, cfg.ScenarioPath)
		if err != nil {
			panic(fmt.Errorf("failed to load scenario: %w", err))
		}
		s = loaded
	}
	if err := s.Validate(); err != nil {
		panic(fmt.Errorf("invalid scenario: %w", err))
	}
	logger.Debug("Scenario ready.", "bindings", len(s.Bindings), "steps", len(s.Steps))

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := registry.New(modules...)
	logger.Debug("All Go modules registered.", "count", len(modules), "kinds", reg.Kinds())

	// A step without a handler is a mismatch between code and scenario.
	if err := reg.ValidateScenario(s); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		runID:    runID,
		registry: reg,
		scenario: s,
	}
}

// RunID identifies this App instance in its logs.
func (a *App) RunID() string {
	return a.runID
}

// Scenario returns the scenario the App will execute. This is primarily for
// testing.
func (a *App) Scenario() *scenario.Scenario {
	return a.scenario
}
