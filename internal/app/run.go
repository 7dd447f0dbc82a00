package app

import (
	"context"
	"fmt"

	"github.com/rsmj1/Smallproj/internal/ctxlog"
	"github.com/rsmj1/Smallproj/internal/engine"
)

// Run executes the scenario and returns the final binding values.
func (a *App) Run(ctx context.Context) (*engine.Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Info("Starting scenario.", "steps", len(a.scenario.Steps))
	result, err := engine.Run(ctx, a.scenario, a.registry, a.outW)
	if err != nil {
		return result, fmt.Errorf("execution failed: %w", err)
	}
	a.logger.Info("Scenario finished.", "steps", result.Steps, "values", result.Values)

	a.logger.Debug("App.Run method finished.")
	return result, nil
}
