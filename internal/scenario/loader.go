package scenario

import "context"

// Loader is the interface for a format-specific scenario loader.
type Loader interface {
	// Load reads a scenario from path, which may be a single file or a
	// directory of files, and returns it translated into the model.
	Load(ctx context.Context, path string) (*Scenario, error)
}
