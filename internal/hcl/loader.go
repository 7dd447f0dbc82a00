package hcl

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rsmj1/Smallproj/internal/ctxlog"
	"github.com/rsmj1/Smallproj/internal/scenario"
)

// Loader is the HCL-specific implementation of the scenario.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL scenario loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses path (a .hcl file or a directory of them) into a Scenario.
// Files in a directory are read in lexical order and their blocks are
// concatenated.
func (l *Loader) Load(ctx context.Context, path string) (*scenario.Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	files, err := findHCLFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found at %s", path)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	s := &scenario.Scenario{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, b := range root.Bindings {
			s.Bindings = append(s.Bindings, translateBinding(b))
		}
		for _, st := range root.Steps {
			s.Steps = append(s.Steps, translateStep(st))
		}
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario at %s: %w", path, err)
	}

	logger.Debug("HCL loading complete.", "bindings", len(s.Bindings), "steps", len(s.Steps))
	return s, nil
}

// findHCLFiles returns path itself when it is a file, or every .hcl file
// beneath it when it is a directory.
func findHCLFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(p) == ".hcl" {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
