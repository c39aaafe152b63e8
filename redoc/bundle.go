package redoc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oasview/oasview/core"
)

// Bundler writes a static Redoc bundle. It implements core.Bundler.
type Bundler struct{}

// Name identifies the renderer in configuration and diagnostics.
func (Bundler) Name() string { return "redoc" }

// Bundle renders the entry page and writes it alongside the spec copy.
func (Bundler) Bundle(dir string, spec []byte, opts core.BundleOptions) error {
	specName := opts.SpecName
	if specName == "" {
		specName = defaultSpecFile
	}
	page, err := renderIndex(UIOptions{Title: opts.Title, SpecURL: specName})
	if err != nil {
		return fmt.Errorf("redoc: render index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, indexFile), page, 0o644); err != nil {
		return fmt.Errorf("redoc: write index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, specName), spec, 0o644); err != nil {
		return fmt.Errorf("redoc: write spec copy: %w", err)
	}
	return nil
}
