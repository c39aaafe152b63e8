package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BundleOptions carries the values a viewer needs to render its entry page.
type BundleOptions struct {
	// Title is shown in the generated page. Defaults to the document title.
	Title string
	// SpecName is the file name the spec copy is written under and the
	// relative URL the viewer fetches at page load.
	SpecName string
}

// Bundler writes a complete static viewer bundle into dir. Implementations
// live in the swagger, redoc, and scalar packages.
type Bundler interface {
	Name() string
	Bundle(dir string, spec []byte, opts BundleOptions) error
}

// GenerateConfig describes a single generation run.
type GenerateConfig struct {
	SpecPath  string  // path to the OpenAPI document
	OutputDir string  // directory the bundle is written to
	Bundler   Bundler // viewer implementation; required
	Title     string  // optional override for the page title
}

// Generate validates the OpenAPI document at cfg.SpecPath and emits the
// static viewer bundle into cfg.OutputDir. Validation always completes
// before any output is written, and the bundle is staged in a temporary
// directory and swapped in whole, so a failed run never leaves partial
// output and never disturbs a prior bundle.
//
// Re-running with an unchanged spec produces byte-identical output.
func Generate(ctx context.Context, cfg GenerateConfig) (string, error) {
	if cfg.Bundler == nil {
		return "", fmt.Errorf("core: no bundler configured")
	}

	doc, err := Validate(ctx, cfg.SpecPath)
	if err != nil {
		return "", err
	}

	output := strings.TrimSpace(cfg.OutputDir)
	if output == "" {
		return "", fmt.Errorf("core: no output directory configured")
	}
	output = filepath.Clean(output)

	title := strings.TrimSpace(cfg.Title)
	if title == "" {
		title = doc.Title()
	}
	opts := BundleOptions{
		Title:    title,
		SpecName: specFileName(cfg.SpecPath),
	}

	parent := filepath.Dir(output)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return "", fmt.Errorf("core: create output parent: %v: %w", err, ErrWriteFailure)
	}

	// Staging in the same parent keeps the final rename on one filesystem
	// and proves the target is writable before the old bundle is touched.
	staging, err := os.MkdirTemp(parent, ".oasview-staging-")
	if err != nil {
		return "", fmt.Errorf("core: stage output: %v: %w", err, ErrWriteFailure)
	}
	defer os.RemoveAll(staging)

	if err := cfg.Bundler.Bundle(staging, doc.Raw, opts); err != nil {
		return "", fmt.Errorf("core: write %s bundle: %v: %w", cfg.Bundler.Name(), err, ErrWriteFailure)
	}
	if err := os.Chmod(staging, 0o755); err != nil {
		return "", fmt.Errorf("core: finalize bundle: %v: %w", err, ErrWriteFailure)
	}

	if err := os.RemoveAll(output); err != nil {
		return "", fmt.Errorf("core: replace previous bundle: %v: %w", err, ErrWriteFailure)
	}
	if err := os.Rename(staging, output); err != nil {
		return "", fmt.Errorf("core: install bundle: %v: %w", err, ErrWriteFailure)
	}

	return output, nil
}

// specFileName normalizes the name the spec copy is served under inside the
// bundle. Anything that is not obviously YAML is served as openapi.json.
func specFileName(specPath string) string {
	switch strings.ToLower(filepath.Ext(specPath)) {
	case ".yaml", ".yml":
		return "openapi.yaml"
	default:
		return "openapi.json"
	}
}
