package core

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
)

// Document is a parsed OpenAPI document together with the raw bytes it was
// loaded from. The raw bytes are preserved verbatim so generated bundles
// serve exactly what the author wrote.
type Document struct {
	Spec *openapi3.T
	Raw  []byte
	Path string
}

// Title returns the document's info title, or a fallback when absent.
func (d *Document) Title() string {
	if d != nil && d.Spec != nil && d.Spec.Info != nil && d.Spec.Info.Title != "" {
		return d.Spec.Info.Title
	}
	return "API Reference"
}

// LoadSpec reads and parses the OpenAPI document at path. A missing or
// unreadable file maps to ErrSpecNotFound; a file that cannot be parsed or
// whose internal $refs do not resolve maps to ErrSpecInvalid.
func LoadSpec(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if pathErr, ok := err.(*fs.PathError); ok {
			err = pathErr.Err
		}
		return nil, fmt.Errorf("core: read spec %q: %v: %w", path, err, ErrSpecNotFound)
	}

	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false

	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("core: parse spec %q: %v: %w", path, err, ErrSpecInvalid)
	}

	return &Document{Spec: spec, Raw: data, Path: path}, nil
}

// ValidateSpec checks the document against the OpenAPI grammar: structural
// correctness, required fields, and reference resolution. The returned error
// wraps ErrSpecInvalid and carries the validator's diagnostic.
func ValidateSpec(ctx context.Context, doc *Document) error {
	if doc == nil || doc.Spec == nil {
		return fmt.Errorf("core: no document loaded: %w", ErrSpecInvalid)
	}
	if err := doc.Spec.Validate(ctx); err != nil {
		return fmt.Errorf("core: validate spec %q: %v: %w", doc.Path, err, ErrSpecInvalid)
	}
	return nil
}

// Validate loads the document at specPath and validates it, returning the
// parsed document on success. This is the fail-fast gate that runs before
// any output is written.
func Validate(ctx context.Context, specPath string) (*Document, error) {
	doc, err := LoadSpec(specPath)
	if err != nil {
		return nil, err
	}
	if err := ValidateSpec(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
