package core_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/oasview/oasview/core"
)

const minimalSpec = `{"openapi":"3.0.0","info":{"title":"T","version":"1"},"paths":{}}`

func writeSpec(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	return path
}

func TestValidate_MinimalDocument(t *testing.T) {
	path := writeSpec(t, "openapi.json", minimalSpec)

	doc, err := core.Validate(context.Background(), path)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got := doc.Title(); got != "T" {
		t.Fatalf("Title() = %q, want %q", got, "T")
	}
	if string(doc.Raw) != minimalSpec {
		t.Fatalf("Raw bytes were not preserved verbatim")
	}
}

func TestValidate_YAMLDocument(t *testing.T) {
	path := writeSpec(t, "openapi.yaml", "openapi: 3.0.0\ninfo:\n  title: T\n  version: \"1\"\npaths: {}\n")

	if _, err := core.Validate(context.Background(), path); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidate_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	_, err := core.Validate(context.Background(), path)
	if !errors.Is(err, core.ErrSpecNotFound) {
		t.Fatalf("Validate() error = %v, want ErrSpecNotFound", err)
	}
}

func TestValidate_MissingPaths(t *testing.T) {
	path := writeSpec(t, "openapi.json", `{"openapi":"3.0.0","info":{"title":"T","version":"1"}}`)

	_, err := core.Validate(context.Background(), path)
	if !errors.Is(err, core.ErrSpecInvalid) {
		t.Fatalf("Validate() error = %v, want ErrSpecInvalid", err)
	}
}

func TestValidate_DanglingRef(t *testing.T) {
	spec := `{
  "openapi": "3.0.0",
  "info": {"title": "T", "version": "1"},
  "paths": {
    "/things": {
      "get": {
        "responses": {
          "200": {
            "description": "ok",
            "content": {
              "application/json": {
                "schema": {"$ref": "#/components/schemas/Missing"}
              }
            }
          }
        }
      }
    }
  }
}`
	path := writeSpec(t, "openapi.json", spec)

	_, err := core.Validate(context.Background(), path)
	if !errors.Is(err, core.ErrSpecInvalid) {
		t.Fatalf("Validate() error = %v, want ErrSpecInvalid", err)
	}
}

func TestValidate_NotParseable(t *testing.T) {
	path := writeSpec(t, "openapi.json", "{not json")

	_, err := core.Validate(context.Background(), path)
	if !errors.Is(err, core.ErrSpecInvalid) {
		t.Fatalf("Validate() error = %v, want ErrSpecInvalid", err)
	}
}
