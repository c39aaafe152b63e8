package swagger

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path"
	"strings"
)

const (
	defaultSpecFile = "openapi.json"
	indexFile       = "index.html"
)

var indexTemplate = template.Must(
	template.New(indexFile).ParseFS(assets, "assets/"+indexFile))

// UIOptions configure the rendered Swagger UI entry page.
type UIOptions struct {
	Title   string // page title; defaults to "API Reference"
	SpecURL string // URL the UI fetches the document from; defaults to openapi.json
}

func (o UIOptions) withDefaults() UIOptions {
	if strings.TrimSpace(o.Title) == "" {
		o.Title = "API Reference"
	}
	if strings.TrimSpace(o.SpecURL) == "" {
		o.SpecURL = defaultSpecFile
	}
	return o
}

func renderIndex(opts UIOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, opts.withDefaults()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Handler returns an http.Handler that serves the Swagger UI page and the provided spec.
func Handler(spec []byte) http.Handler {
	return HandlerWithOptions(spec, UIOptions{})
}

// HandlerWithOptions returns a Swagger UI handler with a customized entry page.
func HandlerWithOptions(spec []byte, opts UIOptions) http.Handler {
	specCopy := append([]byte(nil), spec...)
	opts = opts.withDefaults()
	specName := path.Base(opts.SpecURL)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch target := resolveTarget(r.URL.Path); target {
		case "", indexFile:
			page, err := renderIndex(opts)
			if err != nil {
				http.Error(w, "swagger: index not available", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write(page)
		case specName:
			w.Header().Set("Content-Type", specContentType(specName))
			_, _ = w.Write(specCopy)
		default:
			http.NotFound(w, r)
		}
	})
}

// HandlerFromFile loads the OpenAPI document from disk and returns a Swagger UI handler.
func HandlerFromFile(path string) (http.Handler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("swagger: read spec %q: %w", path, err)
	}
	return Handler(data), nil
}

// Register adds default handlers under /swagger/ using the provided spec.
func Register(spec []byte) {
	handler := Handler(spec)
	http.Handle("/swagger", handler)
	http.Handle("/swagger/", handler)
}

// RegisterFile is a convenience helper that loads the document from disk and wires the standard routes.
func RegisterFile(path string) error {
	handler, err := HandlerFromFile(path)
	if err != nil {
		return err
	}
	http.Handle("/swagger", handler)
	http.Handle("/swagger/", handler)
	return nil
}

func resolveTarget(raw string) string {
	cleaned := raw
	if idx := strings.Index(cleaned, "?"); idx >= 0 {
		cleaned = cleaned[:idx]
	}
	if cleaned == "" {
		return ""
	}
	cleaned = path.Clean(cleaned)
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." {
		return ""
	}

	if strings.HasPrefix(cleaned, "swagger/") {
		cleaned = strings.TrimPrefix(cleaned, "swagger/")
	}
	if cleaned == "swagger" {
		return ""
	}
	return cleaned
}

func specContentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return "application/yaml"
	default:
		return "application/json"
	}
}
