package scalar

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

// UIOptions configure the rendered Scalar entry page.
type UIOptions struct {
	Title   string
	SpecURL string
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

// Handler returns an http.Handler that serves the Scalar API reference UI.
func Handler(spec []byte) http.Handler {
	return HandlerWithOptions(spec, UIOptions{})
}

// HandlerWithOptions returns a Scalar handler with a customized entry page.
func HandlerWithOptions(spec []byte, opts UIOptions) http.Handler {
	specCopy := append([]byte(nil), spec...)
	opts = opts.withDefaults()
	specName := path.Base(opts.SpecURL)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch target := resolveTarget(r.URL.Path); target {
		case "", indexFile:
			page, err := renderIndex(opts)
			if err != nil {
				http.Error(w, "scalar: index not available", http.StatusInternalServerError)
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

// HandlerFromFile loads the OpenAPI document from disk and returns a Scalar handler.
func HandlerFromFile(path string) (http.Handler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scalar: read spec %q: %w", path, err)
	}
	return Handler(data), nil
}

// Register mounts the Scalar handler under /scalar and /scalar/.
func Register(spec []byte) {
	handler := Handler(spec)
	http.Handle("/scalar", handler)
	http.Handle("/scalar/", handler)
}

// RegisterFile loads the document from disk and mounts the standard Scalar routes.
func RegisterFile(path string) error {
	handler, err := HandlerFromFile(path)
	if err != nil {
		return err
	}
	http.Handle("/scalar", handler)
	http.Handle("/scalar/", handler)
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

	if strings.HasPrefix(cleaned, "scalar/") {
		cleaned = strings.TrimPrefix(cleaned, "scalar/")
	}
	if cleaned == "scalar" {
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
