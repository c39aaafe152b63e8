// Package config loads site configuration from oasview.yaml and OASVIEW_*
// environment variables. The config file is checked against an embedded JSON
// Schema before it is read, so typos fail the command instead of silently
// falling back to defaults.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/oasview/oasview/core"
)

//go:embed schema.json
var schemaJSON []byte

// Renderers lists the viewer implementations a site may select.
var Renderers = []string{"swagger", "redoc", "scalar"}

// Config holds the resolved configuration for one site. All paths are
// absolute after Load.
type Config struct {
	Root      string // site root (directory containing oasview.yaml)
	Title     string // optional title override for the API reference page
	SpecPath  string // OpenAPI document; kept inside the static tree so it stays directly retrievable
	OutputDir string // viewer bundle destination inside the static tree
	DocsDir   string // markdown content pages
	StaticDir string // static assets copied verbatim into builds
	BuildDir  string // production build output
	Addr      string // dev server listen address
	Renderer  string // swagger, redoc, or scalar
}

// Load reads oasview.yaml from root (when present), applies OASVIEW_*
// environment overrides, and resolves all paths against root.
func Load(root string) (Config, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return Config{}, fmt.Errorf("config: resolve root: %w", err)
	}
	root = abs

	v := viper.New()
	v.SetDefault("title", "")
	v.SetDefault("spec", filepath.Join("static", "openapi.json"))
	v.SetDefault("output", filepath.Join("static", "api-reference"))
	v.SetDefault("docs", "docs")
	v.SetDefault("static", "static")
	v.SetDefault("build", "build")
	v.SetDefault("addr", ":3000")
	v.SetDefault("renderer", "swagger")

	cfgPath := filepath.Join(root, core.ConfigFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		if err := validateConfigFile(cfgPath); err != nil {
			return Config{}, err
		}
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", core.ConfigFileName, err)
		}
	}

	v.SetEnvPrefix("OASVIEW")
	v.AutomaticEnv()

	cfg := Config{
		Root:      root,
		Title:     v.GetString("title"),
		SpecPath:  resolve(root, v.GetString("spec")),
		OutputDir: resolve(root, v.GetString("output")),
		DocsDir:   resolve(root, v.GetString("docs")),
		StaticDir: resolve(root, v.GetString("static")),
		BuildDir:  resolve(root, v.GetString("build")),
		Addr:      v.GetString("addr"),
		Renderer:  strings.ToLower(strings.TrimSpace(v.GetString("renderer"))),
	}

	// Env overrides bypass the file schema, so the renderer is re-checked here.
	if !validRenderer(cfg.Renderer) {
		return Config{}, fmt.Errorf("config: unknown renderer %q (expected one of %s)",
			cfg.Renderer, strings.Join(Renderers, ", "))
	}

	return cfg, nil
}

func resolve(root, p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return root
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	return filepath.Clean(p)
}

func validRenderer(name string) bool {
	for _, r := range Renderers {
		if r == name {
			return true
		}
	}
	return false
}

func validateConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %q: %w", path, err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config: parse %q: %w", path, err)
	}
	if doc == nil {
		return nil
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource("schema.json", bytes.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("config: load schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("config: compile schema: %w", err)
	}

	if err := schema.Validate(normalize(doc)); err != nil {
		return fmt.Errorf("config: invalid %s: %w", core.ConfigFileName, err)
	}
	return nil
}

// normalize converts yaml-decoded values into the shapes the JSON Schema
// validator expects (string-keyed maps all the way down).
func normalize(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, val := range typed {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, val := range typed {
			out[fmt.Sprintf("%v", k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, val := range typed {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}
