package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasview/oasview/config"
)

func siteFixture(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs", "guides"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "docs", "index.md"),
		[]byte("# Welcome\n\nSome **docs**.\n"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "docs", "guides", "setup.md"),
		[]byte("# Setup\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"), 0o644))

	require.NoError(t, os.MkdirAll(filepath.Join(root, "static", "api-reference"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "static", "openapi.json"),
		[]byte(`{"openapi":"3.0.0"}`), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "static", "api-reference", "index.html"),
		[]byte("<html></html>"), 0o644))

	return config.Config{
		Root:      root,
		Title:     "Pet Store Docs",
		SpecPath:  filepath.Join(root, "static", "openapi.json"),
		OutputDir: filepath.Join(root, "static", "api-reference"),
		DocsDir:   filepath.Join(root, "docs"),
		StaticDir: filepath.Join(root, "static"),
		BuildDir:  filepath.Join(root, "build"),
		Renderer:  "swagger",
	}
}

func TestBuild_RendersPagesAndCopiesStatic(t *testing.T) {
	cfg := siteFixture(t)

	require.NoError(t, Build(cfg))

	index, err := os.ReadFile(filepath.Join(cfg.BuildDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "<h1>Welcome</h1>")
	assert.Contains(t, string(index), "<strong>docs</strong>")
	assert.Contains(t, string(index), "Pet Store Docs")

	setup, err := os.ReadFile(filepath.Join(cfg.BuildDir, "guides", "setup.html"))
	require.NoError(t, err)
	assert.Contains(t, string(setup), "<title>Setup</title>")
	assert.Contains(t, string(setup), "<table>")

	spec, err := os.ReadFile(filepath.Join(cfg.BuildDir, "openapi.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"openapi":"3.0.0"}`, string(spec))

	_, err = os.Stat(filepath.Join(cfg.BuildDir, "api-reference", "index.html"))
	assert.NoError(t, err)
}

func TestBuild_Deterministic(t *testing.T) {
	cfg := siteFixture(t)

	require.NoError(t, Build(cfg))
	first, err := os.ReadFile(filepath.Join(cfg.BuildDir, "index.html"))
	require.NoError(t, err)

	require.NoError(t, Build(cfg))
	second, err := os.ReadFile(filepath.Join(cfg.BuildDir, "index.html"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuild_MissingDocsDirIsFine(t *testing.T) {
	cfg := siteFixture(t)
	cfg.DocsDir = filepath.Join(cfg.Root, "no-docs")

	require.NoError(t, Build(cfg))

	_, err := os.Stat(filepath.Join(cfg.BuildDir, "openapi.json"))
	assert.NoError(t, err)
}

func TestPageTitle_FallsBackToFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "changelog.md")
	require.NoError(t, os.WriteFile(path, []byte("no heading here\n"), 0o644))

	page, err := RenderPage(path, "Docs")
	require.NoError(t, err)
	assert.Contains(t, string(page), "<title>changelog</title>")
}
