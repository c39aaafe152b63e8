package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, "oasview.yaml"), []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	root := t.TempDir()

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, filepath.Join(root, "static", "openapi.json"), cfg.SpecPath)
	assert.Equal(t, filepath.Join(root, "static", "api-reference"), cfg.OutputDir)
	assert.Equal(t, filepath.Join(root, "docs"), cfg.DocsDir)
	assert.Equal(t, filepath.Join(root, "build"), cfg.BuildDir)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "swagger", cfg.Renderer)
}

func TestLoad_ConfigFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "title: Pet Store Docs\nrenderer: redoc\nspec: api/openapi.yaml\naddr: \":8000\"\n")

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, "Pet Store Docs", cfg.Title)
	assert.Equal(t, "redoc", cfg.Renderer)
	assert.Equal(t, filepath.Join(root, "api", "openapi.yaml"), cfg.SpecPath)
	assert.Equal(t, ":8000", cfg.Addr)
}

func TestLoad_RejectsUnknownRenderer(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "renderer: docusaurus\n")

	_, err := Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oasview.yaml")
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "theme: dark\n")

	_, err := Load(root)
	require.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	root := t.TempDir()
	t.Setenv("OASVIEW_ADDR", ":4000")
	t.Setenv("OASVIEW_RENDERER", "scalar")

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.Addr)
	assert.Equal(t, "scalar", cfg.Renderer)
}

func TestLoad_EnvRendererStillChecked(t *testing.T) {
	root := t.TempDir()
	t.Setenv("OASVIEW_RENDERER", "hugo")

	_, err := Load(root)
	require.Error(t, err)
}
