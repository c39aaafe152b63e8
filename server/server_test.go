package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasview/oasview/config"
	"github.com/oasview/oasview/swagger"
)

const testSpec = `{"openapi":"3.0.0","info":{"title":"T","version":"1"},"paths":{}}`

func serverFixture(t *testing.T) *Server {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "static"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "static", "openapi.json"), []byte(testSpec), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "docs", "index.md"), []byte("# Home\n"), 0o644))

	cfg := config.Config{
		Root:      root,
		SpecPath:  filepath.Join(root, "static", "openapi.json"),
		OutputDir: filepath.Join(root, "static", "api-reference"),
		DocsDir:   filepath.Join(root, "docs"),
		StaticDir: filepath.Join(root, "static"),
		BuildDir:  filepath.Join(root, "build"),
		Addr:      "127.0.0.1:0",
		Renderer:  "swagger",
	}

	s := New(cfg, swagger.Bundler{})
	require.NoError(t, s.rebuild(context.Background()))
	return s
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServer_ServesSpecAtWellKnownPath(t *testing.T) {
	s := serverFixture(t)

	rec := get(t, s, "/openapi.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testSpec, rec.Body.String())
}

func TestServer_ServesBuiltSite(t *testing.T) {
	s := serverFixture(t)

	rec := get(t, s, "/index.html")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>Home</h1>")

	rec = get(t, s, "/api-reference/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>T</title>")
}

func TestServer_RedirectsBareSwaggerPath(t *testing.T) {
	s := serverFixture(t)

	rec := get(t, s, "/swagger")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/swagger/", rec.Header().Get("Location"))
}

func TestSpecURL_MapsIntoStaticTree(t *testing.T) {
	cfg := config.Config{
		StaticDir: filepath.Join("/", "site", "static"),
		SpecPath:  filepath.Join("/", "site", "static", "api", "openapi.yaml"),
	}
	assert.Equal(t, "/api/openapi.yaml", specURL(cfg))

	cfg.SpecPath = filepath.Join("/", "elsewhere", "openapi.json")
	assert.Equal(t, "/openapi.json", specURL(cfg))
}
