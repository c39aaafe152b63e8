// Package site assembles the published documentation site: markdown content
// pages rendered through goldmark, plus the static asset tree (which carries
// the OpenAPI document and the generated viewer bundle) copied verbatim.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/oasview/oasview/config"
)

//go:embed assets/layout.html
var layoutFS embed.FS

var layoutTemplate = template.Must(
	template.New("layout.html").ParseFS(layoutFS, "assets/layout.html"))

// markdown is the shared converter. GFM gives tables, strikethrough,
// autolinks, and task lists.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

type pageData struct {
	Site    string
	Title   string
	Content template.HTML
}

// Build assembles the site under cfg.BuildDir: every markdown file under
// cfg.DocsDir becomes an HTML page, and cfg.StaticDir is copied through
// unchanged. Output is deterministic for unchanged input.
func Build(cfg config.Config) error {
	if err := os.RemoveAll(cfg.BuildDir); err != nil {
		return fmt.Errorf("site: clear build dir: %w", err)
	}
	if err := os.MkdirAll(cfg.BuildDir, 0o755); err != nil {
		return fmt.Errorf("site: create build dir: %w", err)
	}

	if err := renderDocs(cfg); err != nil {
		return err
	}
	if err := copyTree(cfg.StaticDir, cfg.BuildDir); err != nil {
		return err
	}
	return nil
}

func renderDocs(cfg config.Config) error {
	if _, err := os.Stat(cfg.DocsDir); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("site: stat docs dir: %w", err)
	}

	siteName := strings.TrimSpace(cfg.Title)
	if siteName == "" {
		siteName = "Documentation"
	}

	return filepath.WalkDir(cfg.DocsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		rel, err := filepath.Rel(cfg.DocsDir, path)
		if err != nil {
			return err
		}
		out := filepath.Join(cfg.BuildDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".html")

		page, err := RenderPage(path, siteName)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return fmt.Errorf("site: create page dir: %w", err)
		}
		if err := os.WriteFile(out, page, 0o644); err != nil {
			return fmt.Errorf("site: write page %q: %w", out, err)
		}
		return nil
	})
}

// RenderPage converts one markdown file into a complete HTML page wrapped in
// the site layout.
func RenderPage(path, siteName string) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("site: read page %q: %w", path, err)
	}

	var body bytes.Buffer
	if err := markdown.Convert(src, &body); err != nil {
		return nil, fmt.Errorf("site: render page %q: %w", path, err)
	}

	data := pageData{
		Site:    siteName,
		Title:   pageTitle(src, path),
		Content: template.HTML(body.String()),
	}
	var page bytes.Buffer
	if err := layoutTemplate.Execute(&page, data); err != nil {
		return nil, fmt.Errorf("site: layout page %q: %w", path, err)
	}
	return page.Bytes(), nil
}

// pageTitle takes the first level-one heading, falling back to the file name.
func pageTitle(src []byte, path string) string {
	for _, line := range strings.Split(string(src), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		}
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func copyTree(src, dst string) error {
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("site: stat static dir: %w", err)
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("site: read asset %q: %w", path, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("site: copy asset %q: %w", target, err)
		}
		return nil
	})
}
