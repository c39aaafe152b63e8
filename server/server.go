// Package server runs the development server: it serves the assembled site,
// keeps the OpenAPI document retrievable at its well-known path, mounts a
// live Swagger UI, and regenerates the viewer bundle when the spec changes.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/swaggo/files"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/sync/errgroup"

	"github.com/oasview/oasview/config"
	"github.com/oasview/oasview/core"
	"github.com/oasview/oasview/site"
)

// Server serves one site and watches its inputs.
type Server struct {
	cfg     config.Config
	bundler core.Bundler
	specURL string
	http    *http.Server
}

// New builds the dev server for cfg. bundler is the viewer selected by the
// site's renderer setting.
func New(cfg config.Config, bundler core.Bundler) *Server {
	s := &Server{
		cfg:     cfg,
		bundler: bundler,
		specURL: specURL(cfg),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	// Live Swagger UI on top of the authoring copy of the spec, so edits
	// show up on refresh without waiting for a bundle regeneration.
	r.Get("/swagger", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/swagger/", http.StatusFound)
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(s.specURL),
		httpSwagger.DeepLinking(true),
	))

	r.Get(s.specURL, func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, cfg.SpecPath)
	})

	r.Handle("/*", http.FileServer(http.Dir(cfg.BuildDir)))

	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Run generates the site, then serves it while watching the spec and docs
// for changes. It blocks until ctx is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	if err := s.rebuild(ctx); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("serving %s on %s", s.cfg.Root, s.cfg.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: listen on %s: %w", s.cfg.Addr, err)
		}
		return nil
	})

	g.Go(func() error {
		return s.watch(ctx)
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// rebuild regenerates the viewer bundle and reassembles the site. A failure
// leaves the previously built output in place.
func (s *Server) rebuild(ctx context.Context) error {
	if _, err := core.Generate(ctx, core.GenerateConfig{
		SpecPath:  s.cfg.SpecPath,
		OutputDir: s.cfg.OutputDir,
		Bundler:   s.bundler,
		Title:     s.cfg.Title,
	}); err != nil {
		return err
	}
	return site.Build(s.cfg)
}

// specURL maps the spec's location inside the static tree to the URL it is
// served under, so site visitors can fetch the raw document directly.
func specURL(cfg config.Config) string {
	rel, err := filepath.Rel(cfg.StaticDir, cfg.SpecPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "/openapi.json"
	}
	return "/" + filepath.ToSlash(rel)
}
