package server

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces editor write bursts into one rebuild.
const debounceWindow = 250 * time.Millisecond

// watch rebuilds the site when the spec or a docs page changes. A rebuild
// failure is reported and the previously generated output stays live, so a
// broken edit never takes the running docs down.
func (s *Server) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("server: start watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range s.watchDirs() {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("server: watch %q: %w", dir, err)
		}
	}

	var pending *time.Timer
	rebuilds := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !s.relevant(event) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(debounceWindow, func() {
				select {
				case rebuilds <- struct{}{}:
				default:
				}
			})
		case <-rebuilds:
			log.Printf("change detected, regenerating")
			if err := s.rebuild(ctx); err != nil {
				log.Printf("regeneration failed, keeping previous output: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func (s *Server) watchDirs() []string {
	dirs := []string{filepath.Dir(s.cfg.SpecPath)}
	if info, err := os.Stat(s.cfg.DocsDir); err == nil && info.IsDir() {
		dirs = append(dirs, s.cfg.DocsDir)
	}
	return dirs
}

func (s *Server) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	if event.Name == s.cfg.SpecPath {
		return true
	}
	return strings.HasSuffix(strings.ToLower(event.Name), ".md")
}
