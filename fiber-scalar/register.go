package fiberscalar

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/oasview/oasview/core"
	"github.com/oasview/oasview/scalar"
)

// Handler returns a Fiber handler that mounts the Scalar UI under the request path.
func Handler(spec []byte) fiber.Handler {
	return adaptor.HTTPHandler(scalar.Handler(spec))
}

// RegisterWithSpec attaches GET handlers for /scalar and /scalar/* to the provided app using the given document.
func RegisterWithSpec(app *fiber.App, spec []byte) {
	wrapped := Handler(spec)
	app.Get("/scalar", wrapped)
	app.Get("/scalar/*", wrapped)
}

// Register loads the site's OpenAPI document and mounts the Scalar UI routes.
func Register(app *fiber.App) error {
	path, err := defaultSpecPath()
	if err != nil {
		return err
	}
	return RegisterFile(app, path)
}

// RegisterFile loads an OpenAPI document from disk and mounts the Scalar UI routes.
func RegisterFile(app *fiber.App, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fiberscalar: read spec %q: %w", path, err)
	}
	RegisterWithSpec(app, data)
	return nil
}

func defaultSpecPath() (string, error) {
	root, err := core.FindSiteRoot(".")
	if err != nil {
		if root, err = os.Getwd(); err != nil {
			return "", fmt.Errorf("fiberscalar: resolve site root: %w", err)
		}
	}
	return filepath.Join(root, "static", "openapi.json"), nil
}
