package fiberswagger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/oasview/oasview/core"
	"github.com/oasview/oasview/swagger"
)

// Handler returns a Fiber handler that mounts the Swagger UI under the request path.
func Handler(spec []byte) fiber.Handler {
	return adaptor.HTTPHandler(swagger.Handler(spec))
}

// HandlerWithOptions returns a Fiber handler that mounts the Swagger UI under the request path
// and applies the provided swagger.UIOptions when serving the index page.
func HandlerWithOptions(spec []byte, opts swagger.UIOptions) fiber.Handler {
	return adaptor.HTTPHandler(swagger.HandlerWithOptions(spec, opts))
}

// RegisterWithSpec attaches GET handlers for /swagger and /swagger/* to the provided app using the given document.
func RegisterWithSpec(app *fiber.App, spec []byte) {
	wrapped := Handler(spec)
	app.Get("/swagger", wrapped)
	app.Get("/swagger/*", wrapped)
}

// RegisterWithSpecAndOptions attaches the Swagger UI routes using runtime UI options.
func RegisterWithSpecAndOptions(app *fiber.App, spec []byte, opts swagger.UIOptions) {
	wrapped := HandlerWithOptions(spec, opts)
	app.Get("/swagger", wrapped)
	app.Get("/swagger/*", wrapped)
}

// Register loads the site's OpenAPI document and mounts the Swagger UI routes.
func Register(app *fiber.App) error {
	path, err := defaultSpecPath()
	if err != nil {
		return err
	}
	return RegisterFile(app, path)
}

// RegisterWithConfig mounts the Swagger UI routes with runtime UI options.
func RegisterWithConfig(app *fiber.App, opts swagger.UIOptions) error {
	path, err := defaultSpecPath()
	if err != nil {
		return err
	}
	return RegisterFileWithOptions(app, path, opts)
}

// RegisterFile loads an OpenAPI document from disk and mounts the Swagger UI routes.
func RegisterFile(app *fiber.App, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fiberswagger: read spec %q: %w", path, err)
	}
	RegisterWithSpec(app, data)
	return nil
}

// RegisterFileWithOptions loads an OpenAPI document from disk and mounts the routes with UI options.
func RegisterFileWithOptions(app *fiber.App, path string, opts swagger.UIOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fiberswagger: read spec %q: %w", path, err)
	}
	RegisterWithSpecAndOptions(app, data, opts)
	return nil
}

func defaultSpecPath() (string, error) {
	root, err := core.FindSiteRoot(".")
	if err != nil {
		if root, err = os.Getwd(); err != nil {
			return "", fmt.Errorf("fiberswagger: resolve site root: %w", err)
		}
	}
	return filepath.Join(root, "static", "openapi.json"), nil
}
