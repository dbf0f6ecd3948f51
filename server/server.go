/*
Copyright © 2026 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package server exposes a hook over HTTP for page renderers that are not
// written in Go.
package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"bennypowers.dev/cartero/hook"
	"bennypowers.dev/cartero/manifest"
)

// Config holds configuration for the HTTP sidecar.
type Config struct {
	// Address is the host:port the server listens on.
	Address string `mapstructure:"address" default:"127.0.0.1:7070"`
}

// Resolver is the subset of *hook.Hook the server calls.
type Resolver interface {
	ResolveEntryPoint(entryPointPath string) (*manifest.Listing, error)
	RenderTags(entryPointPath string) (scripts, styles string, err error)
	ResolveAssetURL(sourcePath string) (string, error)
	EntryPoints() ([]string, error)
}

var _ Resolver = (*hook.Hook)(nil)

// New creates a fiber app serving resolver, logging every request through logger.
func New(resolver Resolver, logger *zap.Logger) *fiber.App {
	if logger == nil {
		logger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(func(c *fiber.Ctx) error {
		l := logger.With(
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)
		l.Debug("Request started")
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	NewHandler(resolver, logger).RegisterRoutes(app)
	return app
}

// Handler handles HTTP requests for asset resolution.
type Handler struct {
	resolver Resolver
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(resolver Resolver, logger *zap.Logger) *Handler {
	return &Handler{resolver: resolver, logger: logger}
}

// RegisterRoutes registers the resolution routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/assets", h.HandleAssets)
	app.Get("/tags", h.HandleTags)
	app.Get("/url", h.HandleURL)
	app.Get("/entrypoints", h.HandleEntryPoints)
}

// HandleAssets responds with the asset group listing of the entry query parameter.
func (h *Handler) HandleAssets(c *fiber.Ctx) error {
	entry := c.Query("entry")
	if entry == "" {
		return badRequest(c, "entry")
	}

	listing, err := h.resolver.ResolveEntryPoint(entry)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"entryPoint": entry,
		"script":     nonNil(listing.Script),
		"style":      nonNil(listing.Style),
	})
}

// HandleTags responds with the rendered script and style markup of the entry
// query parameter.
func (h *Handler) HandleTags(c *fiber.Ctx) error {
	entry := c.Query("entry")
	if entry == "" {
		return badRequest(c, "entry")
	}

	scripts, styles, err := h.resolver.RenderTags(entry)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"script": scripts,
		"style":  styles,
	})
}

// HandleURL responds with the output URL of the asset query parameter.
func (h *Handler) HandleURL(c *fiber.Ctx) error {
	asset := c.Query("asset")
	if asset == "" {
		return badRequest(c, "asset")
	}

	url, err := h.resolver.ResolveAssetURL(asset)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"url": url})
}

// HandleEntryPoints responds with every entry point key in the manifest.
func (h *Handler) HandleEntryPoints(c *fiber.Ctx) error {
	entryPoints, err := h.resolver.EntryPoints()
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"entryPoints": nonNil(entryPoints)})
}

// StatusFor maps a resolution error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, hook.ErrEntryPointNotFound), errors.Is(err, hook.ErrAssetNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, hook.ErrMetadataUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		h.logger.Warn("Resolution failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, param string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing query parameter: " + param})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
