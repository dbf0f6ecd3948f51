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

// Package hook answers the two questions a page renderer asks about a
// front-end build: which scripts and stylesheets an entry point needs, and
// which URL a single source asset was written to.
//
// A Hook reads the build's metaData.json once at construction. With caching
// enabled (the default) the manifest and every asset group listing are kept
// for the Hook's lifetime. With caching disabled, entry point resolution
// reloads metaData.json and reads the group listing on every call, so a
// running development server always sees the latest build.
//
// Asset URL resolution never reloads the manifest: it answers from whatever
// manifest the Hook currently holds, which under disabled caching is the one
// loaded by the most recent entry point resolution.
package hook

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"bennypowers.dev/cartero/fs"
	"bennypowers.dev/cartero/groupcache"
	"bennypowers.dev/cartero/manifest"
	"bennypowers.dev/cartero/pathkey"
	"bennypowers.dev/cartero/render"
)

// Hook resolves entry points and assets against one build output directory.
// It is safe for concurrent use.
type Hook struct {
	fsys   fs.FileSystem
	cfg    Config
	logger *zap.Logger
	groups groupcache.Cache

	mu       sync.RWMutex
	manifest *manifest.Manifest // nil while the build has not produced output
}

// Option configures a Hook.
type Option func(*Hook)

// WithGroupCache replaces the Hook's private group cache.
func WithGroupCache(cache groupcache.Cache) Option {
	return func(h *Hook) {
		h.groups = cache
	}
}

// New validates cfg and loads metaData.json from cfg.OutputDir.
//
// Any manifest failure is returned, except that with caching disabled an
// unreadable manifest (not a legacy or outdated one) is logged and the Hook
// starts without one.
func New(fsys fs.FileSystem, cfg Config, logger *zap.Logger, opts ...Option) (*Hook, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &Hook{
		fsys:   fsys,
		cfg:    cfg.withDefaults(),
		logger: logger,
		groups: groupcache.NewMemoryCache(),
	}
	for _, opt := range opts {
		opt(h)
	}

	m, err := manifest.Load(fsys, h.cfg.OutputDir, h.cacheEnabled(), logger)
	if err != nil {
		return nil, err
	}
	h.manifest = m

	return h, nil
}

// Config returns the effective configuration.
func (h *Hook) Config() Config {
	return h.cfg
}

func (h *Hook) cacheEnabled() bool {
	return !h.cfg.DisableCache
}

// Key returns the manifest key for an absolute source path.
func (h *Hook) Key(absolutePath string) string {
	return pathkey.Normalize(h.cfg.AppRootDir, absolutePath)
}

// ResolveEntryPoint returns the asset group listing for an entry point.
//
// Errors wrap ErrMetadataUnavailable, ErrEntryPointNotFound,
// manifest.ErrGroupListingUnreadable or manifest.ErrGroupListingMalformed.
// The returned listing is the caller's to modify.
func (h *Hook) ResolveEntryPoint(entryPointPath string) (*manifest.Listing, error) {
	m, err := h.freshManifest()
	if err != nil {
		return nil, err
	}

	key := h.Key(entryPointPath)
	groupID, ok := m.GroupID(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s (manifest key %q)", ErrEntryPointNotFound, entryPointPath, key)
	}

	load := func() (*manifest.Listing, error) {
		h.logger.Debug("Reading asset group listing",
			zap.String("entryPoint", key),
			zap.String("group", groupID))
		return manifest.ReadListing(h.fsys, h.cfg.OutputDir, groupID)
	}

	if !h.cacheEnabled() {
		return load()
	}

	listing, err := h.groups.GetOrLoad(groupID, load)
	if err != nil {
		return nil, err
	}
	return listing.Clone(), nil
}

// RenderTags resolves an entry point and renders its script and stylesheet
// tags, with URLs joined onto the configured output base URL.
func (h *Hook) RenderTags(entryPointPath string) (scripts, styles string, err error) {
	listing, err := h.ResolveEntryPoint(entryPointPath)
	if err != nil {
		return "", "", err
	}
	scripts, styles = render.Tags(listing, h.cfg.OutputBaseURL)
	return scripts, styles, nil
}

// ResolveAssetURL returns the output URL of a source asset: the mapped output
// path joined onto the output base URL, or the bare mapped path when no base
// URL is configured. It never reloads the manifest and performs no I/O.
//
// Errors wrap ErrMetadataUnavailable or ErrAssetNotFound.
func (h *Hook) ResolveAssetURL(sourcePath string) (string, error) {
	m := h.currentManifest()
	if m == nil {
		return "", h.unavailable()
	}

	key := h.Key(sourcePath)
	outputPath, ok := m.OutputPath(key)
	if !ok {
		return "", fmt.Errorf("%w: %s (manifest key %q)", ErrAssetNotFound, sourcePath, key)
	}

	return render.JoinURL(h.cfg.OutputBaseURL, outputPath), nil
}

// EntryPoints returns the manifest's entry point keys in sorted order,
// reloading the manifest first when caching is disabled.
func (h *Hook) EntryPoints() ([]string, error) {
	m, err := h.freshManifest()
	if err != nil {
		return nil, err
	}
	return m.EntryPoints(), nil
}

// freshManifest reloads metaData.json when caching is disabled and returns
// the manifest to resolve against.
func (h *Hook) freshManifest() (*manifest.Manifest, error) {
	if !h.cacheEnabled() {
		m, err := manifest.Load(h.fsys, h.cfg.OutputDir, false, h.logger)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMetadataUnavailable, err)
		}
		h.mu.Lock()
		h.manifest = m
		h.mu.Unlock()
	}

	m := h.currentManifest()
	if m == nil {
		return nil, h.unavailable()
	}
	return m, nil
}

func (h *Hook) currentManifest() *manifest.Manifest {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.manifest
}

func (h *Hook) unavailable() error {
	return fmt.Errorf("%w: %s could not be read from %s", ErrMetadataUnavailable, manifest.MetadataFileName, h.cfg.OutputDir)
}
