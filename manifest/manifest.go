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

// Package manifest loads the metadata a front-end build writes into its
// output directory: metaData.json, which maps entry points to asset groups
// and source assets to output paths, and one assets.json listing per group.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"bennypowers.dev/cartero/fs"
)

const (
	// MetadataFileName is the manifest file at the root of the output directory.
	MetadataFileName = "metaData.json"

	// LegacyPackageMapFileName is written by old builds in place of metaData.json.
	// Its presence turns a read failure into ErrIncompatibleLegacyFormat.
	LegacyPackageMapFileName = "package_map.json"

	// MinFormatVersion is the oldest metaData.json format this package understands.
	MinFormatVersion = 3
)

// Manifest is a parsed, version-checked metaData.json.
// All keys are paths relative to the application root, as produced by
// pathkey.Normalize.
type Manifest struct {
	FormatVersion int `json:"formatVersion"`

	// EntryPointMap maps entry point keys to asset group ids.
	EntryPointMap map[string]string `json:"entryPointMap"`

	// AssetMap maps source asset keys to paths relative to the output directory.
	AssetMap map[string]string `json:"assetMap"`
}

// Parse parses and validates metaData.json content.
// Syntax errors are returned as-is; a document whose formatVersion is missing
// or below MinFormatVersion fails with ErrOutdatedFormatVersion.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m.FormatVersion < MinFormatVersion {
		return nil, fmt.Errorf("%w: got %d, need at least %d; rebuild the assets with a current build tool",
			ErrOutdatedFormatVersion, m.FormatVersion, MinFormatVersion)
	}
	if m.EntryPointMap == nil {
		m.EntryPointMap = make(map[string]string)
	}
	if m.AssetMap == nil {
		m.AssetMap = make(map[string]string)
	}
	return &m, nil
}

// Load reads metaData.json from outputDir.
//
// A manifest that parses but is outdated always fails. When the file cannot be
// read or parsed, a legacy package_map.json in outputDir fails with
// ErrIncompatibleLegacyFormat; otherwise cacheEnabled decides the outcome:
// true fails with ErrMetadataUnreadable, false logs a warning and returns a
// nil Manifest with a nil error, meaning the build has not produced output yet.
func Load(fsys fs.FileSystem, outputDir string, cacheEnabled bool, logger *zap.Logger) (*Manifest, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	metadataPath := filepath.Join(outputDir, MetadataFileName)

	var m *Manifest
	data, err := fsys.ReadFile(metadataPath)
	if err == nil {
		m, err = Parse(data)
		if errors.Is(err, ErrOutdatedFormatVersion) {
			return nil, fmt.Errorf("%s: %w", metadataPath, err)
		}
	}
	if err == nil {
		return m, nil
	}

	if fsys.Exists(filepath.Join(outputDir, LegacyPackageMapFileName)) {
		return nil, fmt.Errorf("%w: found %s but could not read %s in %s; rebuild the assets with a current build tool: %w",
			ErrIncompatibleLegacyFormat, LegacyPackageMapFileName, MetadataFileName, outputDir, err)
	}

	if cacheEnabled {
		return nil, fmt.Errorf("%w: %s (has the build run yet?): %w", ErrMetadataUnreadable, metadataPath, err)
	}

	logger.Warn("Build metadata could not be read; has the build run yet?",
		zap.String("path", metadataPath),
		zap.Error(err))
	return nil, nil
}

// GroupID returns the asset group id for an entry point key.
// An empty id counts as missing.
func (m *Manifest) GroupID(entryPointKey string) (string, bool) {
	id, ok := m.EntryPointMap[entryPointKey]
	return id, ok && id != ""
}

// OutputPath returns the output path for a source asset key.
// An empty path counts as missing.
func (m *Manifest) OutputPath(assetKey string) (string, bool) {
	p, ok := m.AssetMap[assetKey]
	return p, ok && p != ""
}

// EntryPoints returns the entry point keys in sorted order.
func (m *Manifest) EntryPoints() []string {
	return slices.Sorted(maps.Keys(m.EntryPointMap))
}
