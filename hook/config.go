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

package hook

import (
	"fmt"
	"path/filepath"
)

// Config is the construction configuration of a Hook.
// The default tags are read by the config loader.
type Config struct {
	// OutputDir is the build output directory holding metaData.json and one
	// subdirectory per asset group. Required, and must be absolute.
	OutputDir string `mapstructure:"output_dir" default:""`
	// AppRootDir is the directory manifest keys are relative to.
	AppRootDir string `mapstructure:"app_root_dir" default:"/"`
	// OutputBaseURL is the URL OutputDir is served from. Empty means
	// resolved URLs are bare output-relative paths.
	OutputBaseURL string `mapstructure:"output_base_url" default:"/"`
	// DisableCache reloads metaData.json on every entry point resolution and
	// skips the group cache. Meant for development, where builds change
	// output while the application is running.
	DisableCache bool `mapstructure:"disable_cache" default:"false"`
}

// DefaultConfig returns the configuration for outputDir with every other
// option at its default.
func DefaultConfig(outputDir string) Config {
	return Config{
		OutputDir:     outputDir,
		AppRootDir:    string(filepath.Separator),
		OutputBaseURL: "/",
	}
}

// Validate reports whether the configuration can construct a Hook.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory is required", ErrInvalidConfig)
	}
	if !filepath.IsAbs(c.OutputDir) {
		return fmt.Errorf("%w: output directory %q must be absolute", ErrInvalidConfig, c.OutputDir)
	}
	if c.AppRootDir != "" && !filepath.IsAbs(c.AppRootDir) {
		return fmt.Errorf("%w: app root directory %q must be absolute", ErrInvalidConfig, c.AppRootDir)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.AppRootDir == "" {
		c.AppRootDir = string(filepath.Separator)
	}
	return c
}
