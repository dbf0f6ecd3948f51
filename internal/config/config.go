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

// Package config loads cartero's configuration from defaults, a .env file,
// an optional config file, CARTERO_* environment variables and bound flags.
package config

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"bennypowers.dev/cartero/hook"
	"bennypowers.dev/cartero/internal/logger"
	"bennypowers.dev/cartero/server"
)

// EnvPrefix prefixes every environment variable, e.g. CARTERO_HOOK_OUTPUT_DIR.
const EnvPrefix = "CARTERO"

// Config holds all configuration for the application.
type Config struct {
	// Hook configures manifest resolution.
	Hook hook.Config `mapstructure:"hook"`
	// Log configures the logger.
	Log logger.Config `mapstructure:"log"`
	// Server configures the HTTP sidecar.
	Server server.Config `mapstructure:"server"`
}

// LoadConfig loads configuration into v and unmarshals it.
//
// dir holds the optional .env and cartero.{yaml,json,toml} files. A non-empty
// configFile is read instead of searching dir and must exist. Flags bound to
// v beforehand take precedence over everything else. Relative directories are
// made absolute against the working directory.
func LoadConfig(v *viper.Viper, dir, configFile string) (*Config, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	bindValues(v, Config{}, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("cartero")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	var err error
	if config.Hook.OutputDir, err = absDir(config.Hook.OutputDir); err != nil {
		return nil, err
	}
	if config.Hook.AppRootDir, err = absDir(config.Hook.AppRootDir); err != nil {
		return nil, err
	}

	return &config, nil
}

func absDir(dir string) (string, error) {
	if dir == "" || filepath.IsAbs(dir) {
		return dir, nil
	}
	return filepath.Abs(dir)
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
