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

// Package cli wires configuration, logging and the hook together for
// cartero's commands.
package cli

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"bennypowers.dev/cartero/fs"
	"bennypowers.dev/cartero/hook"
	"bennypowers.dev/cartero/internal/config"
	"bennypowers.dev/cartero/internal/logger"
)

// Env is everything a command needs to resolve assets.
type Env struct {
	FS     *fs.OSFileSystem
	Config *config.Config
	Logger *zap.Logger
	Hook   *hook.Hook
}

// Setup loads configuration through the global viper instance, which holds
// the root command's bound flags, then builds the logger and the hook.
func Setup() (*Env, error) {
	cfg, err := config.LoadConfig(viper.GetViper(), ".", viper.GetString("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	osfs := fs.NewOSFileSystem()
	h, err := hook.New(osfs, cfg.Hook, logg)
	if err != nil {
		_ = logg.Sync()
		return nil, err
	}

	return &Env{
		FS:     osfs,
		Config: cfg,
		Logger: logg,
		Hook:   h,
	}, nil
}

// Close flushes the logger.
func (e *Env) Close() {
	_ = e.Logger.Sync()
}
