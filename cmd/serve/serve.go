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

// Package serve provides the serve command for cartero.
package serve

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"bennypowers.dev/cartero/internal/cli"
	"bennypowers.dev/cartero/server"
)

// Cmd is the serve command that exposes asset resolution over HTTP for
// server-side renderers that cannot link cartero directly.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve asset resolution over HTTP",
	Long: `Start an HTTP sidecar answering asset resolution queries:

  GET /assets?entry=<path>   asset group listing of an entry point
  GET /tags?entry=<path>     script and style markup of an entry point
  GET /url?asset=<path>      output URL of a source asset
  GET /entrypoints           every entry point key of the build`,
	Example: `  cartero serve --output-dir build --addr 127.0.0.1:7070`,
	Args:    cobra.NoArgs,
	RunE:    run,
}

func init() {
	Cmd.Flags().String("addr", "", "Listen address (default: 127.0.0.1:7070)")
	_ = viper.BindPFlag("server.address", Cmd.Flags().Lookup("addr"))
}

func run(cmd *cobra.Command, args []string) error {
	env, err := cli.Setup()
	if err != nil {
		return err
	}
	defer env.Close()

	app := server.New(env.Hook, env.Logger)
	addr := env.Config.Server.Address

	errs := make(chan error, 1)
	go func() {
		env.Logger.Info("Starting server",
			zap.String("address", addr),
			zap.String("outputDir", env.Config.Hook.OutputDir),
		)
		errs <- app.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errs:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
		env.Logger.Info("Shutting down server...")
		return app.Shutdown()
	}
}
