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

// Command cartero resolves entry points and assets against a front-end build's output.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/cartero/cmd/assets"
	"bennypowers.dev/cartero/cmd/list"
	"bennypowers.dev/cartero/cmd/serve"
	"bennypowers.dev/cartero/cmd/tags"
	"bennypowers.dev/cartero/cmd/url"
	"bennypowers.dev/cartero/cmd/version"
)

var (
	cpuprofile     string
	cpuprofileFile *os.File
	rootCmd        = &cobra.Command{
		Use:   "cartero",
		Short: "Resolve front-end build assets for server-side templates",
		Long: `cartero reads the manifest a front-end build writes to its output directory
and answers which scripts and stylesheets belong to an entry point, and where a
source asset was emitted.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cpuprofile != "" {
				f, err := os.Create(cpuprofile)
				if err != nil {
					return fmt.Errorf("could not create CPU profile: %w", err)
				}
				cpuprofileFile = f
				if err := pprof.StartCPUProfile(f); err != nil {
					closeErr := f.Close()
					return errors.Join(
						fmt.Errorf("could not start CPU profile: %w", err),
						closeErr,
					)
				}
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if cpuprofileFile != nil {
				pprof.StopCPUProfile()
				if err := cpuprofileFile.Close(); err != nil {
					return fmt.Errorf("closing CPU profile: %w", err)
				}
			}
			return nil
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("output-dir", "d", "", "Build output directory holding metaData.json")
	flags.String("app-root", "", "Application root entry point keys are relative to (default: /)")
	flags.String("base-url", "", "URL prefix for output files (default: /)")
	flags.Bool("no-cache", false, "Re-read the manifest and listings on every lookup")
	flags.StringP("config", "c", "", "Config file (default: ./cartero.{yaml,json,toml})")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("log-format", "", "Log format (console, json)")
	flags.StringP("output", "o", "", "Output file (default: stdout)")
	flags.StringVar(&cpuprofile, "cpuprofile", "", "Write CPU profile to file")

	_ = viper.BindPFlag("hook.output_dir", flags.Lookup("output-dir"))
	_ = viper.BindPFlag("hook.app_root_dir", flags.Lookup("app-root"))
	_ = viper.BindPFlag("hook.output_base_url", flags.Lookup("base-url"))
	_ = viper.BindPFlag("hook.disable_cache", flags.Lookup("no-cache"))
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))

	rootCmd.AddCommand(assets.Cmd)
	rootCmd.AddCommand(tags.Cmd)
	rootCmd.AddCommand(url.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
