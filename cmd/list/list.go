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

// Package list provides the list command for cartero.
package list

import (
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/cartero/internal/cli"
	"bennypowers.dev/cartero/internal/output"
)

// Cmd is the list command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List the entry points of the current build",
	Long:  `List the keys of every entry point recorded in the build manifest, sorted.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

func run(cmd *cobra.Command, args []string) error {
	env, err := cli.Setup()
	if err != nil {
		return err
	}
	defer env.Close()

	entryPoints, err := env.Hook.EntryPoints()
	if err != nil {
		return err
	}

	if format, _ := cmd.Flags().GetString("format"); format == "json" {
		if entryPoints == nil {
			entryPoints = []string{}
		}
		return output.JSON(env.FS, entryPoints)
	}
	return output.Text(env.FS, strings.Join(entryPoints, "\n"))
}
