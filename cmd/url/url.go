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

// Package url provides the url command for cartero.
package url

import (
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/cartero/internal/cli"
	"bennypowers.dev/cartero/internal/output"
)

// Cmd is the url command.
var Cmd = &cobra.Command{
	Use:   "url <asset...>",
	Short: "Print the output URL of source assets",
	Long: `Print the URL a build emitted for each source asset, one per line,
in argument order.`,
	Example: `  cartero url views/home/logo.png --base-url https://cdn.example.com/`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    run,
}

func run(cmd *cobra.Command, args []string) error {
	env, err := cli.Setup()
	if err != nil {
		return err
	}
	defer env.Close()

	urls := make([]string, 0, len(args))
	for _, asset := range args {
		u, err := env.Hook.ResolveAssetURL(asset)
		if err != nil {
			return err
		}
		urls = append(urls, u)
	}
	return output.Text(env.FS, strings.Join(urls, "\n"))
}
