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

// Package tags provides the tags command for cartero.
package tags

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/cartero/internal/cli"
	"bennypowers.dev/cartero/internal/output"
)

// Cmd is the tags command.
var Cmd = &cobra.Command{
	Use:   "tags <entry>",
	Short: "Print script and link tags for an entry point",
	Long: `Print the <script> and <link> markup for the assets of an entry point.

The html format prints script tags followed by style tags, one per line.
The json format prints an object with "script" and "style" markup blocks.`,
	Example: `  cartero tags views/home/index.js --base-url /static/
  cartero tags views/home/index.js --format json`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "html", "Output format (html, json)")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "html", "json":
	default:
		return fmt.Errorf("invalid format %q: must be one of html, json", format)
	}

	env, err := cli.Setup()
	if err != nil {
		return err
	}
	defer env.Close()

	scripts, styles, err := env.Hook.RenderTags(args[0])
	if err != nil {
		return err
	}

	if format == "json" {
		return output.JSON(env.FS, map[string]string{
			"script": scripts,
			"style":  styles,
		})
	}

	var blocks []string
	for _, block := range []string{scripts, styles} {
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return output.Text(env.FS, strings.Join(blocks, "\n"))
}
