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

// Package assets provides the assets command for cartero.
package assets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"bennypowers.dev/cartero/hook"
	"bennypowers.dev/cartero/internal/cli"
	"bennypowers.dev/cartero/internal/output"
)

// Cmd is the assets cobra command that prints the asset group listing of one
// or more entry point source files.
var Cmd = &cobra.Command{
	Use:   "assets [entry...]",
	Short: "Print the script and style assets of entry points",
	Long: `Print the script and style assets a build emitted for entry point source files.

For a single entry point, outputs the listing as JSON.
For multiple entry points (via arguments or --glob), outputs NDJSON with one listing per line.`,
	Example: `  # Assets of a single entry point
  cartero assets views/home/index.js --output-dir build

  # Several entry points (NDJSON output)
  cartero assets views/home/index.js views/about/index.js

  # Entry points matching a glob pattern
  cartero assets --glob "views/**/index.js" -j 8`,
	RunE: run,
}

// batchLine is one NDJSON record of batch output.
type batchLine struct {
	EntryPoint string   `json:"entryPoint"`
	Script     []string `json:"script,omitempty"`
	Style      []string `json:"style,omitempty"`
	Error      string   `json:"error,omitempty"`
}

func init() {
	Cmd.Flags().String("glob", "", "Glob pattern to match entry point files (e.g., \"views/**/index.js\")")
	Cmd.Flags().IntP("jobs", "j", 0, "Number of parallel workers (default: number of CPUs)")
}

func run(cmd *cobra.Command, args []string) error {
	globPattern, _ := cmd.Flags().GetString("glob")
	entries, err := collectEntries(args, globPattern)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no entry points: provide file arguments or use --glob")
	}

	env, err := cli.Setup()
	if err != nil {
		return err
	}
	defer env.Close()

	if len(entries) == 1 {
		listing, err := env.Hook.ResolveEntryPoint(entries[0])
		if err != nil {
			return err
		}
		return output.JSON(env.FS, listing)
	}

	parallel, _ := cmd.Flags().GetInt("jobs")
	return runBatch(env.Hook, entries, parallel)
}

// collectEntries gathers entry points from args and the glob pattern,
// deduplicating by absolute path.
func collectEntries(args []string, globPattern string) ([]string, error) {
	seen := make(map[string]struct{})
	var entries []string

	add := func(p string) error {
		absPath, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("invalid entry point path %q: %w", p, err)
		}
		if _, exists := seen[absPath]; !exists {
			seen[absPath] = struct{}{}
			entries = append(entries, absPath)
		}
		return nil
	}

	for _, arg := range args {
		if err := add(arg); err != nil {
			return nil, err
		}
	}

	if globPattern != "" {
		matches, err := doublestar.FilepathGlob(globPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern: %w", err)
		}
		for _, match := range matches {
			if err := add(match); err != nil {
				return nil, err
			}
		}
	}

	return entries, nil
}

func runBatch(h *hook.Hook, entries []string, parallel int) error {
	encoder := json.NewEncoder(os.Stdout)
	var errorCount, totalCount int

	for result := range h.ResolveEntryPoints(entries, parallel) {
		totalCount++
		line := batchLine{EntryPoint: h.Key(result.EntryPoint)}
		if result.Err != nil {
			errorCount++
			line.Error = result.Err.Error()
		} else {
			line.Script = result.Listing.Script
			line.Style = result.Listing.Style
		}
		if err := encoder.Encode(line); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding result for %s: %v\n", result.EntryPoint, err)
		}
	}

	if errorCount == totalCount {
		return fmt.Errorf("all %d entry points failed to resolve", errorCount)
	}
	return nil
}
