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
	"runtime"
	"sync"

	"bennypowers.dev/cartero/manifest"
)

// Result holds the outcome of resolving one entry point in a batch.
type Result struct {
	EntryPoint string
	Listing    *manifest.Listing
	Err        error
}

// ResolveEntryPoints resolves many entry points in parallel.
// Every result is delivered on the returned channel, which is closed once all
// entry points are processed. Results arrive in completion order.
// A parallel value of zero or less uses one worker per CPU.
func (h *Hook) ResolveEntryPoints(entryPointPaths []string, parallel int) <-chan Result {
	results := make(chan Result, len(entryPointPaths))

	go func() {
		defer close(results)

		if parallel <= 0 {
			parallel = runtime.NumCPU()
		}

		jobs := make(chan string, len(entryPointPaths))

		var wg sync.WaitGroup
		for range parallel {
			wg.Go(func() {
				for entryPoint := range jobs {
					listing, err := h.ResolveEntryPoint(entryPoint)
					results <- Result{EntryPoint: entryPoint, Listing: listing, Err: err}
				}
			})
		}

		for _, entryPoint := range entryPointPaths {
			jobs <- entryPoint
		}
		close(jobs)

		wg.Wait()
	}()

	return results
}
