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

// Package pathkey turns absolute source paths into the relative keys the
// build tool writes into metaData.json.
//
// Keys must be computed exactly the way the build tool computed them. A key
// that differs by a separator or a trailing slash does not produce an error,
// it simply misses in the manifest.
package pathkey

import "path/filepath"

// Normalize returns absolutePath relative to appRootDir.
//
// Both paths are cleaned and, when relative, resolved against the working
// directory first. The result walks upward with ".." segments when
// absolutePath lies outside appRootDir, and is the empty string when the two
// paths are the same. Normalize never fails.
func Normalize(appRootDir, absolutePath string) string {
	from := resolve(appRootDir)
	to := resolve(absolutePath)
	if from == to {
		return ""
	}

	rel, err := filepath.Rel(from, to)
	if err != nil {
		// Only reachable across volumes on Windows.
		return to
	}
	return rel
}

func resolve(p string) string {
	if p == "" {
		p = "."
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}
