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

import "errors"

// Sentinel errors for the hook package
var (
	// ErrMetadataUnavailable indicates no usable metaData.json is loaded. When a
	// reload caused it, the reload's manifest error is wrapped as well.
	ErrMetadataUnavailable = errors.New("build metadata is unavailable")

	// ErrEntryPointNotFound indicates the entry point has no entry in the manifest.
	ErrEntryPointNotFound = errors.New("no assets found for entry point")

	// ErrAssetNotFound indicates the source asset has no entry in the manifest.
	ErrAssetNotFound = errors.New("no output url found for asset")

	// ErrInvalidConfig indicates a Config failed validation.
	ErrInvalidConfig = errors.New("invalid hook configuration")
)
