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

package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrMetadataUnreadable indicates metaData.json could not be read or parsed
	// while caching is enabled.
	ErrMetadataUnreadable = errors.New("build metadata could not be read")

	// ErrIncompatibleLegacyFormat indicates the output directory was written by an
	// old build tool that produced package_map.json instead of metaData.json.
	ErrIncompatibleLegacyFormat = errors.New("build output uses an incompatible legacy format")

	// ErrOutdatedFormatVersion indicates metaData.json parsed but its formatVersion
	// is below MinFormatVersion.
	ErrOutdatedFormatVersion = errors.New("build metadata format version is outdated")

	// ErrGroupListingUnreadable indicates an asset group's assets.json could not be read.
	ErrGroupListingUnreadable = errors.New("asset group listing could not be read")

	// ErrGroupListingMalformed indicates an asset group's assets.json is not a valid listing.
	ErrGroupListingMalformed = errors.New("asset group listing is malformed")
)
