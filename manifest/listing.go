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

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"

	"bennypowers.dev/cartero/fs"
)

// ListingFileName is the per-group listing inside <outputDir>/<groupID>/.
const ListingFileName = "assets.json"

// Listing is the ordered set of output files an asset group needs.
// Order is load order; it is never sorted or deduplicated.
type Listing struct {
	Script []string `json:"script"`
	Style  []string `json:"style"`
}

// Clone returns a copy that shares no slices with l.
func (l *Listing) Clone() *Listing {
	if l == nil {
		return nil
	}
	return &Listing{
		Script: slices.Clone(l.Script),
		Style:  slices.Clone(l.Style),
	}
}

// ListingPath returns the location of a group's assets.json.
func ListingPath(outputDir, groupID string) string {
	return filepath.Join(outputDir, groupID, ListingFileName)
}

// ParseListing parses assets.json content.
func ParseListing(data []byte) (*Listing, error) {
	var l Listing
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// ReadListing reads and parses the listing for groupID.
// Read failures wrap ErrGroupListingUnreadable, parse failures wrap
// ErrGroupListingMalformed.
func ReadListing(fsys fs.FileSystem, outputDir, groupID string) (*Listing, error) {
	listingPath := ListingPath(outputDir, groupID)

	data, err := fsys.ReadFile(listingPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrGroupListingUnreadable, listingPath, err)
	}

	l, err := ParseListing(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrGroupListingMalformed, listingPath, err)
	}
	return l, nil
}
