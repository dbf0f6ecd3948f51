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

package mocks

import (
	"github.com/stretchr/testify/mock"

	"bennypowers.dev/cartero/manifest"
)

// Resolver is a mock implementation of server.Resolver
type Resolver struct {
	mock.Mock
}

func (m *Resolver) ResolveEntryPoint(entryPointPath string) (*manifest.Listing, error) {
	args := m.Called(entryPointPath)
	if l, ok := args.Get(0).(*manifest.Listing); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Resolver) RenderTags(entryPointPath string) (string, string, error) {
	args := m.Called(entryPointPath)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *Resolver) ResolveAssetURL(sourcePath string) (string, error) {
	args := m.Called(sourcePath)
	return args.String(0), args.Error(1)
}

func (m *Resolver) EntryPoints() ([]string, error) {
	args := m.Called()
	if s, ok := args.Get(0).([]string); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
