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

package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"bennypowers.dev/cartero/internal/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		cfg   logger.Config
		level zapcore.Level
	}{
		{"defaults", logger.Config{}, zapcore.InfoLevel},
		{"debug console", logger.Config{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{"warn json", logger.Config{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{"error", logger.Config{Level: "error"}, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, l)

			assert.True(t, l.Core().Enabled(tt.level))
			if tt.level > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.level-1))
			}
		})
	}
}

func TestNewInvalid(t *testing.T) {
	_, err := logger.New(&logger.Config{Level: "loud"})
	assert.Error(t, err)

	_, err = logger.New(&logger.Config{Format: "xml"})
	assert.Error(t, err)
}
