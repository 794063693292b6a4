// This file is part of VirtualC64.
//
// VirtualC64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VirtualC64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VirtualC64.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vc64/core/logger"
)

// TestCentralLogger exercises the package-level central logger and its
// WriteCentral/TailCentral helpers.
func TestCentralLogger(t *testing.T) {
	logger.ClearCentral()
	w := &strings.Builder{}

	logger.WriteCentral(w)
	assert.Equal(t, "", w.String())

	logger.Log("test", "this is a test")
	logger.WriteCentral(w)
	assert.Equal(t, "test: this is a test\n", w.String())

	// clear the buffer before continuing, makes comparisons easier to manage
	w.Reset()

	logger.Log("test2", "this is another test")
	logger.WriteCentral(w)
	assert.Equal(t, "test: this is a test\ntest2: this is another test\n", w.String())

	// asking for too many entries in a TailCentral should be okay
	w.Reset()
	logger.TailCentral(w, 100)
	assert.Equal(t, "test: this is a test\ntest2: this is another test\n", w.String())

	// asking for exactly the correct number of entries is okay
	w.Reset()
	logger.TailCentral(w, 2)
	assert.Equal(t, "test: this is a test\ntest2: this is another test\n", w.String())

	// asking for fewer entries is okay too
	w.Reset()
	logger.TailCentral(w, 1)
	assert.Equal(t, "test2: this is another test\n", w.String())

	// and no entries
	w.Reset()
	logger.TailCentral(w, 0)
	assert.Equal(t, "", w.String())

	logger.ClearCentral()
}
