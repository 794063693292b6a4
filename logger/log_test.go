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
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vc64/core/logger"
)

// test the Tail() method of a standalone Logger instance
func TestLoggerTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	assert.Equal(t, "", w.String())

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	assert.Equal(t, "test: this is a test\n", w.String())

	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	assert.Equal(t, "test: this is a test\ntest2: this is another test\n", w.String())

	w.Reset()
	log.Tail(w, 100)
	assert.Equal(t, "test: this is a test\ntest2: this is another test\n", w.String())

	w.Reset()
	log.Tail(w, 2)
	assert.Equal(t, "test: this is a test\ntest2: this is another test\n", w.String())

	w.Reset()
	log.Tail(w, 1)
	assert.Equal(t, "test2: this is another test\n", w.String())

	w.Reset()
	log.Tail(w, 0)
	assert.Equal(t, "", w.String())
}

// test permissions by randomising whether logging is allowed or not. there's
// no need to do the randomisation but it's as good a demonstration as
// anything else
type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for range 100 {
		p.allow = rand.IntN(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			assert.Equal(t, "tag: detail\n", w.String())
		} else {
			assert.Equal(t, "", w.String())
		}
	}
}

// the Log() function explicitly handles error types by using the Error() result
func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("test error")

	log.Log(logger.Allow, "tag", err)
	log.Write(w)
	assert.Equal(t, "tag: test error\n", w.String())

	log.Clear()
	w.Reset()

	// test "wrapping" of errors using the %v verb
	log.Logf(logger.Allow, "tag", "wrapped: %v", err)
	log.Write(w)
	assert.Equal(t, "tag: wrapped: test error\n", w.String())
}

// the Log() function explicitly handles Stringer types
type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestStringerLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", stringerTest{})
	log.Write(w)
	assert.Equal(t, "tag: stringer test\n", w.String())
}

// for explicitly unsupported types, the Log() function will log the detail
// argument using the %v verb from the fmt package
func TestIntLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	assert.Equal(t, "tag: 100\n", w.String())
}
