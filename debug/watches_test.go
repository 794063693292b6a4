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

package debug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vc64/core/debug"
)

func TestWatchesReadMatch(t *testing.T) {
	w := debug.NewWatches()
	w.Add(debug.Watch{Address: 0xd020, Write: false})

	hits := w.Check(0xd020, false, 0x0e)
	assert.Len(t, hits, 1)
	assert.Equal(t, uint16(0xd020), hits[0].Address)
}

func TestWatchesDirectionMustMatch(t *testing.T) {
	w := debug.NewWatches()
	w.Add(debug.Watch{Address: 0xd020, Write: true})

	assert.Empty(t, w.Check(0xd020, false, 0x00))
}

func TestWatchesValueMatch(t *testing.T) {
	w := debug.NewWatches()
	w.Add(debug.Watch{Address: 0xd020, Write: true, MatchValue: true, Value: 0x02})

	assert.Empty(t, w.Check(0xd020, true, 0x01))
	hits := w.Check(0xd020, true, 0x02)
	assert.Len(t, hits, 1)
}

func TestWatchesDedupsRepeatedAccess(t *testing.T) {
	w := debug.NewWatches()
	w.Add(debug.Watch{Address: 0xd020, Write: false})

	hits := w.Check(0xd020, false, 0x00)
	assert.Len(t, hits, 1)

	// the exact same access repeated (e.g. a CPU idling on the same
	// address) is not reported a second time in a row
	hits = w.Check(0xd020, false, 0x00)
	assert.Empty(t, hits)

	// a genuinely new access to the same address fires again
	hits = w.Check(0xd020, false, 0x01)
	assert.Len(t, hits, 1)
}

func TestWatchesRemove(t *testing.T) {
	w := debug.NewWatches()
	w.Add(debug.Watch{Address: 0xd020})
	w.Add(debug.Watch{Address: 0xd021})

	assert.NoError(t, w.Remove(0))
	assert.Len(t, w.List(), 1)
	assert.Equal(t, uint16(0xd021), w.List()[0].Address)

	assert.Error(t, w.Remove(5))
}

func TestWatchesClear(t *testing.T) {
	w := debug.NewWatches()
	w.Add(debug.Watch{Address: 0xd020})
	w.Clear()
	assert.Empty(t, w.List())
}

func TestWatchString(t *testing.T) {
	assert.Equal(t, "read $d020", debug.Watch{Address: 0xd020}.String())
	assert.Equal(t, "write $d020", debug.Watch{Address: 0xd020, Write: true}.String())
	assert.Equal(t, "write $d020=$0e", debug.Watch{
		Address: 0xd020, Write: true, MatchValue: true, Value: 0x0e,
	}.String())
}
