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

func TestBreakpointsHard(t *testing.T) {
	b := debug.NewBreakpoints()
	b.SetHard(0xc000)

	assert.True(t, b.Check(0xc000))
	// a hard breakpoint survives repeated hits
	assert.True(t, b.Check(0xc000))
	assert.False(t, b.Check(0xc001))
}

func TestBreakpointsSoftConsumedOnHit(t *testing.T) {
	b := debug.NewBreakpoints()
	b.SetSoft(0xc000)

	assert.True(t, b.Check(0xc000))
	assert.False(t, b.Check(0xc000))
}

func TestBreakpointsSoftAndHardCombine(t *testing.T) {
	b := debug.NewBreakpoints()
	b.SetSoft(0xc000)
	b.SetHard(0xc000)

	// the soft bit is consumed, but the hard bit keeps the address armed
	assert.True(t, b.Check(0xc000))
	assert.True(t, b.Check(0xc000))

	list := b.List()
	assert.Equal(t, debug.BreakHard, list[0xc000])
}

func TestBreakpointsClear(t *testing.T) {
	b := debug.NewBreakpoints()
	b.SetHard(0xc000)
	b.SetHard(0xd000)

	b.Clear(0xc000)
	assert.False(t, b.Check(0xc000))
	assert.True(t, b.Check(0xd000))

	b.ClearAll()
	assert.False(t, b.Check(0xd000))
	assert.Empty(t, b.List())
}

func TestBreakpointsList(t *testing.T) {
	b := debug.NewBreakpoints()
	b.SetHard(0xc000)
	b.SetSoft(0xd000)

	list := b.List()
	assert.Len(t, list, 2)
	assert.Equal(t, debug.BreakHard, list[0xc000])
	assert.Equal(t, debug.BreakSoft, list[0xd000])
}
