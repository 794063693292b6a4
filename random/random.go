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

// Package random supplies the "noise" used to seed memory and registers on
// power-up. Real silicon starts in an undefined state; some programs (most
// famously a handful of early C64 cracks and fast-loaders) rely on that
// undefined state being not-all-zero, so a believable emulator can't simply
// boot everything to zero either.
//
// Two flavours are offered. NoRewind draws from the process-wide math/rand
// source and is never reproducible. Rewindable derives its value from the
// emulated machine's current frame/line/cycle position, so that rewinding
// the emulation (or replaying an input recording) to the same point
// reproduces the same "random" numbers - essential for deterministic replay
// and regression testing.
package random

import (
	"math/rand"
)

// Coords is the minimal playfield position needed to seed a reproducible
// value: the video frame counter, the raster line within the frame, and the
// clock cycle within the line.
type Coords struct {
	Frame int
	Line  int
	Cycle int
}

// CoordsProvider is implemented by anything that can report the machine's
// current playfield position - in practice, the VIC-II.
type CoordsProvider interface {
	GetCoords() Coords
}

// Random is a convenience wrapper over two sources of randomness: a
// reproducible one, keyed to the emulated machine's timing, and a
// non-reproducible one for cases where determinism doesn't matter.
type Random struct {
	tv CoordsProvider

	// ZeroSeed forces Rewindable to use a fixed seed regardless of the
	// playfield position, which is what regression tests want: the same two
	// Random instances, fed the same Coords, produce the same sequence.
	ZeroSeed bool

	rand *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(tv CoordsProvider) *Random {
	return &Random{
		tv:   tv,
		rand: rand.New(rand.NewSource(1)),
	}
}

// NoRewind returns a non-reproducible random number in the range [0, limit].
func (r *Random) NoRewind(limit int) int {
	if limit <= 0 {
		return 0
	}
	return rand.Intn(limit + 1)
}

// Rewindable returns a value in the range [0, limit] derived from the
// current playfield position, so that two Random instances observing the
// same Coords sequence (e.g. during a rewind or a recorded-input replay)
// always agree.
func (r *Random) Rewindable(limit int) int {
	if limit <= 0 {
		return 0
	}

	var seed int64 = 1
	if !r.ZeroSeed && r.tv != nil {
		c := r.tv.GetCoords()
		seed = int64(c.Frame)*2097152 + int64(c.Line)*512 + int64(c.Cycle) + 1
	}

	src := rand.NewSource(seed)
	return rand.New(src).Intn(limit + 1)
}
