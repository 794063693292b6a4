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

// Package instance defines those parts of the emulation that might change
// between different instantiations of the Machine type, but aren't the
// machine itself - handy when running more than one emulated C64 in the
// same process (e.g. a test harness comparing two configurations side by
// side).
package instance

import (
	"github.com/vc64/core/config"
	"github.com/vc64/core/random"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the Machine type, but is not actually the
// machine itself.
type Instance struct {
	Config *config.Config
	Random *random.Random
}

// NewInstance is the preferred method of initialisation for the Instance
// type. coords supplies the machine's current playfield position to the
// random number source, so that reproducible randomisation (see
// random.Random.Rewindable) can be tied to the emulated timeline rather
// than to the wall clock.
func NewInstance(coords random.CoordsProvider) *Instance {
	cfg := config.Default()
	return &Instance{
		Config: &cfg,
		Random: random.NewRandom(coords),
	}
}

// Normalise puts the instance into a known default state. Useful for
// regression testing, where the initial state must be identical on every
// run.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	*ins.Config = config.Default()
}
