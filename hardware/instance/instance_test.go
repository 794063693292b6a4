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

package instance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vc64/core/config"
	"github.com/vc64/core/hardware/instance"
	"github.com/vc64/core/random"
)

type fakeCoords struct{}

func (fakeCoords) GetCoords() random.Coords { return random.Coords{Frame: 1, Line: 2, Cycle: 3} }

func TestNewInstanceDefaults(t *testing.T) {
	ins := instance.NewInstance(fakeCoords{})
	assert.NotNil(t, ins.Config)
	assert.NotNil(t, ins.Random)
	assert.Equal(t, config.Default(), *ins.Config)
}

func TestNormaliseResetsConfigAndSeed(t *testing.T) {
	ins := instance.NewInstance(fakeCoords{})
	ins.Config.PowerGrid = config.Unstable60Hz
	ins.Random.ZeroSeed = false

	ins.Normalise()

	assert.Equal(t, config.Default(), *ins.Config)
	assert.True(t, ins.Random.ZeroSeed)
}
