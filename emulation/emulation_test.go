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

package emulation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vc64/core/emulation"
)

func TestStateStrings(t *testing.T) {
	cases := map[emulation.State]string{
		emulation.Initialising: "initialising",
		emulation.Running:      "running",
		emulation.Paused:       "paused",
		emulation.Stepping:     "stepping",
		emulation.Halted:       "halted",
		emulation.State(99):    "unknown",
	}
	for state, want := range cases {
		assert.Equal(t, want, state.String())
	}
}
