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

package clocks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vc64/core/hardware/clocks"
)

func TestFieldRates(t *testing.T) {
	assert.InDelta(t, 50.1245, clocks.PALFieldRate, 0.01)
	assert.InDelta(t, 59.8261, clocks.NTSCFieldRate, 0.01)
}

func TestCyclesPerFrameDerived(t *testing.T) {
	assert.Equal(t, clocks.PALCyclesPerLine*clocks.PALLinesPerFrame, clocks.PALCyclesPerFrame)
	assert.Equal(t, clocks.NTSCCyclesPerLine*clocks.NTSCLinesPerFrame, clocks.NTSCCyclesPerFrame)
}
