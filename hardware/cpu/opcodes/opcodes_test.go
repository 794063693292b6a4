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

package opcodes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vc64/core/hardware/cpu/opcodes"
)

// every one of the 256 possible opcode bytes must decode to a Definition -
// a CPU fetching an instruction from arbitrary memory content (including
// zero-filled RAM) must never find a nil table entry.
func TestTableHasNoGaps(t *testing.T) {
	for i := 0; i < 256; i++ {
		op := uint8(i)
		assert.NotNilf(t, opcodes.Table[op], "opcode %#02x has no definition", op)
	}
}

func TestTableIndexedByOwnOpcode(t *testing.T) {
	for i := 0; i < 256; i++ {
		op := uint8(i)
		assert.Equal(t, op, opcodes.Table[op].OpCode)
	}
}

func TestJamOpcodesAreInterruptEffect(t *testing.T) {
	for _, op := range []uint8{0x02, 0x12, 0x22, 0x32, 0x42} {
		def := opcodes.Table[op]
		assert.Equal(t, opcodes.JAM, def.Operator)
		assert.Equal(t, opcodes.Interrupt, def.Effect)
	}
}

func TestKnownOfficialOpcodeShapes(t *testing.T) {
	brk := opcodes.Table[0x00]
	assert.Equal(t, opcodes.BRK, brk.Operator)
	assert.Equal(t, 7, brk.Cycles)

	lda := opcodes.Table[0xa9]
	assert.Equal(t, opcodes.LDA, lda.Operator)
	assert.Equal(t, opcodes.Immediate, lda.AddressingMode)
	assert.Equal(t, 2, lda.Bytes)
}
