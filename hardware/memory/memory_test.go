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

package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vc64/core/hardware/cpu"
	"github.com/vc64/core/hardware/memory"
)

// stubChip is a minimal bus.CPUBus used to stand in for VIC/SID/CIA1/CIA2 in
// isolation from their real implementations.
type stubChip struct {
	name      string
	lastRead  uint16
	lastWrite uint16
	lastValue uint8
}

func (s *stubChip) Read(address uint16) (uint8, error) {
	s.lastRead = address
	return s.lastValue, nil
}

func (s *stubChip) Write(address uint16, data uint8) error {
	s.lastWrite = address
	s.lastValue = data
	return nil
}

func newMap() (*memory.MemoryMap, *cpu.IOPort) {
	port := &cpu.IOPort{}
	port.Reset()
	mm := memory.NewMemoryMap(port)
	return mm, port
}

func TestPowerOnDefaultBanksInBasicAndKernalROM(t *testing.T) {
	mm, _ := newMap()
	mm.LoadKernalROM(bytes(0x2000, 0xea))
	mm.LoadBasicROM(bytes(0x2000, 0xea))

	// power-on default (LORAM=HIRAM=CHAREN=1, no cartridge) maps BASIC and
	// KERNAL ROM in and the I/O window visible.
	v, err := mm.Read(0xe000)
	assert.NoError(t, err)
	assert.EqualValues(t, 0xea, v)

	v, err = mm.Read(0xa000)
	assert.NoError(t, err)
	assert.EqualValues(t, 0xea, v)
}

func TestBankingSwitchesToRAMWhenHiramLoramCleared(t *testing.T) {
	mm, port := newMap()
	mm.LoadKernalROM(bytes(0x2000, 0xea))

	err := mm.Write(0xe000, 0x42)
	assert.NoError(t, err)
	// KERNAL ROM still banked in: the write landed in shadow RAM, not here.
	v, _ := mm.Read(0xe000)
	assert.EqualValues(t, 0xea, v)

	// clear LORAM/HIRAM, keep CHAREN: $E000 now reads back as RAM.
	port.WriteDDR(0xff)
	port.WriteData(0x04)
	v, err = mm.Read(0xe000)
	assert.NoError(t, err)
	assert.EqualValues(t, 0x42, v)
}

func TestIOWindowRoutesToChips(t *testing.T) {
	mm, _ := newMap()
	vic := &stubChip{name: "vic"}
	sid := &stubChip{name: "sid"}
	cia1 := &stubChip{name: "cia1"}
	cia2 := &stubChip{name: "cia2"}
	mm.Plumb(vic, sid, cia1, cia2, nil)

	assert.NoError(t, mm.Write(0xd020, 0x0e))
	assert.EqualValues(t, 0xd020, vic.lastWrite)

	assert.NoError(t, mm.Write(0xd418, 0x0f))
	assert.EqualValues(t, 0xd418, sid.lastWrite)

	assert.NoError(t, mm.Write(0xdc0d, 0x81))
	assert.EqualValues(t, 0xdc0d, cia1.lastWrite)

	assert.NoError(t, mm.Write(0xdd00, 0x03))
	assert.EqualValues(t, 0xdd00, cia2.lastWrite)
}

func TestColorRAMIsNibbleWide(t *testing.T) {
	mm, _ := newMap()
	assert.NoError(t, mm.Write(0xd800, 0xfe))
	v, err := mm.Read(0xd800)
	assert.NoError(t, err)
	assert.EqualValues(t, 0x0e, v&0x0f)
}

func TestCharROMVisibleWhenCharenClear(t *testing.T) {
	mm, port := newMap()
	mm.LoadCharROM(bytes(0x1000, 0x55))

	port.WriteDDR(0xff)
	port.WriteData(0x03) // LORAM=HIRAM=1, CHAREN=0
	v, err := mm.Read(0xd200)
	assert.NoError(t, err)
	assert.EqualValues(t, 0x55, v)
}

func TestPeekDoesNotConsultBankedChips(t *testing.T) {
	mm, _ := newMap()
	assert.NoError(t, mm.Write(0xd800, 0x07))
	v, err := mm.Peek(0xd800)
	assert.NoError(t, err)
	assert.EqualValues(t, 0x07, v)
}

func bytes(n int, fill uint8) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = fill
	}
	return b
}
