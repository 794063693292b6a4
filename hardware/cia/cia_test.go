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

package cia_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vc64/core/hardware/cia"
)

func TestTimerAUnderflowRaisesIRQWhenUnmasked(t *testing.T) {
	c := cia.New("CIA1")

	assert.NoError(t, c.Write(0x04, 0x02)) // TA lo
	assert.NoError(t, c.Write(0x05, 0x00)) // TA hi -> latch = 2, loads counter
	assert.NoError(t, c.Write(0x0d, 0x81)) // ICR: enable TA IRQ
	assert.NoError(t, c.Write(0x0e, 0x01)) // CRA: START, phi2 clocked, one-shot off (continuous)

	c.StepCycle(true) // counter 2->1
	assert.False(t, c.IRQLine())
	c.StepCycle(true) // counter 1->0
	assert.False(t, c.IRQLine())
	c.StepCycle(true) // counter 0 -> underflow, reload to 2
	assert.True(t, c.IRQLine())

	v, err := c.Read(0x0d) // reading ICR clears it
	assert.NoError(t, err)
	assert.EqualValues(t, 0x81, v&0x81)
	assert.False(t, c.IRQLine())
}

func TestOneShotClearsStartBitOnUnderflow(t *testing.T) {
	c := cia.New("CIA2")

	assert.NoError(t, c.Write(0x04, 0x01))
	assert.NoError(t, c.Write(0x05, 0x00))
	assert.NoError(t, c.Write(0x0e, 0x01|0x08)) // START + RUNMODE one-shot

	c.StepCycle(true) // counter 1->0
	c.StepCycle(true) // counter 0 -> underflow, reload, START auto-cleared
	v, err := c.Read(0x0e)
	assert.NoError(t, err)
	assert.Zero(t, v&0x01) // START bit cleared
}

func TestTimerBClockedByTimerAUnderflow(t *testing.T) {
	c := cia.New("CIA1")

	assert.NoError(t, c.Write(0x04, 0x01)) // TA latch = 1
	assert.NoError(t, c.Write(0x05, 0x00))
	assert.NoError(t, c.Write(0x06, 0x01)) // TB latch = 1
	assert.NoError(t, c.Write(0x07, 0x00))
	assert.NoError(t, c.Write(0x0e, 0x01))      // TA: START, phi2
	assert.NoError(t, c.Write(0x0f, 0x01|0x40)) // TB: START, INMODE=TA underflow

	// TA underflows every other cycle (decrement to zero, then reload+flag);
	// TB only counts on cycles where TA's underflow flag is set, so it takes
	// two TA underflows - four cycles - to underflow TB once.
	for i := 0; i < 4; i++ {
		c.StepCycle(true)
	}
	v, err := c.Read(0x0d)
	assert.NoError(t, err)
	assert.NotZero(t, v&0x02) // TB underflow flag
}

func TestPortReadFallsBackToFloatingHighWithoutPeripheral(t *testing.T) {
	c := cia.New("CIA1")
	assert.NoError(t, c.Write(0x02, 0x0f)) // DDRA: low nibble output
	assert.NoError(t, c.Write(0x00, 0x05)) // PRA

	v, err := c.Read(0x00)
	assert.NoError(t, err)
	assert.EqualValues(t, 0xf5, v) // driven low nibble, floating high nibble
}

type fakePeripheral struct {
	written uint8
}

func (f *fakePeripheral) Write(v uint8)           { f.written = v }
func (f *fakePeripheral) Read(driven uint8) uint8 { return driven | 0x80 }

func TestPortPeripheralObservesWritesAndContributesReads(t *testing.T) {
	c := cia.New("CIA1")
	p := &fakePeripheral{}
	c.PortB = p

	assert.NoError(t, c.Write(0x03, 0xff))
	assert.NoError(t, c.Write(0x01, 0x22))
	assert.EqualValues(t, 0x22, p.written)

	v, err := c.Read(0x01)
	assert.NoError(t, err)
	assert.EqualValues(t, 0xa2, v)
}

func TestTODReadHoursFreezesUntilTenthsRead(t *testing.T) {
	c := cia.New("CIA1")
	assert.NoError(t, c.Write(0x0b, 0x12)) // hours: 12, AM, BCD $12
	assert.NoError(t, c.Write(0x08, 0x00)) // tenths write resumes the clock

	for i := 0; i < 10; i++ {
		c.TickTOD()
	}
	hoursBefore, _ := c.Read(0x0b)
	secAfterFreeze, _ := c.Read(0x09)
	c.TickTOD() // the live clock keeps advancing, the frozen read must not
	secStillFrozen, _ := c.Read(0x09)
	_, _ = c.Read(0x08) // release the freeze
	secLive, _ := c.Read(0x09)

	assert.EqualValues(t, 0x12, hoursBefore&0x1f)
	assert.Equal(t, secAfterFreeze, secStillFrozen)
	_ = secLive
}

func TestRegistersMirrorAcrossIOPage(t *testing.T) {
	c := cia.New("CIA1")
	assert.NoError(t, c.Write(0x02, 0xff))
	v, err := c.Read(0x12) // $0x12 mirrors $0x02 (DDRA) within the 16-register window
	assert.NoError(t, err)
	assert.EqualValues(t, 0xff, v)
}
