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

package via_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vc64/core/hardware/drive/via"
)

func TestTimer1UnderflowRaisesIRQWhenEnabled(t *testing.T) {
	v := via.New("VIA1")

	assert.NoError(t, v.Write(0x04, 0x02)) // T1C-L
	assert.NoError(t, v.Write(0x05, 0x00)) // T1C-H -> latch = 2, loads counter
	assert.NoError(t, v.Write(0x0e, 0xc0)) // IER: enable T1 (bit7 set => OR in)

	v.StepCycle() // 2 -> 1
	assert.False(t, v.IRQLine())
	v.StepCycle() // 1 -> 0
	assert.False(t, v.IRQLine())
	v.StepCycle() // 0 -> underflow, reload to 2
	assert.True(t, v.IRQLine())

	f, err := v.Read(0x0d) // IFR
	assert.NoError(t, err)
	assert.NotZero(t, f&0x40) // T1 flag
	assert.NotZero(t, f&0x80) // IRQ summary bit

	// reading the counter low byte clears the T1 flag
	_, err = v.Read(0x04)
	assert.NoError(t, err)
	f, err = v.Read(0x0d)
	assert.NoError(t, err)
	assert.Zero(t, f&0x40)
	assert.False(t, v.IRQLine())
}

func TestPortReadFallsBackToFloatingHighWithoutPeripheral(t *testing.T) {
	v := via.New("VIA2")

	assert.NoError(t, v.Write(0x03, 0x0f)) // DDRA: low nibble output
	assert.NoError(t, v.Write(0x01, 0x05)) // ORA: drive low nibble to 0101

	got, err := v.Read(0x01)
	assert.NoError(t, err)
	assert.EqualValues(t, 0xf5, got) // driven nibble plus floating-high top nibble
}

type fakePeripheral struct {
	written uint8
	fixed   uint8
}

func (p *fakePeripheral) Write(value uint8)       { p.written = value }
func (p *fakePeripheral) Read(driven uint8) uint8 { return driven | p.fixed }

func TestPeripheralObservesWritesAndContributesToReads(t *testing.T) {
	v := via.New("VIA2")
	p := &fakePeripheral{fixed: 0x80}
	v.PortB = p

	assert.NoError(t, v.Write(0x02, 0xff)) // DDRB all output
	assert.NoError(t, v.Write(0x00, 0x3c)) // ORB
	assert.EqualValues(t, 0x3c, p.written)

	got, err := v.Read(0x00)
	assert.NoError(t, err)
	assert.EqualValues(t, 0xbc, got) // driven bits OR'd with the peripheral's fixed high bit
}

func TestCA1RisingEdgeRaisesFlagWhenConfiguredPositive(t *testing.T) {
	v := via.New("VIA2")

	assert.NoError(t, v.Write(0x0c, 0x01)) // PCR: CA1 positive-edge
	assert.NoError(t, v.Write(0x0e, 0x82)) // IER: enable CA1

	v.SetCA1(false)
	assert.False(t, v.IRQLine())
	v.SetCA1(true)
	assert.True(t, v.IRQLine())

	f, err := v.Read(0x0d)
	assert.NoError(t, err)
	assert.NotZero(t, f&0x02) // CA1 flag

	assert.NoError(t, v.Write(0x0d, 0x02)) // write 1 to clear CA1 flag
	assert.False(t, v.IRQLine())
}

func TestPeekDoesNotClearTimerFlag(t *testing.T) {
	v := via.New("VIA1")

	assert.NoError(t, v.Write(0x04, 0x01))
	assert.NoError(t, v.Write(0x05, 0x00))
	v.StepCycle() // 1 -> 0
	v.StepCycle() // underflow

	_, err := v.Peek(0x04)
	assert.NoError(t, err)
	f, err := v.Read(0x0d)
	assert.NoError(t, err)
	assert.NotZero(t, f&0x40) // still set, Peek must not clear it
}
