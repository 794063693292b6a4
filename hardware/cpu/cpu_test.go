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

package cpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vc64/core/hardware/cpu"
	"github.com/vc64/core/hardware/instance"
)

// mockMem is a flat 64K RAM image, good enough for exercising the CPU in
// isolation from the real bank-switched memory map.
type mockMem struct {
	internal [0x10000]uint8
}

func (mem *mockMem) put(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

func newCPU() (*cpu.CPU, *mockMem) {
	mem := &mockMem{}
	ins := instance.NewInstance(nil)
	ins.Normalise()
	mc := cpu.NewCPU(ins, mem)
	mc.PC.Load(0)
	return mc, mem
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	err := mc.ExecuteInstruction(func() error { return nil })
	assert.NoError(t, err)
}

func TestLoadStoreAndFlags(t *testing.T) {
	mc, mem := newCPU()

	// LDA #$80; STA $0200; LDX #$00; STX $0201
	mem.put(0, 0xa9, 0x80, 0x8d, 0x00, 0x02, 0xa2, 0x00, 0x8e, 0x01, 0x02)
	step(t, mc)
	assert.EqualValues(t, 0x80, mc.A.Value())
	assert.True(t, mc.Status.Sign)
	assert.False(t, mc.Status.Zero)

	step(t, mc)
	v, _ := mem.Read(0x0200)
	assert.EqualValues(t, 0x80, v)

	step(t, mc)
	assert.True(t, mc.Status.Zero)

	step(t, mc)
	v, _ = mem.Read(0x0201)
	assert.EqualValues(t, 0, v)
}

func TestAdcCarryAndOverflow(t *testing.T) {
	mc, mem := newCPU()

	// CLC; LDA #$7f; ADC #$01 -> overflow set (positive + positive = negative)
	mem.put(0, 0x18, 0xa9, 0x7f, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	assert.EqualValues(t, 0x80, mc.A.Value())
	assert.True(t, mc.Status.Overflow)
	assert.True(t, mc.Status.Sign)
	assert.False(t, mc.Status.Carry)
}

func TestSbcBorrow(t *testing.T) {
	mc, mem := newCPU()

	// SEC; LDA #$05; SBC #$08 -> borrow, carry clear, result wraps
	mem.put(0, 0x38, 0xa9, 0x05, 0xe9, 0x08)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	assert.EqualValues(t, 0xfd, mc.A.Value())
	assert.False(t, mc.Status.Carry)
}

func TestDecimalAdc(t *testing.T) {
	mc, mem := newCPU()

	// SED; CLC; LDA #$09; ADC #$01 -> BCD 10, i.e. $10
	mem.put(0, 0xf8, 0x18, 0xa9, 0x09, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	assert.EqualValues(t, 0x10, mc.A.Value())
	assert.False(t, mc.Status.Carry)
}

func TestStackPushPull(t *testing.T) {
	mc, mem := newCPU()

	// LDA #$42; PHA; LDA #$00; PLA
	mem.put(0, 0xa9, 0x42, 0x48, 0xa9, 0x00, 0x68)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	assert.EqualValues(t, 0, mc.A.Value())
	step(t, mc)
	assert.EqualValues(t, 0x42, mc.A.Value())
}

func TestJsrRts(t *testing.T) {
	mc, mem := newCPU()

	// JSR $0010; (at $0010: LDX #$7; RTS)
	mem.put(0, 0x20, 0x10, 0x00)
	mem.put(0x0010, 0xa2, 0x07, 0x60)
	step(t, mc) // JSR
	assert.EqualValues(t, 0x0010, mc.PC.Value())
	step(t, mc) // LDX #7
	assert.EqualValues(t, 7, mc.X.Value())
	step(t, mc) // RTS
	assert.EqualValues(t, 0x0003, mc.PC.Value())
}

func TestBranchTaken(t *testing.T) {
	mc, mem := newCPU()

	// LDA #$00; BEQ +2 (skips the next instruction); LDX #$ff; LDY #$01
	mem.put(0, 0xa9, 0x00, 0xf0, 0x02, 0xa2, 0xff, 0xa0, 0x01)
	step(t, mc) // LDA #0
	step(t, mc) // BEQ, taken
	assert.EqualValues(t, 6, mc.PC.Value())
	step(t, mc) // LDY #1
	assert.EqualValues(t, 1, mc.Y.Value())
	assert.EqualValues(t, 0, mc.X.Value())
}

func TestIndirectJmpPageWrapBug(t *testing.T) {
	mc, mem := newCPU()

	// pointer sits at the end of a page: the bug fetches the high byte from
	// the start of the same page, not the next one.
	mem.put(0x02ff, 0x00, 0x80)
	mem.put(0x0200, 0x34)
	mem.put(0, 0x6c, 0xff, 0x02) // JMP ($02ff)
	step(t, mc)
	assert.EqualValues(t, 0x3400, mc.PC.Value())
	assert.NotEmpty(t, mc.LastResult.CPUBug)
}

func TestIndexedIndirectAddressing(t *testing.T) {
	mc, mem := newCPU()

	// LDX #$04; pointer table at $0020+X -> $0024/$0025 holds $1234
	mem.put(0x0024, 0x34, 0x12)
	mem.put(0x1234, 0x99)
	mem.put(0, 0xa2, 0x04, 0xa1, 0x20) // LDX #4; LDA ($20,X)
	step(t, mc)
	step(t, mc)
	assert.EqualValues(t, 0x99, mc.A.Value())
}

func TestPageCrossPenalty(t *testing.T) {
	mc, mem := newCPU()

	mem.put(0x0200, 0xaa)
	mem.put(0x02ff, 0x55)
	// LDX #$01; LDA $01ff,X (crosses into $0200)
	mem.put(0, 0xa2, 0x01, 0xbd, 0xff, 0x01)
	step(t, mc)
	step(t, mc)
	assert.EqualValues(t, 0xaa, mc.A.Value())
	assert.Equal(t, 5, mc.LastResult.Cycles)
}

func TestIllegalSlo(t *testing.T) {
	mc, mem := newCPU()

	// LDA #$01; SLO $10 (memory $10 = $80: ASL -> $00,carry set; A|=0 -> A stays $01)
	mem.put(0x0010, 0x80)
	mem.put(0, 0xa9, 0x01, 0x07, 0x10)
	step(t, mc)
	step(t, mc)
	assert.True(t, mc.Status.Carry)
	v, _ := mem.Read(0x0010)
	assert.EqualValues(t, 0x00, v)
	assert.EqualValues(t, 0x01, mc.A.Value())
}

func TestJamHaltsCPU(t *testing.T) {
	mc, mem := newCPU()

	mem.put(0, 0x02) // JAM
	err := mc.ExecuteInstruction(func() error { return nil })
	assert.NoError(t, err)
	assert.True(t, mc.Killed)

	before := mc.PC.Value()
	err = mc.ExecuteInstruction(func() error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, before, mc.PC.Value())
}

func TestNewCPUWithUnnormalisedInstance(t *testing.T) {
	mem := &mockMem{}
	ins := instance.NewInstance(nil)
	mc := cpu.NewCPU(ins, mem)
	assert.NotNil(t, mc)
}
