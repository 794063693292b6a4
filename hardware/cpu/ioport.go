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

package cpu

// IOPort is the 6510's extra 6-bit I/O port, addressed at $0000 (data
// direction register) and $0001 (data register). Three of its bits -
// LORAM, HIRAM and CHAREN - select the memory bank configuration; the CPU
// itself has no notion of banking, it just exposes the port's state for
// whoever does (hardware/memory.MemoryMap).
type IOPort struct {
	ddr  uint8
	data uint8
}

// Reset puts the port into its documented C64 power-on state.
func (p *IOPort) Reset() {
	p.ddr = 0x2f
	p.data = 0x37
}

// WriteDDR handles a CPU write to $0000.
func (p *IOPort) WriteDDR(v uint8) { p.ddr = v }

// ReadDDR handles a CPU read of $0000.
func (p *IOPort) ReadDDR() uint8 { return p.ddr }

// WriteData handles a CPU write to $0001.
func (p *IOPort) WriteData(v uint8) { p.data = v }

// ReadData handles a CPU read of $0001: bits configured as outputs read
// back the last written value, bits configured as inputs float high (no
// external pulldown is modeled on any of them).
func (p *IOPort) ReadData() uint8 {
	driven := p.data & p.ddr
	floating := ^p.ddr
	return driven | floating
}

// BankBits returns the three bits the memory map's bank-switch table is
// keyed on: LORAM (bit 0), HIRAM (bit 1), CHAREN (bit 2).
func (p *IOPort) BankBits() uint8 {
	return p.ReadData() & 0x07
}
