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

package machine

import "github.com/vc64/core/hardware/drive"

// Bit assignments on CIA2's port A, wired to the VIC-II bank select and the
// IEC serial bus rather than to any device hardware/cia itself knows about.
// Bits 0-1 select the bank VIC-II reads its graphics memory from, inverted
// (a real PLA quirk: bank 0 is selected by both bits HIGH); the remaining
// bits are the computer's side of the four serial-bus signals. RS232 (bit
// 2) has no modeled peer and is left floating.
const (
	cia2BankSelectMask = 0x03
	cia2ATNOut         = 0x08 // bit 3, inverted: CPU writes 1 to pull ATN low
	cia2CLKOut         = 0x10 // bit 4, inverted
	cia2DATAOut        = 0x20 // bit 5, inverted
	cia2CLKIn          = 0x40 // bit 6
	cia2DATAIn         = 0x80 // bit 7
)

// cia2PortA is CIA2's PA peripheral: it holds the currently selected VIC-II
// bank (consulted by vicBus on every graphics-memory fetch) and arbitrates
// the computer's pull-downs on the shared serial bus.
type cia2PortA struct {
	bus  *drive.SerialBus
	bank uint8 // 0-3, already inverted from the raw PA bits
}

func newCIA2PortA(bus *drive.SerialBus) *cia2PortA {
	return &cia2PortA{bus: bus}
}

// Write applies the bank-select and serial-bus-output bits. value is PRA
// unmasked by DDRA, per cia.Peripheral's contract.
func (c *cia2PortA) Write(value uint8) {
	c.bank = ^value & cia2BankSelectMask
	c.bus.SetATN(drive.DeviceComputer, value&cia2ATNOut != 0)
	c.bus.SetCLK(drive.DeviceComputer, value&cia2CLKOut != 0)
	c.bus.SetDATA(drive.DeviceComputer, value&cia2DATAOut != 0)
}

// Read reflects the live bus level onto the input bits.
func (c *cia2PortA) Read(driven uint8) uint8 {
	v := driven
	if c.bus.CLK() {
		v |= cia2CLKIn
	}
	if c.bus.DATA() {
		v |= cia2DATAIn
	}
	return v
}

// cia2PortB is CIA2's PB peripheral: on a stock C64 it carries only the
// user port and RS-232, neither of which anything in this emulation drives,
// so it behaves like an unconnected port.
type cia2PortB struct{}

func (cia2PortB) Write(uint8)         {}
func (cia2PortB) Read(driven uint8) uint8 { return driven }
