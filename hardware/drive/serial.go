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

package drive

// Bit assignments on VIA1's port B, the serial bus interface. Mirrors the
// real 1541's wiring closely enough to drive the bus state machine
// spec.md §4.6 describes, though (as with the mechanism port) this is a
// documented simplification rather than a trace of the actual NAND-gated
// acknowledge logic - see DESIGN.md.
const (
	serialDataOut = 0x01 // bit 0: this drive pulls DATA low
	serialDataIn  = 0x02 // bit 1: live DATA level (input)
	serialCLKOut  = 0x04 // bit 2: this drive pulls CLK low
	serialCLKIn   = 0x08 // bit 3: live CLK level (input)
	serialATNIn   = 0x10 // bit 4: live ATN level (input)
)

// serialPeripheral is VIA1's port B: the drive's half of the four-signal
// IEC bus, arbitrated through the shared SerialBus so that every device's
// pull-downs combine correctly.
type serialPeripheral struct {
	d *Drive
}

// Write is called when the drive CPU writes VIA1's ORB: the CLK/DATA
// output bits become this device's pull-down state on the shared bus.
func (s *serialPeripheral) Write(value uint8) {
	s.d.bus.SetDATA(s.d.device, value&serialDataOut != 0)
	s.d.bus.SetCLK(s.d.device, value&serialCLKOut != 0)
}

// Read reflects the bus's actual level (the wired-AND of every device's
// pull-down, including this one) back onto the input bits, regardless of
// what this device itself last drove.
func (s *serialPeripheral) Read(driven uint8) uint8 {
	v := driven
	if s.d.bus.DATA() {
		v |= serialDataIn
	}
	if s.d.bus.CLK() {
		v |= serialCLKIn
	}
	if s.d.bus.ATN() {
		v |= serialATNIn
	}
	return v
}

// portA returns the Peripheral VIA1's PA - the user-port parallel cable -
// is wired to. No device in this emulation drives the parallel cable, so
// it behaves like an unconnected port (floating high, as hardware/cia's
// Peripheral doc describes for the nil case): this Peripheral exists only
// so VIA1 always has both ports wired the way the real chip does.
func (s *serialPeripheral) portA() *parallelCablePeripheral {
	return &parallelCablePeripheral{}
}

type parallelCablePeripheral struct{}

func (*parallelCablePeripheral) Write(uint8) {}

func (*parallelCablePeripheral) Read(driven uint8) uint8 {
	return driven
}
