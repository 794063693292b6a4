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

// Package cia implements the MOS 6526 Complex Interface Adapter: two 16-bit
// timers, a BCD time-of-day clock, an 8-bit shift register and two 8-bit
// parallel ports, all behind a 16-register window that is mirrored across
// the full 256-byte I/O page it is mapped into. The C64 wires up two of
// these chips identically - CIA1 and CIA2 differ only in how their ports
// are connected to the rest of the machine (keyboard/joysticks versus
// VIC-II bank select/serial bus/RS-232), which is why a single type serves
// both; see Peripheral below.
package cia

// Peripheral lets whatever is wired to one of a CIA's two 8-bit ports
// observe writes and contribute to reads, without the CIA knowing what it
// is actually connected to (keyboard matrix, joystick, VIC-II bank select,
// serial bus). A nil Peripheral behaves like an unconnected port: driven
// bits read back what was written, undriven bits float high.
type Peripheral interface {
	// Write is called whenever the CPU writes the port's data register.
	// value is PRx unmasked by DDRx - the peripheral decides for itself
	// which bits it cares about.
	Write(value uint8)

	// Read returns this peripheral's contribution to a port read. driven
	// is PRx&DDRx, the bits the 6526 itself is actively driving; the
	// peripheral ORs/ANDs its own state against it (e.g. the keyboard
	// matrix's column-to-row short-circuiting) and returns the full
	// resulting byte.
	Read(driven uint8) uint8
}

// interrupt source bits, shared by ICR/IMR.
const (
	flagTA uint8 = 1 << iota
	flagTB
	flagTOD
	flagSDR
	flagFLAG
	_
	_
	flagIR // bit 7: set on read when any enabled source fired
)

// register offsets within the 16-register window.
const (
	regPRA = iota
	regPRB
	regDDRA
	regDDRB
	regTAlo
	regTAhi
	regTBlo
	regTBhi
	regTODtenths
	regTODsec
	regTODmin
	regTODhour
	regSDR
	regICR
	regCRA
	regCRB
)

// control register bits common to CRA and CRB.
const (
	crSTART uint8 = 1 << iota
	crPBON
	crOUTMODE
	crRUNMODE
	crLOAD
	crINMODE0
	crINMODE1
	crSPMODEorALARM // CRA: SPMODE (serial direction). CRB: ALARM (TOD set vs alarm set).
)

// CIA is one MOS 6526. Two are wired into a running machine as CIA1 and
// CIA2; StepCycle must be called once per φ2 cycle by whatever drives the
// rest of the emulation (normally package machine's main loop, the same
// cycleCallback style cpu.CPU.ExecuteInstruction uses).
type CIA struct {
	Name string

	PortA Peripheral
	PortB Peripheral

	pra, prb   uint8
	ddra, ddrb uint8

	taLatch, taCounter uint16
	tbLatch, tbCounter uint16

	tod tod

	sdr        uint8
	sdrBitsOut int // bits remaining to shift out when acting as a serial output

	icr uint8 // latched, unmasked interrupt requests (IRR)
	imr uint8 // interrupt mask register

	cra, crb uint8

	irq bool
}

// New returns a CIA in its documented power-on state.
func New(name string) *CIA {
	c := &CIA{Name: name}
	c.Reset()
	return c
}

// Reset puts every register back to its power-on value: both ports as
// inputs, both timers stopped with all-ones latches, TOD cleared to all
// zeroes and left running, no interrupts masked.
func (c *CIA) Reset() {
	c.pra, c.prb = 0, 0
	c.ddra, c.ddrb = 0, 0
	c.taLatch, c.taCounter = 0xffff, 0xffff
	c.tbLatch, c.tbCounter = 0xffff, 0xffff
	c.tod = tod{}
	c.sdr = 0
	c.sdrBitsOut = 0
	c.icr = 0
	c.imr = 0
	c.cra, c.crb = 0, 0
	c.irq = false
}

// IRQLine reports this chip's current interrupt request output. The caller
// (package machine) OR-combines CIA1's line with the VIC-II's into the
// CPU's IRQ input, and wires CIA2's line alone (the RESTORE key is not
// modeled) into the CPU's NMI input - the two CIA instances are identical, only
// their wiring differs.
func (c *CIA) IRQLine() bool {
	return c.irq
}

// raise records that interrupt source bit has fired, and asserts IRQLine if
// it is unmasked.
func (c *CIA) raise(bit uint8) {
	c.icr |= bit
	if c.icr&c.imr&0x1f != 0 {
		c.irq = true
	}
}

// StepCycle advances the chip by one φ2 cycle. cntHigh is the live state of
// the port B CNT pin (shared across both timers and the shift register);
// most C64 wiring leaves it permanently high.
func (c *CIA) StepCycle(cntHigh bool) {
	taClock := true
	if c.cra&crINMODE0 != 0 {
		taClock = cntHigh
	}
	taUF := false
	if c.cra&crSTART != 0 && taClock {
		if c.taCounter == 0 {
			c.taCounter = c.taLatch
			taUF = true
		} else {
			c.taCounter--
		}
	}
	if taUF {
		if c.cra&crRUNMODE != 0 {
			c.cra &^= crSTART
		}
		c.raise(flagTA)
		if c.cra&crPBON != 0 {
			c.pulsePB(6, c.cra&crOUTMODE != 0)
		}
		if c.cra&crSPMODEorALARM != 0 && c.sdrBitsOut > 0 {
			c.sdrBitsOut--
			if c.sdrBitsOut == 0 {
				c.raise(flagSDR)
			}
		}
	}

	var tbClock bool
	switch (c.crb >> 5) & 0x03 {
	case 0:
		tbClock = true
	case 1:
		tbClock = cntHigh
	case 2:
		tbClock = taUF
	case 3:
		tbClock = taUF && cntHigh
	}
	tbUF := false
	if c.crb&crSTART != 0 && tbClock {
		if c.tbCounter == 0 {
			c.tbCounter = c.tbLatch
			tbUF = true
		} else {
			c.tbCounter--
		}
	}
	if tbUF {
		if c.crb&crRUNMODE != 0 {
			c.crb &^= crSTART
		}
		c.raise(flagTB)
		if c.crb&crPBON != 0 {
			c.pulsePB(7, c.crb&crOUTMODE != 0)
		}
	}
}

// pulsePB drives one of timer A/B's PB output bits: toggle mode flips the
// bit every underflow; pulse mode is approximated as an immediate toggle
// back to low, close enough at whole-cycle granularity for a one-cycle
// pulse.
func (c *CIA) pulsePB(bit uint, toggle bool) {
	mask := uint8(1) << bit
	if toggle {
		c.prb ^= mask
		return
	}
	c.prb &^= mask
}

// TickTOD advances the time-of-day clock by one tenth of a second. It is
// driven by the power-grid abstraction (50 Hz or 60 Hz, stable or
// jittered), not by StepCycle, since the TOD oscillator is independent of
// φ2.
func (c *CIA) TickTOD() {
	if c.tod.tick() {
		c.raise(flagTOD)
	}
}

func reg(address uint16) int {
	return int(address & 0x0f)
}

// Read implements bus.CPUBus.
func (c *CIA) Read(address uint16) (uint8, error) {
	switch reg(address) {
	case regPRA:
		driven := c.pra & c.ddra
		if c.PortA != nil {
			return c.PortA.Read(driven), nil
		}
		return driven | ^c.ddra, nil
	case regPRB:
		driven := c.prb & c.ddrb
		if c.PortB != nil {
			return c.PortB.Read(driven), nil
		}
		return driven | ^c.ddrb, nil
	case regDDRA:
		return c.ddra, nil
	case regDDRB:
		return c.ddrb, nil
	case regTAlo:
		return uint8(c.taCounter), nil
	case regTAhi:
		return uint8(c.taCounter >> 8), nil
	case regTBlo:
		return uint8(c.tbCounter), nil
	case regTBhi:
		return uint8(c.tbCounter >> 8), nil
	case regTODtenths:
		return c.tod.readTenths(), nil
	case regTODsec:
		return c.tod.readSec(), nil
	case regTODmin:
		return c.tod.readMin(), nil
	case regTODhour:
		return c.tod.readHours(), nil
	case regSDR:
		return c.sdr, nil
	case regICR:
		v := c.icr & 0x1f
		if c.icr&c.imr&0x1f != 0 {
			v |= flagIR
		}
		c.icr = 0
		c.irq = false
		return v, nil
	case regCRA:
		return c.cra, nil
	default: // regCRB
		return c.crb, nil
	}
}

// Write implements bus.CPUBus.
func (c *CIA) Write(address uint16, data uint8) error {
	switch reg(address) {
	case regPRA:
		c.pra = data
		if c.PortA != nil {
			c.PortA.Write(data)
		}
	case regPRB:
		c.prb = data
		if c.PortB != nil {
			c.PortB.Write(data)
		}
	case regDDRA:
		c.ddra = data
	case regDDRB:
		c.ddrb = data
	case regTAlo:
		c.taLatch = c.taLatch&0xff00 | uint16(data)
	case regTAhi:
		c.taLatch = c.taLatch&0x00ff | uint16(data)<<8
		if c.cra&crSTART == 0 {
			c.taCounter = c.taLatch
		}
	case regTBlo:
		c.tbLatch = c.tbLatch&0xff00 | uint16(data)
	case regTBhi:
		c.tbLatch = c.tbLatch&0x00ff | uint16(data)<<8
		if c.crb&crSTART == 0 {
			c.tbCounter = c.tbLatch
		}
	case regTODtenths:
		c.tod.writeTenths(data, c.crb&crSPMODEorALARM != 0)
	case regTODsec:
		c.tod.writeSec(data, c.crb&crSPMODEorALARM != 0)
	case regTODmin:
		c.tod.writeMin(data, c.crb&crSPMODEorALARM != 0)
	case regTODhour:
		c.tod.writeHours(data, c.crb&crSPMODEorALARM != 0)
	case regSDR:
		c.sdr = data
		if c.cra&crSPMODEorALARM != 0 {
			c.sdrBitsOut = 8
		}
	case regICR:
		if data&flagIR != 0 {
			c.imr |= data & 0x1f
		} else {
			c.imr &^= data & 0x1f
		}
	case regCRA:
		c.cra = data &^ crLOAD
		if data&crLOAD != 0 {
			c.taCounter = c.taLatch
		}
	default: // regCRB
		c.crb = data &^ crLOAD
		if data&crLOAD != 0 {
			c.tbCounter = c.tbLatch
		}
	}
	return nil
}

// Peek and Poke implement bus.DebuggerBus: plain register access without
// Read's side effects (ICR is not cleared, the TOD latch is not engaged).
func (c *CIA) Peek(address uint16) (uint8, error) {
	switch reg(address) {
	case regICR:
		v := c.icr & 0x1f
		if c.icr&c.imr&0x1f != 0 {
			v |= flagIR
		}
		return v, nil
	case regTODtenths:
		if c.tod.frozen {
			return toBCD(c.tod.frozenTenths), nil
		}
		return toBCD(c.tod.tenths), nil
	case regTODhour:
		h, pm := c.tod.hour, c.tod.pm
		if c.tod.frozen {
			h, pm = c.tod.frozenHour, c.tod.frozenPM
		}
		if pm {
			return toBCD(h) | 0x80, nil
		}
		return toBCD(h), nil
	}
	return c.Read(address)
}

func (c *CIA) Poke(address uint16, value uint8) error {
	return c.Write(address, value)
}
