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

// Package via implements the MOS 6522 Versatile Interface Adapter, the
// 1541 disk drive's timer/IO chip. Two are wired into each drive - VIA1
// faces the serial bus and parallel cable, VIA2 faces the disk mechanism -
// identically shaped but connected to different peripherals, the same
// split hardware/cia draws between CIA1 and CIA2.
package via

// Peripheral lets whatever is wired to one of a VIA's two 8-bit ports
// observe writes and contribute to reads, mirroring hardware/cia.Peripheral.
// A nil Peripheral behaves like an unconnected port: driven bits read back
// what was written, undriven bits float high.
type Peripheral interface {
	Write(value uint8)
	Read(driven uint8) uint8
}

// register offsets within the 16-register window.
const (
	regORB = iota
	regORA
	regDDRB
	regDDRA
	regT1Clo
	regT1Chi
	regT1Llo
	regT1Lhi
	regT2Clo
	regT2Chi
	regSR
	regACR
	regPCR
	regIFR
	regIER
	regORAnh // ORA without handshake
)

// IFR/IER interrupt source bits.
const (
	flagCA2 uint8 = 1 << iota
	flagCA1
	flagSR
	flagCB2
	flagCB1
	flagT2
	flagT1
	flagIRQ // bit 7: set on read when any enabled source fired
)

// ACR bits.
const (
	acrPAlatch uint8 = 1 << iota
	acrPBlatch
	_ // SR control bit 0
	_ // SR control bit 1
	_ // SR control bit 2
	acrT2PulseCount
	acrT1PB7 // 0: PB7 unused by T1, 1: PB7 toggles/pulses on T1 underflow
	acrT1FreeRun
)

// PCR control-line edge polarity bits (simplified: this emulation tracks
// only edge direction per line, not the full latch/handshake semantics real
// 6522 peripherals sometimes rely on).
const (
	pcrCA1Positive uint8 = 1 << 0
	pcrCA2Positive uint8 = 1 << 2
	pcrCB1Positive uint8 = 1 << 4
	pcrCB2Positive uint8 = 1 << 6
)

// VIA is one MOS 6522. StepCycle must be called once per drive-CPU clock
// cycle, matching the cycleCallback cpu.CPU.ExecuteInstruction invokes.
type VIA struct {
	Name string

	PortA Peripheral
	PortB Peripheral

	ora, orb   uint8
	ddra, ddrb uint8

	t1Counter, t1Latch uint16
	t2Counter          uint16
	t2Latch            uint8 // only the low byte free-runs as a latch on the 6522

	sr uint8

	acr, pcr uint8

	ifr, ier uint8

	ca1, ca2, cb1, cb2 bool // last-seen level of each control line

	irq bool
}

// New returns a VIA in its documented power-on state.
func New(name string) *VIA {
	v := &VIA{Name: name}
	v.Reset()
	return v
}

// Reset puts every register back to its power-on value: both ports as
// inputs, both timers free-running with all-ones latches, no interrupts
// enabled.
func (v *VIA) Reset() {
	v.ora, v.orb = 0, 0
	v.ddra, v.ddrb = 0, 0
	v.t1Counter, v.t1Latch = 0xffff, 0xffff
	v.t2Counter, v.t2Latch = 0xffff, 0xff
	v.sr = 0
	v.acr, v.pcr = 0, 0
	v.ifr, v.ier = 0, 0
	v.ca1, v.ca2, v.cb1, v.cb2 = false, false, false, false
	v.irq = false
}

// IRQLine reports this chip's current interrupt request output. The drive
// CPU's IRQ input is the wired-OR of its two VIAs' lines.
func (v *VIA) IRQLine() bool {
	return v.irq
}

// raise records that interrupt source bit has fired, and asserts IRQLine if
// it is enabled.
func (v *VIA) raise(bit uint8) {
	v.ifr |= bit
	if v.ifr&v.ier&0x7f != 0 {
		v.irq = true
	}
}

// StepCycle advances the chip by one clock cycle.
func (v *VIA) StepCycle() {
	if v.t1Counter == 0 {
		v.t1Counter = v.t1Latch
		v.raise(flagT1)
		if v.acr&acrT1PB7 != 0 {
			v.orb ^= 0x80
		}
	} else {
		v.t1Counter--
	}

	// T2 in timed-interrupt mode (acrT2PulseCount clear) counts phi2 cycles
	// and does not auto-reload; pulse-counting mode (counting edges on PB6)
	// is not driven by StepCycle - nothing in this emulation's drive wiring
	// needs it, see DESIGN.md.
	if v.acr&acrT2PulseCount == 0 {
		if v.t2Counter == 0 {
			v.t2Counter = 0xffff
			v.raise(flagT2)
		} else {
			v.t2Counter--
		}
	}
}

// SetCA1, SetCA2, SetCB1 and SetCB2 feed an external control-line level
// into the VIA; an edge matching the polarity PCR selects raises the
// matching interrupt flag. The 1541 wiring uses these for byte-ready and
// sync-detect signalling (VIA2) and ATN/CLK/DATA edges (VIA1).
func (v *VIA) SetCA1(level bool) { v.setLine(&v.ca1, level, pcrCA1Positive, flagCA1) }
func (v *VIA) SetCA2(level bool) { v.setLine(&v.ca2, level, pcrCA2Positive, flagCA2) }
func (v *VIA) SetCB1(level bool) { v.setLine(&v.cb1, level, pcrCB1Positive, flagCB1) }
func (v *VIA) SetCB2(level bool) { v.setLine(&v.cb2, level, pcrCB2Positive, flagCB2) }

func (v *VIA) setLine(cur *bool, level bool, positiveBit uint8, flag uint8) {
	if level == *cur {
		return
	}
	rising := level && !*cur
	*cur = level
	wantsPositive := v.pcr&positiveBit != 0
	if rising == wantsPositive {
		v.raise(flag)
	}
}

func reg(address uint16) int {
	return int(address & 0x0f)
}

// Read implements bus.CPUBus.
func (v *VIA) Read(address uint16) (uint8, error) {
	switch reg(address) {
	case regORB:
		driven := v.orb & v.ddrb
		if v.PortB != nil {
			return v.PortB.Read(driven), nil
		}
		return driven | ^v.ddrb, nil
	case regORA, regORAnh:
		driven := v.ora & v.ddra
		if v.PortA != nil {
			return v.PortA.Read(driven), nil
		}
		return driven | ^v.ddra, nil
	case regDDRB:
		return v.ddrb, nil
	case regDDRA:
		return v.ddra, nil
	case regT1Clo:
		v.ifr &^= flagT1
		v.irq = v.ifr&v.ier&0x7f != 0
		return uint8(v.t1Counter), nil
	case regT1Chi:
		return uint8(v.t1Counter >> 8), nil
	case regT1Llo:
		return uint8(v.t1Latch), nil
	case regT1Lhi:
		return uint8(v.t1Latch >> 8), nil
	case regT2Clo:
		v.ifr &^= flagT2
		v.irq = v.ifr&v.ier&0x7f != 0
		return uint8(v.t2Counter), nil
	case regT2Chi:
		return uint8(v.t2Counter >> 8), nil
	case regSR:
		return v.sr, nil
	case regACR:
		return v.acr, nil
	case regPCR:
		return v.pcr, nil
	case regIFR:
		f := v.ifr & 0x7f
		if f&v.ier != 0 {
			f |= flagIRQ
		}
		return f, nil
	default: // regIER
		return v.ier | 0x80, nil
	}
}

// Write implements bus.CPUBus.
func (v *VIA) Write(address uint16, data uint8) error {
	switch reg(address) {
	case regORB:
		v.orb = data
		if v.PortB != nil {
			v.PortB.Write(data)
		}
		v.ifr &^= flagCB1
	case regORA, regORAnh:
		v.ora = data
		if v.PortA != nil {
			v.PortA.Write(data)
		}
		v.ifr &^= flagCA1
	case regDDRB:
		v.ddrb = data
	case regDDRA:
		v.ddra = data
	case regT1Clo:
		v.t1Latch = v.t1Latch&0xff00 | uint16(data)
	case regT1Chi:
		v.t1Latch = v.t1Latch&0x00ff | uint16(data)<<8
		v.t1Counter = v.t1Latch
		v.ifr &^= flagT1
	case regT1Llo:
		v.t1Latch = v.t1Latch&0xff00 | uint16(data)
	case regT1Lhi:
		v.t1Latch = v.t1Latch&0x00ff | uint16(data)<<8
	case regT2Clo:
		v.t2Latch = data
	case regT2Chi:
		v.t2Counter = uint16(data)<<8 | uint16(v.t2Latch)
		v.ifr &^= flagT2
	case regSR:
		v.sr = data
	case regACR:
		v.acr = data
	case regPCR:
		v.pcr = data
	case regIFR:
		v.ifr &^= data & 0x7f
		if v.ifr&v.ier&0x7f == 0 {
			v.irq = false
		}
	default: // regIER
		if data&0x80 != 0 {
			v.ier |= data & 0x7f
		} else {
			v.ier &^= data & 0x7f
		}
		if v.ifr&v.ier&0x7f != 0 {
			v.irq = true
		}
	}
	return nil
}

// Peek and Poke implement bus.DebuggerBus: plain register access without
// Read's IFR-clearing side effects.
func (v *VIA) Peek(address uint16) (uint8, error) {
	switch reg(address) {
	case regT1Clo:
		return uint8(v.t1Counter), nil
	case regT2Clo:
		return uint8(v.t2Counter), nil
	default:
		return v.Read(address)
	}
}

func (v *VIA) Poke(address uint16, value uint8) error {
	return v.Write(address, value)
}
