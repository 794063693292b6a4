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

// StatusRegister models the 6510's P register: N V - B D I Z C. The unused
// bit 5 always reads back as 1; it is never stored explicitly, just forced
// on whenever the register is read as a byte.
type StatusRegister struct {
	Sign             bool // N
	Overflow         bool // V
	Break            bool // B - only meaningful on the stack image pushed by BRK/IRQ
	DecimalMode      bool // D
	InterruptDisable bool // I
	Zero             bool // Z
	Carry            bool // C
}

const (
	flagCarry     = 0x01
	flagZero      = 0x02
	flagIRQ       = 0x04
	flagDecimal   = 0x08
	flagBreak     = 0x10
	flagUnused    = 0x20
	flagOverflow  = 0x40
	flagSign      = 0x80
)

// Value packs the seven flags into a single byte, as pushed onto the stack
// by PHP, BRK and interrupt entry.
func (s *StatusRegister) Value() uint8 {
	var v uint8 = flagUnused
	if s.Carry {
		v |= flagCarry
	}
	if s.Zero {
		v |= flagZero
	}
	if s.InterruptDisable {
		v |= flagIRQ
	}
	if s.DecimalMode {
		v |= flagDecimal
	}
	if s.Break {
		v |= flagBreak
	}
	if s.Overflow {
		v |= flagOverflow
	}
	if s.Sign {
		v |= flagSign
	}
	return v
}

// Load unpacks a byte (as read by PLP, RTI, or interrupt dispatch) into the
// individual flags.
func (s *StatusRegister) Load(v uint8) {
	s.Carry = v&flagCarry != 0
	s.Zero = v&flagZero != 0
	s.InterruptDisable = v&flagIRQ != 0
	s.DecimalMode = v&flagDecimal != 0
	s.Break = v&flagBreak != 0
	s.Overflow = v&flagOverflow != 0
	s.Sign = v&flagSign != 0
}

// SetNZ updates the Sign and Zero flags from the given result, as almost
// every data-moving and arithmetic instruction does.
func (s *StatusRegister) SetNZ(v uint8) {
	s.Zero = v == 0
	s.Sign = v&0x80 != 0
}

// Label renders the seven flags in NVBDIZC order, using the flag's letter
// for any flag that is set and a dash for any that is clear (e.g. "N----ZC"
// with N, Z and C set). The unused bit is not shown. Handy for trace logging.
func (s *StatusRegister) Label() string {
	bit := func(set bool, letter byte) byte {
		if set {
			return letter
		}
		return '-'
	}
	out := make([]byte, 7)
	out[0] = bit(s.Sign, 'N')
	out[1] = bit(s.Overflow, 'V')
	out[2] = bit(s.Break, 'B')
	out[3] = bit(s.DecimalMode, 'D')
	out[4] = bit(s.InterruptDisable, 'I')
	out[5] = bit(s.Zero, 'Z')
	out[6] = bit(s.Carry, 'C')
	return string(out)
}

func (s *StatusRegister) String() string {
	return s.Label()
}

// Reset puts the status register into its power-on state: interrupts
// disabled, everything else clear.
func (s *StatusRegister) Reset() {
	*s = StatusRegister{InterruptDisable: true}
}
