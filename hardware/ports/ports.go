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

package ports

import "github.com/vc64/core/hardware/cia"

// Ports owns every device wired to CIA1's two 8-bit ports: the keyboard
// matrix (rows on PA, columns on PB) and the two control ports (port 2's
// digital lines share PA0-4, port 1's share PB0-4). Wire PortA()/PortB()
// directly to a CIA1 instance's PortA/PortB fields.
type Ports struct {
	Keyboard *Keyboard
	Port1    *ControlPort
	Port2    *ControlPort

	// paddleSelect mirrors CIA1 PRA bits 6-7, which gate which control
	// port's analog pair is currently connected to SID's POTX/POTY pins -
	// on real hardware those two pins are shared between both ports, so
	// only one port's paddles (or 1351 mouse) can be read at a time.
	paddleSelect uint8
}

// NewPorts returns a Ports with an empty keyboard and two empty control
// ports (install a Joystick/Paddles/Mouse into Port1/Port2 as needed).
func NewPorts() *Ports {
	return &Ports{
		Keyboard: NewKeyboard(),
		Port1:    &ControlPort{},
		Port2:    &ControlPort{},
	}
}

// StepCycle advances every per-cycle device (autofire dividers) by one
// CPU cycle.
func (p *Ports) StepCycle() {
	p.Port1.stepCycle()
	p.Port2.stepCycle()
}

// PotValues resolves SID's live POTX/POTY inputs from whichever control
// port CIA1 PRA bits 6-7 currently select (both bits low: floating high,
// same as nothing plugged in).
func (p *Ports) PotValues() (x, y uint8) {
	switch {
	case p.paddleSelect&0x40 != 0:
		return p.Port2.potPosition()
	case p.paddleSelect&0x80 != 0:
		return p.Port1.potPosition()
	default:
		return 0xff, 0xff
	}
}

// PortA returns the cia.Peripheral for CIA1's port A: keyboard rows plus
// control port 2's digital lines.
func (p *Ports) PortA() cia.Peripheral { return ciaPortA{p} }

// PortB returns the cia.Peripheral for CIA1's port B: keyboard columns
// plus control port 1's digital lines.
func (p *Ports) PortB() cia.Peripheral { return ciaPortB{p} }

type ciaPortA struct{ p *Ports }

func (a ciaPortA) Write(value uint8) {
	a.p.Keyboard.writeRows(value)
	a.p.paddleSelect = value & 0xc0
}

func (a ciaPortA) Read(driven uint8) uint8 {
	v := a.p.Keyboard.scan(a.p.Keyboard.colSelect, false)
	v &= a.p.Port2.digitalBits()
	return driven | v
}

type ciaPortB struct{ p *Ports }

func (b ciaPortB) Write(value uint8) {
	b.p.Keyboard.writeCols(value)
}

func (b ciaPortB) Read(driven uint8) uint8 {
	v := b.p.Keyboard.scan(b.p.Keyboard.rowSelect, true)
	v &= b.p.Port1.digitalBits()
	return driven | v
}
