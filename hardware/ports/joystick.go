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

// Joystick is a standard 5-switch digital joystick: up, down, left,
// right, fire, wired active low to PB0-4 (control port 1) or PA0-4
// (control port 2), sharing those pins with the keyboard matrix.
type Joystick struct {
	Up, Down, Left, Right, Fire bool

	autofireOn     bool
	autofirePeriod int
	autofireAccum  int
	autofireState  bool
}

// NewJoystick returns a joystick with every switch open and autofire off.
func NewJoystick() *Joystick {
	return &Joystick{}
}

// SetAutofire enables or disables autofire, toggling the fire line every
// periodCycles CPU cycles while enabled (periods below 1 are clamped up
// to 1).
func (j *Joystick) SetAutofire(enabled bool, periodCycles int) {
	j.autofireOn = enabled
	if periodCycles < 1 {
		periodCycles = 1
	}
	j.autofirePeriod = periodCycles
	j.autofireAccum = 0
	j.autofireState = false
}

// StepCycle advances the autofire divider by one CPU cycle.
func (j *Joystick) StepCycle() {
	if !j.autofireOn {
		return
	}
	j.autofireAccum++
	if j.autofireAccum >= j.autofirePeriod {
		j.autofireAccum = 0
		j.autofireState = !j.autofireState
	}
}

// bits returns the active-low 5-bit mask (up, down, left, right, fire in
// bits 0-4, bits 5-7 left high since this joystick doesn't drive them)
// this joystick currently contributes.
func (j *Joystick) bits() uint8 {
	v := uint8(0xff)
	if j.Up {
		v &^= 1 << 0
	}
	if j.Down {
		v &^= 1 << 1
	}
	if j.Left {
		v &^= 1 << 2
	}
	if j.Right {
		v &^= 1 << 3
	}
	if j.Fire || (j.autofireOn && j.autofireState) {
		v &^= 1 << 4
	}
	return v
}
