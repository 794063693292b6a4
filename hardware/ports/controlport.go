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

// ControlPort is everything that can be plugged into one of the C64's two
// 9-pin control ports at once: a digital joystick, a pair of analog
// paddles, or a mouse. Only one kind is normally present at a time; all
// installed devices are wired-ANDed together on read exactly like the
// real port, so leaving more than one installed is harmless but not how
// any real peripheral combination works.
type ControlPort struct {
	Joystick *Joystick
	Paddles  [2]*Paddle
	Mouse    *Mouse
}

// digitalBits returns this port's contribution to the shared joystick
// pins (bits 0-4), wired-AND across every digital device installed; bits
// 5-7 are left high, since nothing on this port drives them.
func (c *ControlPort) digitalBits() uint8 {
	v := uint8(0xff)
	if c.Joystick != nil {
		v &= c.Joystick.bits()
	}
	if c.Mouse != nil && c.Mouse.Variant != Mouse1351 {
		v &= c.Mouse.quadratureBits()
	}
	if c.Paddles[0] != nil && c.Paddles[0].Fire {
		v &^= 1 << 2
	}
	if c.Paddles[1] != nil && c.Paddles[1].Fire {
		v &^= 1 << 3
	}
	return v
}

// potPosition returns this port's contribution to SID's POTX/POTY, from
// whichever analog device is installed (a 1351 mouse takes priority over
// a paddle pair, since only one can plausibly be plugged in).
func (c *ControlPort) potPosition() (x, y uint8) {
	if c.Mouse != nil && c.Mouse.Variant == Mouse1351 {
		return c.Mouse.potPosition()
	}
	x, y = 0xff, 0xff
	if c.Paddles[0] != nil {
		x = c.Paddles[0].Position
	}
	if c.Paddles[1] != nil {
		y = c.Paddles[1].Position
	}
	return x, y
}

// stepCycle advances whichever device needs a per-cycle tick (currently
// only a joystick's autofire divider).
func (c *ControlPort) stepCycle() {
	if c.Joystick != nil {
		c.Joystick.StepCycle()
	}
}
