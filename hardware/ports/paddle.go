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

// Paddle is one analog paddle dial: a wiper position feeding SID's
// POTX/POTY and a digital fire button. Two share a control port; which of
// the port's pair currently reaches SID is selected by CIA1 PRA bits 6-7
// (see Ports.PotValues), exactly as on real hardware, since POTX/POTY are
// a single pair of chip pins multiplexed across both ports.
type Paddle struct {
	Position uint8 // 0-255, wiper position; 0x80 is centered
	Fire     bool
}

// NewPaddle returns a paddle centered at its midpoint with its button up.
func NewPaddle() *Paddle {
	return &Paddle{Position: 0x80}
}
