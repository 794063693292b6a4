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

// Package ports implements the input devices wired to CIA1's two parallel
// ports: the 8x8 keyboard matrix, and whatever is plugged into the two
// 9-pin control ports (a digital joystick, an analog paddle pair, or one
// of three mouse variants). All of it shares the same eight CIA1 PRA/PRB
// pins the real board does, which is also why a keyboard and a joystick
// can interfere with each other - see Ports.
//
// The expansion port's GAME/EXROM sensing and cartridge bank switching
// live in hardware/memory instead (Cartridge), since that's where the
// bank-configuration table they feed already is.
package ports
