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
//
// You should have received a copy of the GNU General Public License
// along with VirtualC64.  If not, see <https://www.gnu.org/licenses/>.

// Package bus defines the access patterns different parts of the emulation
// use to reach the C64's memory map. CPUBus is the interface every memory
// area - and the memory map itself - implements for ordinary 6510 access.
//
// DebuggerBus is for the exclusive use of debugging/inspection tooling and
// exposes a Peek() and Poke() function: reads and writes with none of the
// side effects (open-bus latch updates, clear-on-read registers) a real
// CPU access would trigger.
package bus
