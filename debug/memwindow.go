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

package debug

// Poker is the minimal side-effect-free memory surface a MemWindow needs:
// exactly hardware/memory/bus.DebuggerBus's Peek/Poke pair, restated here so
// this package doesn't need to import the memory package just to name a
// two-method interface.
type Poker interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

// MemWindow is a bounded, host-facing view into a Poker: the "memory-peek
// windows" spec.md's debug package is named for. It adds nothing beyond
// range-checked, sequential access - the side-effect-free semantics live
// entirely in whatever Poker it wraps.
type MemWindow struct {
	mem Poker
}

// NewMemWindow is the preferred method of initialisation for MemWindow.
func NewMemWindow(mem Poker) *MemWindow {
	return &MemWindow{mem: mem}
}

// Peek reads one byte without side effects.
func (w *MemWindow) Peek(address uint16) (uint8, error) {
	return w.mem.Peek(address)
}

// Poke writes one byte without side effects.
func (w *MemWindow) Poke(address uint16, value uint8) error {
	return w.mem.Poke(address, value)
}

// Dump reads length consecutive bytes starting at start, wrapping around the
// 16-bit address space rather than erroring at the boundary.
func (w *MemWindow) Dump(start uint16, length int) ([]byte, error) {
	out := make([]byte, 0, length)
	addr := start
	for i := 0; i < length; i++ {
		v, err := w.mem.Peek(addr)
		if err != nil {
			return out, err
		}
		out = append(out, v)
		addr++
	}
	return out, nil
}
