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

// Keyboard is the C64's 8x8 key matrix: CIA1 PA conventionally drives
// rows (active low, one bit cleared per row scanned), CIA1 PB reads back
// columns (a bit reads low if a pressed key connects it to a selected
// row). There are no isolation diodes on the real keyboard, so three or
// more keys held at once can "ghost": a row pulled low reaches a column
// through one pressed key, which (since the column is now live) can reach
// a second row through another pressed key, and so on. scan computes that
// transitive closure rather than a simple one-hop lookup.
type Keyboard struct {
	pressed [8][8]bool

	rowSelect uint8 // last value written to CIA1 PRA (rows side, active low)
	colSelect uint8 // last value written to CIA1 PRB (columns side, active low)
}

// NewKeyboard returns a keyboard with nothing pressed and both select
// registers at zero, matching CIA1's own post-reset PRA/PRB value.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// KeyDown and KeyUp set one matrix cell. Row and col are both 0-7;
// out-of-range values are ignored.
func (k *Keyboard) KeyDown(row, col int) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return
	}
	k.pressed[row][col] = true
}

func (k *Keyboard) KeyUp(row, col int) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return
	}
	k.pressed[row][col] = false
}

// Toggle flips one matrix cell, for the KEY_TOGGLE command (a host UI
// convenience for keys more naturally driven as an on/off switch, e.g. the
// Commodore key used as a joystick swap toggle in some launchers).
func (k *Keyboard) Toggle(row, col int) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return
	}
	k.pressed[row][col] = !k.pressed[row][col]
}

// ReleaseAll clears every matrix cell, for the KEY_RELEASE_ALL command.
func (k *Keyboard) ReleaseAll() {
	k.pressed = [8][8]bool{}
}

func (k *Keyboard) writeRows(value uint8) { k.rowSelect = value }
func (k *Keyboard) writeCols(value uint8) { k.colSelect = value }

// scan drives an active-low select byte into one side of the matrix
// (fromRows chooses which) and returns the active-low byte read back on
// the other side, including every key reachable by transitive wired-AND -
// not just keys directly wired to a selected row or column.
func (k *Keyboard) scan(drive uint8, fromRows bool) uint8 {
	var liveRows, liveCols [8]bool
	for i := 0; i < 8; i++ {
		if drive&(1<<uint(i)) != 0 {
			continue
		}
		if fromRows {
			liveRows[i] = true
		} else {
			liveCols[i] = true
		}
	}

	for changed := true; changed; {
		changed = false
		for r := 0; r < 8; r++ {
			for c := 0; c < 8; c++ {
				if !k.pressed[r][c] {
					continue
				}
				if liveRows[r] && !liveCols[c] {
					liveCols[c] = true
					changed = true
				}
				if liveCols[c] && !liveRows[r] {
					liveRows[r] = true
					changed = true
				}
			}
		}
	}

	result := uint8(0xff)
	if fromRows {
		for c := 0; c < 8; c++ {
			if liveCols[c] {
				result &^= 1 << uint(c)
			}
		}
	} else {
		for r := 0; r < 8; r++ {
			if liveRows[r] {
				result &^= 1 << uint(r)
			}
		}
	}
	return result
}
