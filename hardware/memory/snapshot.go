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

package memory

import "github.com/vc64/core/snapshot"

// Snapshot captures RAM, colour RAM and the open-bus latch. The three fixed
// ROM images are externally loaded program data, not machine state that
// changes during a run, and are deliberately excluded - a restore expects
// the caller to have already loaded the same ROM images it started with.
func (mm *MemoryMap) Snapshot(w *snapshot.Writer) error {
	w.WriteBytes(mm.ram[:])
	w.WriteBytes(mm.colorRAM[:])
	w.WriteUint8(mm.lastBusValue)
	return nil
}

// Restore undoes Snapshot.
func (mm *MemoryMap) Restore(r *snapshot.Reader) error {
	ram, err := r.ReadBytes()
	if err != nil {
		return err
	}
	copy(mm.ram[:], ram)

	colorRAM, err := r.ReadBytes()
	if err != nil {
		return err
	}
	copy(mm.colorRAM[:], colorRAM)

	mm.lastBusValue, err = r.ReadUint8()
	return err
}
