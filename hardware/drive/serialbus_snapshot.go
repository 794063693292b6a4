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

package drive

import "github.com/vc64/core/snapshot"

// Snapshot captures every device's pull-down state on all four signals.
func (b *SerialBus) Snapshot(w *snapshot.Writer) error {
	for _, line := range [...][serialBusDevices]bool{b.atn, b.clk, b.data, b.srq} {
		for _, v := range line {
			w.WriteBool(v)
		}
	}
	return nil
}

// Restore undoes Snapshot.
func (b *SerialBus) Restore(r *snapshot.Reader) error {
	lines := [...]*[serialBusDevices]bool{&b.atn, &b.clk, &b.data, &b.srq}
	for _, line := range lines {
		for i := range line {
			v, err := r.ReadBool()
			if err != nil {
				return err
			}
			line[i] = v
		}
	}
	return nil
}
