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

package datasette

import "github.com/vc64/core/snapshot"

// Snapshot captures the transport state and the mounted tape's name and
// length; it never touches tape contents, since this package doesn't keep
// any.
func (d *Datasette) Snapshot(w *snapshot.Writer) error {
	w.WriteBytes([]byte(d.name))
	w.WriteInt(d.length)
	w.WriteInt(d.position)
	w.WriteBool(d.motorOn)
	w.WriteBool(d.playing)
	return nil
}

// Restore undoes Snapshot.
func (d *Datasette) Restore(r *snapshot.Reader) error {
	name, err := r.ReadBytes()
	if err != nil {
		return err
	}
	d.name = string(name)
	if d.length, err = r.ReadInt(); err != nil {
		return err
	}
	if d.position, err = r.ReadInt(); err != nil {
		return err
	}
	if d.motorOn, err = r.ReadBool(); err != nil {
		return err
	}
	d.playing, err = r.ReadBool()
	return err
}
