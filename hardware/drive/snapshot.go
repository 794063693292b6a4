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

// Snapshot captures the head position, motor/LED state, the bit-cell and
// byte-framing accumulators, the mechanism peripheral's shift state, and
// (nested) the drive's own CPU and both VIAs. The inserted disk, if any, is
// saved alongside it, since unlike a ROM image a disk's contents can change
// mid-session (the DOS writes to it) and so are part of this drive's state,
// not external program data.
func (d *Drive) Snapshot(w *snapshot.Writer) error {
	w.WriteInt(d.halfTrackPos)
	w.WriteUint8(d.stepPhase)
	w.WriteBool(d.motorOn)
	w.WriteBool(d.ledOn)
	w.WriteFloat64(d.bitAccum)
	w.WriteInt(d.bitsSinceHdr)

	w.WriteInt(d.mech.bitPos)
	w.WriteUint8(d.mech.dataByte)
	w.WriteBool(d.mech.synced)
	w.WriteBool(d.mech.hdrArmed)

	w.WriteBool(d.Disk != nil)
	if d.Disk != nil {
		if err := d.Disk.Snapshot(w); err != nil {
			return err
		}
	}

	if err := d.CPU.Snapshot(w); err != nil {
		return err
	}
	if err := d.VIA1.Snapshot(w); err != nil {
		return err
	}
	return d.VIA2.Snapshot(w)
}

// Restore undoes Snapshot. If the blob has no disk but one is currently
// inserted, it is ejected; if it has one, a fresh Disk is allocated and
// populated regardless of what (if anything) was inserted before the call.
func (d *Drive) Restore(r *snapshot.Reader) error {
	var err error
	if d.halfTrackPos, err = r.ReadInt(); err != nil {
		return err
	}
	if d.stepPhase, err = r.ReadUint8(); err != nil {
		return err
	}
	if d.motorOn, err = r.ReadBool(); err != nil {
		return err
	}
	if d.ledOn, err = r.ReadBool(); err != nil {
		return err
	}
	if d.bitAccum, err = r.ReadFloat64(); err != nil {
		return err
	}
	if d.bitsSinceHdr, err = r.ReadInt(); err != nil {
		return err
	}

	if d.mech.bitPos, err = r.ReadInt(); err != nil {
		return err
	}
	if d.mech.dataByte, err = r.ReadUint8(); err != nil {
		return err
	}
	if d.mech.synced, err = r.ReadBool(); err != nil {
		return err
	}
	if d.mech.hdrArmed, err = r.ReadBool(); err != nil {
		return err
	}

	hasDisk, err := r.ReadBool()
	if err != nil {
		return err
	}
	if !hasDisk {
		d.Disk = nil
	} else {
		d.Disk = &Disk{}
		if err := d.Disk.Restore(r); err != nil {
			return err
		}
	}

	if err := d.CPU.Restore(r); err != nil {
		return err
	}
	if err := d.VIA1.Restore(r); err != nil {
		return err
	}
	return d.VIA2.Restore(r)
}

// Snapshot captures every half-track's raw GCR bytes and the write-protect
// flag.
func (disk *Disk) Snapshot(w *snapshot.Writer) error {
	w.WriteBool(disk.WriteProtect)
	for ht := 1; ht <= maxHalfTracks; ht++ {
		w.WriteBytes(disk.halfTracks[ht].data)
	}
	return nil
}

// Restore undoes Snapshot.
func (disk *Disk) Restore(r *snapshot.Reader) error {
	wp, err := r.ReadBool()
	if err != nil {
		return err
	}
	disk.WriteProtect = wp

	for ht := 1; ht <= maxHalfTracks; ht++ {
		data, err := r.ReadBytes()
		if err != nil {
			return err
		}
		disk.halfTracks[ht] = newHalfTrack(data)
	}
	return nil
}
