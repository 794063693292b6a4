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

package via

import "github.com/vc64/core/snapshot"

// Snapshot captures both ports' latches, both timers, the shift register,
// the control registers and the control-line/interrupt state. PortA/PortB's
// peripheral wiring is persisted by its owner, not by the VIA.
func (v *VIA) Snapshot(w *snapshot.Writer) error {
	w.WriteUint8(v.ora)
	w.WriteUint8(v.orb)
	w.WriteUint8(v.ddra)
	w.WriteUint8(v.ddrb)
	w.WriteUint16(v.t1Counter)
	w.WriteUint16(v.t1Latch)
	w.WriteUint16(v.t2Counter)
	w.WriteUint8(v.t2Latch)
	w.WriteUint8(v.sr)
	w.WriteUint8(v.acr)
	w.WriteUint8(v.pcr)
	w.WriteUint8(v.ifr)
	w.WriteUint8(v.ier)
	w.WriteBool(v.ca1)
	w.WriteBool(v.ca2)
	w.WriteBool(v.cb1)
	w.WriteBool(v.cb2)
	w.WriteBool(v.irq)
	return nil
}

// Restore undoes Snapshot.
func (v *VIA) Restore(r *snapshot.Reader) error {
	var err error
	if v.ora, err = r.ReadUint8(); err != nil {
		return err
	}
	if v.orb, err = r.ReadUint8(); err != nil {
		return err
	}
	if v.ddra, err = r.ReadUint8(); err != nil {
		return err
	}
	if v.ddrb, err = r.ReadUint8(); err != nil {
		return err
	}
	if v.t1Counter, err = r.ReadUint16(); err != nil {
		return err
	}
	if v.t1Latch, err = r.ReadUint16(); err != nil {
		return err
	}
	if v.t2Counter, err = r.ReadUint16(); err != nil {
		return err
	}
	if v.t2Latch, err = r.ReadUint8(); err != nil {
		return err
	}
	if v.sr, err = r.ReadUint8(); err != nil {
		return err
	}
	if v.acr, err = r.ReadUint8(); err != nil {
		return err
	}
	if v.pcr, err = r.ReadUint8(); err != nil {
		return err
	}
	if v.ifr, err = r.ReadUint8(); err != nil {
		return err
	}
	if v.ier, err = r.ReadUint8(); err != nil {
		return err
	}
	if v.ca1, err = r.ReadBool(); err != nil {
		return err
	}
	if v.ca2, err = r.ReadBool(); err != nil {
		return err
	}
	if v.cb1, err = r.ReadBool(); err != nil {
		return err
	}
	if v.cb2, err = r.ReadBool(); err != nil {
		return err
	}
	v.irq, err = r.ReadBool()
	return err
}
