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

package cpu

import "github.com/vc64/core/snapshot"

// Snapshot captures the register file, IOPort latch and interrupt state -
// everything needed to resume execution mid-instruction-boundary. LastResult,
// NoFlowControl and Interrupted are debug/trace bookkeeping, not machine
// state; they are not saved, and Restore leaves them as they are.
func (mc *CPU) Snapshot(w *snapshot.Writer) error {
	w.WriteUint16(mc.PC.Value())
	w.WriteUint8(mc.A.Value())
	w.WriteUint8(mc.X.Value())
	w.WriteUint8(mc.Y.Value())
	w.WriteUint8(mc.SP.Value())
	w.WriteUint8(mc.Status.Value())
	w.WriteUint8(mc.IOPort.ddr)
	w.WriteUint8(mc.IOPort.data)
	w.WriteBool(mc.RdyFlg)
	w.WriteBool(mc.Killed)
	w.WriteBool(mc.nmiLine)
	w.WriteBool(mc.nmiPending)
	w.WriteBool(mc.IRQLine)
	return nil
}

// Restore undoes Snapshot. The caller must not be mid-ExecuteInstruction.
func (mc *CPU) Restore(r *snapshot.Reader) error {
	pc, err := r.ReadUint16()
	if err != nil {
		return err
	}
	mc.PC.Load(pc)

	a, err := r.ReadUint8()
	if err != nil {
		return err
	}
	mc.A.Load(a)

	x, err := r.ReadUint8()
	if err != nil {
		return err
	}
	mc.X.Load(x)

	y, err := r.ReadUint8()
	if err != nil {
		return err
	}
	mc.Y.Load(y)

	sp, err := r.ReadUint8()
	if err != nil {
		return err
	}
	mc.SP.Load(sp)

	st, err := r.ReadUint8()
	if err != nil {
		return err
	}
	mc.Status.Load(st)

	ddr, err := r.ReadUint8()
	if err != nil {
		return err
	}
	mc.IOPort.ddr = ddr

	data, err := r.ReadUint8()
	if err != nil {
		return err
	}
	mc.IOPort.data = data

	if mc.RdyFlg, err = r.ReadBool(); err != nil {
		return err
	}
	if mc.Killed, err = r.ReadBool(); err != nil {
		return err
	}
	if mc.nmiLine, err = r.ReadBool(); err != nil {
		return err
	}
	if mc.nmiPending, err = r.ReadBool(); err != nil {
		return err
	}
	if mc.IRQLine, err = r.ReadBool(); err != nil {
		return err
	}
	return nil
}
