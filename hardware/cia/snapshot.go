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

package cia

import "github.com/vc64/core/snapshot"

// Snapshot captures both timers, the TOD clock (live and alarm/latch
// state), the serial shift register, the interrupt latches and both
// ports' data-direction/output latches. PortA/PortB's own peripheral
// wiring (keyboard matrix, IEC bus, VIC bank select) is each persisted by
// its owner, not by the CIA - the CIA only owns what it directly drives.
func (c *CIA) Snapshot(w *snapshot.Writer) error {
	w.WriteUint8(c.pra)
	w.WriteUint8(c.prb)
	w.WriteUint8(c.ddra)
	w.WriteUint8(c.ddrb)
	w.WriteUint16(c.taLatch)
	w.WriteUint16(c.taCounter)
	w.WriteUint16(c.tbLatch)
	w.WriteUint16(c.tbCounter)

	w.WriteUint8(c.tod.tenths)
	w.WriteUint8(c.tod.sec)
	w.WriteUint8(c.tod.min)
	w.WriteUint8(c.tod.hour)
	w.WriteBool(c.tod.pm)
	w.WriteUint8(c.tod.alarmTenths)
	w.WriteUint8(c.tod.alarmSec)
	w.WriteUint8(c.tod.alarmMin)
	w.WriteUint8(c.tod.alarmHour)
	w.WriteBool(c.tod.alarmPM)
	w.WriteBool(c.tod.halted)
	w.WriteBool(c.tod.frozen)
	w.WriteUint8(c.tod.frozenTenths)
	w.WriteUint8(c.tod.frozenSec)
	w.WriteUint8(c.tod.frozenMin)
	w.WriteUint8(c.tod.frozenHour)
	w.WriteBool(c.tod.frozenPM)

	w.WriteUint8(c.sdr)
	w.WriteInt(c.sdrBitsOut)
	w.WriteUint8(c.icr)
	w.WriteUint8(c.imr)
	w.WriteUint8(c.cra)
	w.WriteUint8(c.crb)
	w.WriteBool(c.irq)
	return nil
}

// Restore undoes Snapshot.
func (c *CIA) Restore(r *snapshot.Reader) error {
	var err error
	if c.pra, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.prb, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.ddra, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.ddrb, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.taLatch, err = r.ReadUint16(); err != nil {
		return err
	}
	if c.taCounter, err = r.ReadUint16(); err != nil {
		return err
	}
	if c.tbLatch, err = r.ReadUint16(); err != nil {
		return err
	}
	if c.tbCounter, err = r.ReadUint16(); err != nil {
		return err
	}

	if c.tod.tenths, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.tod.sec, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.tod.min, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.tod.hour, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.tod.pm, err = r.ReadBool(); err != nil {
		return err
	}
	if c.tod.alarmTenths, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.tod.alarmSec, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.tod.alarmMin, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.tod.alarmHour, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.tod.alarmPM, err = r.ReadBool(); err != nil {
		return err
	}
	if c.tod.halted, err = r.ReadBool(); err != nil {
		return err
	}
	if c.tod.frozen, err = r.ReadBool(); err != nil {
		return err
	}
	if c.tod.frozenTenths, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.tod.frozenSec, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.tod.frozenMin, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.tod.frozenHour, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.tod.frozenPM, err = r.ReadBool(); err != nil {
		return err
	}

	if c.sdr, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.sdrBitsOut, err = r.ReadInt(); err != nil {
		return err
	}
	if c.icr, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.imr, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.cra, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.crb, err = r.ReadUint8(); err != nil {
		return err
	}
	c.irq, err = r.ReadBool()
	return err
}
