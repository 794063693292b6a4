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

package sid

import "github.com/vc64/core/snapshot"

// Snapshot captures the register file and every voice/filter integrator
// needed to keep generating audio seamlessly from the same point. The
// output ring buffer is ephemeral host-playback plumbing, not emulated
// state, and is excluded - a restore simply starts filling it fresh.
func (s *SID) Snapshot(w *snapshot.Writer) error {
	w.WriteBytes(s.regs[:])
	w.WriteUint8(s.lastBusValue)

	for i := range s.voices {
		v := &s.voices[i]
		w.WriteUint32(v.accumulator)
		w.WriteUint32(v.noiseShift)
		w.WriteInt(int(v.envState))
		w.WriteUint8(v.envLevel)
		w.WriteUint32(v.envCounter)
		w.WriteUint8(v.envExpCnt)
		w.WriteBool(v.prevGate)
	}

	w.WriteFloat64(s.filt.low)
	w.WriteFloat64(s.filt.band)

	w.WriteFloat64(s.sampAccum)
	w.WriteUint8(s.potX)
	w.WriteUint8(s.potY)
	return nil
}

// Restore undoes Snapshot. cutoffHz/resonance/*Mix are intentionally not
// part of the blob - they are pure functions of regs, and mix() recomputes
// them from regs for every output sample, so Restore does not re-derive
// them itself.
func (s *SID) Restore(r *snapshot.Reader) error {
	regs, err := r.ReadBytes()
	if err != nil {
		return err
	}
	copy(s.regs[:], regs)

	if s.lastBusValue, err = r.ReadUint8(); err != nil {
		return err
	}

	for i := range s.voices {
		v := &s.voices[i]
		if v.accumulator, err = r.ReadUint32(); err != nil {
			return err
		}
		if v.noiseShift, err = r.ReadUint32(); err != nil {
			return err
		}
		state, err := r.ReadInt()
		if err != nil {
			return err
		}
		v.envState = envState(state)
		if v.envLevel, err = r.ReadUint8(); err != nil {
			return err
		}
		if v.envCounter, err = r.ReadUint32(); err != nil {
			return err
		}
		if v.envExpCnt, err = r.ReadUint8(); err != nil {
			return err
		}
		if v.prevGate, err = r.ReadBool(); err != nil {
			return err
		}
	}

	if s.filt.low, err = r.ReadFloat64(); err != nil {
		return err
	}
	if s.filt.band, err = r.ReadFloat64(); err != nil {
		return err
	}

	if s.sampAccum, err = r.ReadFloat64(); err != nil {
		return err
	}
	if s.potX, err = r.ReadUint8(); err != nil {
		return err
	}
	if s.potY, err = r.ReadUint8(); err != nil {
		return err
	}

	// cutoffHz/resonance/*Mix are recomputed from regs on the next mix()
	// call; no explicit re-derivation is needed here.
	return nil
}
