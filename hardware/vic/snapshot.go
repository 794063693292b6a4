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

package vic

import "github.com/vc64/core/snapshot"

// Snapshot captures every field that affects future raster/DMA/IRQ
// behaviour. The pixel buffers (frame, lineBuffer) are display output
// regenerated every frame, not state that needs to survive a restore.
func (v *VIC) Snapshot(w *snapshot.Writer) error {
	w.WriteInt(int(v.std))
	w.WriteInt(v.raster)
	w.WriteInt(v.cycle)
	w.WriteUint8(v.rasterCompareLo)
	w.WriteInt(v.vc)
	w.WriteInt(v.vcbase)
	w.WriteInt(v.rc)
	w.WriteBool(v.denLatched)
	w.WriteBool(v.badLine)
	w.WriteBool(v.mainBorder)
	w.WriteBool(v.verticalBorder)
	w.WriteBytes(v.videoMatrix[:])
	w.WriteBytes(v.colorLine[:])
	for i := range v.sprites {
		s := &v.sprites[i]
		w.WriteBool(s.dmaOn)
		w.WriteBool(s.displayOn)
		w.WriteInt(s.mc)
		w.WriteInt(s.mcbase)
		w.WriteInt(s.rowsDrawn)
	}
	w.WriteBytes(v.regs[:])
	w.WriteUint8(v.irr)
	w.WriteUint8(v.imr)
	w.WriteUint8(v.ssColl)
	w.WriteUint8(v.sbColl)
	w.WriteUint8(v.lightpenX)
	w.WriteUint8(v.lightpenY)
	w.WriteInt(int(v.revision))
	w.WriteInt(v.frameCount)
	w.WriteBool(v.everHadBadLine)
	return nil
}

// Restore undoes Snapshot.
func (v *VIC) Restore(r *snapshot.Reader) error {
	std, err := r.ReadInt()
	if err != nil {
		return err
	}
	v.std = Standard(std)

	if v.raster, err = r.ReadInt(); err != nil {
		return err
	}
	if v.cycle, err = r.ReadInt(); err != nil {
		return err
	}
	if v.rasterCompareLo, err = r.ReadUint8(); err != nil {
		return err
	}
	if v.vc, err = r.ReadInt(); err != nil {
		return err
	}
	if v.vcbase, err = r.ReadInt(); err != nil {
		return err
	}
	if v.rc, err = r.ReadInt(); err != nil {
		return err
	}
	if v.denLatched, err = r.ReadBool(); err != nil {
		return err
	}
	if v.badLine, err = r.ReadBool(); err != nil {
		return err
	}
	if v.mainBorder, err = r.ReadBool(); err != nil {
		return err
	}
	if v.verticalBorder, err = r.ReadBool(); err != nil {
		return err
	}

	vm, err := r.ReadBytes()
	if err != nil {
		return err
	}
	copy(v.videoMatrix[:], vm)

	cl, err := r.ReadBytes()
	if err != nil {
		return err
	}
	copy(v.colorLine[:], cl)

	for i := range v.sprites {
		s := &v.sprites[i]
		if s.dmaOn, err = r.ReadBool(); err != nil {
			return err
		}
		if s.displayOn, err = r.ReadBool(); err != nil {
			return err
		}
		if s.mc, err = r.ReadInt(); err != nil {
			return err
		}
		if s.mcbase, err = r.ReadInt(); err != nil {
			return err
		}
		if s.rowsDrawn, err = r.ReadInt(); err != nil {
			return err
		}
	}

	regs, err := r.ReadBytes()
	if err != nil {
		return err
	}
	copy(v.regs[:], regs)

	if v.irr, err = r.ReadUint8(); err != nil {
		return err
	}
	if v.imr, err = r.ReadUint8(); err != nil {
		return err
	}
	if v.ssColl, err = r.ReadUint8(); err != nil {
		return err
	}
	if v.sbColl, err = r.ReadUint8(); err != nil {
		return err
	}
	if v.lightpenX, err = r.ReadUint8(); err != nil {
		return err
	}
	if v.lightpenY, err = r.ReadUint8(); err != nil {
		return err
	}

	rev, err := r.ReadInt()
	if err != nil {
		return err
	}
	v.revision = Revision(rev)

	if v.frameCount, err = r.ReadInt(); err != nil {
		return err
	}
	v.everHadBadLine, err = r.ReadBool()
	return err
}
