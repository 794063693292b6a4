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

package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vc64/core/snapshot"
)

// fakeComponent exercises every Writer/Reader field kind in one round trip.
type fakeComponent struct {
	b    uint8
	flag bool
	w16  uint16
	w32  uint32
	w64  uint64
	i    int
	f    float64
	data []byte
}

func (c *fakeComponent) Snapshot(w *snapshot.Writer) error {
	w.WriteUint8(c.b)
	w.WriteBool(c.flag)
	w.WriteUint16(c.w16)
	w.WriteUint32(c.w32)
	w.WriteUint64(c.w64)
	w.WriteInt(c.i)
	w.WriteFloat64(c.f)
	w.WriteBytes(c.data)
	return nil
}

func (c *fakeComponent) Restore(r *snapshot.Reader) error {
	var err error
	if c.b, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.flag, err = r.ReadBool(); err != nil {
		return err
	}
	if c.w16, err = r.ReadUint16(); err != nil {
		return err
	}
	if c.w32, err = r.ReadUint32(); err != nil {
		return err
	}
	if c.w64, err = r.ReadUint64(); err != nil {
		return err
	}
	if c.i, err = r.ReadInt(); err != nil {
		return err
	}
	if c.f, err = r.ReadFloat64(); err != nil {
		return err
	}
	if c.data, err = r.ReadBytes(); err != nil {
		return err
	}
	return nil
}

func TestSaveLoadRoundTrip(t *testing.T) {
	src := &fakeComponent{
		b: 0x42, flag: true, w16: 0xbeef, w32: 0xdeadbeef, w64: 0x0102030405060708,
		i: -17, f: 3.14159, data: []byte{1, 2, 3, 4, 5},
	}
	blob, err := snapshot.Save(0x1, []snapshot.Component{src})
	assert.NoError(t, err)

	dst := &fakeComponent{}
	flags, err := snapshot.Load(blob, []snapshot.Component{dst})
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x1), flags)
	assert.Equal(t, src, dst)
}

func TestSaveLoadMultipleComponents(t *testing.T) {
	a := &fakeComponent{b: 1, data: []byte{9}}
	b := &fakeComponent{b: 2, data: []byte{8, 7}}

	blob, err := snapshot.Save(0, []snapshot.Component{a, b})
	assert.NoError(t, err)

	ra, rb := &fakeComponent{}, &fakeComponent{}
	_, err = snapshot.Load(blob, []snapshot.Component{ra, rb})
	assert.NoError(t, err)
	assert.Equal(t, a, ra)
	assert.Equal(t, b, rb)
}

func TestLoadRejectsVersionMismatch(t *testing.T) {
	blob, err := snapshot.Save(0, []snapshot.Component{&fakeComponent{}})
	assert.NoError(t, err)
	// corrupt the version field
	blob[0] = 0xff

	_, err = snapshot.Load(blob, []snapshot.Component{&fakeComponent{}})
	assert.Error(t, err)
}

func TestLoadRejectsCorruptChecksum(t *testing.T) {
	blob, err := snapshot.Save(0, []snapshot.Component{&fakeComponent{b: 1}})
	assert.NoError(t, err)
	// flip a body byte without updating the checksum
	blob[len(blob)-1] ^= 0xff

	_, err = snapshot.Load(blob, []snapshot.Component{&fakeComponent{}})
	assert.Error(t, err)
}

func TestLoadRejectsTruncatedData(t *testing.T) {
	_, err := snapshot.Load([]byte{1, 2, 3}, nil)
	assert.Error(t, err)
}
