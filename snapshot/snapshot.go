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

// Package snapshot implements the per-component serialize/deserialize
// contract every hardware component in this module satisfies, and the
// fixed-order concatenated blob layout machine.Machine assembles them into:
// a small header (version, flags, a checksum over everything that follows)
// and then one length-prefixed blob per component, in the order spec.md §6
// names (CPU, Memory, CIA1, CIA2, VIC, SID, Keyboard, ControlPort, Drive,
// ...). The exact on-disk framing of that outer blob - compression, a file
// extension, a container format - is a host-façade concern and out of
// scope; this package only guarantees the contract that every component is
// serializable and that Save/Load round-trip identically.
package snapshot

import (
	"bytes"
	"crypto/sha1"
	"encoding/binary"
	"io"
	"math"

	"github.com/vc64/core/errors"
)

// Version identifies the blob layout Save produces. Load rejects any other
// version outright rather than guessing at a compatible subset, per
// spec.md §9's "older versions fail the load cleanly" note.
const Version uint32 = 1

const headerSize = 16 // version(4) + flags(4) + checksum(8)

// Component is implemented by anything Machine persists as one of the
// fixed-order blobs in a snapshot.
type Component interface {
	Snapshot(w *Writer) error
	Restore(r *Reader) error
}

// Writer accumulates one component's persistent fields as a flat byte
// stream. Component packages write directly to their own unexported
// fields, so Writer lives in its own package rather than on machine.Machine.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) WriteUint8(v uint8) { w.buf.WriteByte(v) }

func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf.WriteByte(1)
		return
	}
	w.buf.WriteByte(0)
}

func (w *Writer) WriteUint16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

func (w *Writer) WriteUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// WriteInt writes a platform-independent 64-bit signed value, for plain Go
// ints used as counters/indices rather than fixed hardware register widths.
func (w *Writer) WriteInt(v int) { w.WriteUint64(uint64(int64(v))) }

func (w *Writer) WriteFloat64(v float64) { w.WriteUint64(math.Float64bits(v)) }

// WriteBytes writes a length-prefixed byte slice, for variable-sized
// payloads such as a drive's inserted disk image.
func (w *Writer) WriteBytes(b []byte) {
	w.WriteUint32(uint32(len(b)))
	w.buf.Write(b)
}

// Bytes returns the writer's accumulated contents.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Reader is the inverse of Writer, reading back a single component's blob
// in the same field order it was written.
type Reader struct {
	buf *bytes.Reader
}

// NewReader wraps data for sequential reading.
func NewReader(data []byte) *Reader {
	return &Reader{buf: bytes.NewReader(data)}
}

func corrupt(err error) error {
	return errors.Newf(errors.SnapshotCorrupt, errors.SnapshotCorruptMsg, err)
}

func (r *Reader) read(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r.buf, b); err != nil {
		return nil, corrupt(err)
	}
	return b, nil
}

func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.buf.ReadByte()
	if err != nil {
		return 0, corrupt(err)
	}
	return b, nil
}

func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadUint8()
	return b != 0, err
}

func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) ReadInt() (int, error) {
	v, err := r.ReadUint64()
	return int(int64(v)), err
}

func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	return r.read(int(n))
}

// Save serializes components in the given order into one self-contained
// blob: a fixed header followed by each component's length-prefixed
// Snapshot output, concatenated in order. flags is caller-defined (e.g. a
// bit marking warp mode was active); spec.md §6 reserves the field without
// naming concrete bits, so no flags are assigned meaning here.
func Save(flags uint32, components []Component) ([]byte, error) {
	var body bytes.Buffer
	for _, c := range components {
		w := NewWriter()
		if err := c.Snapshot(w); err != nil {
			return nil, err
		}
		blob := w.Bytes()
		var lenBuf [4]byte
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(blob)))
		body.Write(lenBuf[:])
		body.Write(blob)
	}

	sum := sha1.Sum(body.Bytes())
	checksum := binary.LittleEndian.Uint64(sum[:8])

	out := make([]byte, 0, headerSize+body.Len())
	var hdr [headerSize]byte
	binary.LittleEndian.PutUint32(hdr[0:4], Version)
	binary.LittleEndian.PutUint32(hdr[4:8], flags)
	binary.LittleEndian.PutUint64(hdr[8:16], checksum)
	out = append(out, hdr[:]...)
	out = append(out, body.Bytes()...)
	return out, nil
}

// Load verifies the header and checksum before restoring a single
// component, so a version mismatch or corrupted blob is detected before any
// component's Restore runs and mutates live state - matching spec.md §7's
// "snapshot load is aborted atomically; the emulator remains in its
// pre-load state" for the common failure modes. A blob that is individually
// truncated past a point the checksum already validated is the one case
// that can still leave earlier components restored while a later one
// fails; see DESIGN.md.
func Load(data []byte, components []Component) (uint32, error) {
	if len(data) < headerSize {
		return 0, corrupt(io.ErrUnexpectedEOF)
	}
	version := binary.LittleEndian.Uint32(data[0:4])
	if version != Version {
		return 0, errors.Newf(errors.SnapshotVersionMismatch, errors.SnapshotVersionMismatchMsg, version, Version)
	}
	flags := binary.LittleEndian.Uint32(data[4:8])
	checksum := binary.LittleEndian.Uint64(data[8:16])
	body := data[headerSize:]

	sum := sha1.Sum(body)
	if binary.LittleEndian.Uint64(sum[:8]) != checksum {
		return 0, corrupt(errors.Errorf("checksum mismatch"))
	}

	off := 0
	for _, c := range components {
		if off+4 > len(body) {
			return 0, corrupt(io.ErrUnexpectedEOF)
		}
		n := int(binary.LittleEndian.Uint32(body[off : off+4]))
		off += 4
		if n < 0 || off+n > len(body) {
			return 0, corrupt(io.ErrUnexpectedEOF)
		}
		blob := body[off : off+n]
		off += n
		if err := c.Restore(NewReader(blob)); err != nil {
			return 0, err
		}
	}
	return flags, nil
}
