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

import "sync/atomic"

// Sample is one stereo output frame.
type Sample struct {
	Left, Right float32
}

// ringCapacity must be a power of two so the cursor-to-slot mapping is a
// plain mask rather than a modulo.
const ringCapacity = 4096

// ring is a lock-free single-producer single-consumer buffer of stereo
// samples: the worker goroutine driving StepCycle is the sole producer,
// the host audio callback is the sole consumer, and the only
// synchronisation between them is the pair of atomic cursors - per
// SPEC_FULL.md's concurrency model for the SID output stream.
type ring struct {
	buf          [ringCapacity]Sample
	write        atomic.Uint64
	read         atomic.Uint64
	droppedTotal atomic.Uint64
}

// push appends one sample, overwriting the oldest unread sample (and
// advancing read past it) when the ring is full - an overflow drops the
// oldest data rather than blocking the producer, per spec.
func (r *ring) push(s Sample) {
	w := r.write.Load()
	rd := r.read.Load()
	if w-rd >= ringCapacity {
		r.read.Store(rd + 1)
		r.droppedTotal.Add(1)
	}
	r.buf[w%ringCapacity] = s
	r.write.Store(w + 1)
}

// Pull drains up to len(out) samples into out, returning how many were
// copied. An underflow (read catching up to write) is left to the caller:
// SPEC_FULL.md's "underflow duplicates the last sample" policy is a host
// playback concern, not a ring-buffer one.
func (r *ring) Pull(out []Sample) int {
	n := 0
	for n < len(out) {
		rd := r.read.Load()
		w := r.write.Load()
		if rd >= w {
			break
		}
		out[n] = r.buf[rd%ringCapacity]
		r.read.Store(rd + 1)
		n++
	}
	return n
}

// Available reports how many samples are waiting to be pulled.
func (r *ring) Available() int {
	return int(r.write.Load() - r.read.Load())
}

// Dropped reports the total number of samples ever discarded to overflow.
func (r *ring) Dropped() uint64 {
	return r.droppedTotal.Load()
}
