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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"math"
)

// the length of the buffer we're using isn't really important, beyond being
// a multiple of 8 (two float32 channels) and at least sha1.Size bytes long.
const audioBufferLength = 1024 + sha1.Size

// the previous digest is stuffed into the head of the buffer so a flush
// folds it into the next one, the same chaining idiom Video uses.
const audioBufferStart = sha1.Size

// Audio periodically folds a run of resampled stereo samples (as pulled
// from sid.SID via Pull) into a running SHA-1 digest, the audio-side
// counterpart of Video's deterministic-output check.
//
// Note SHA-1 is fine here - this is a change-detector, not a cryptographic
// task.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for Audio.
func NewAudio() *Audio {
	dig := &Audio{
		buffer: make([]uint8, audioBufferLength),
	}
	dig.bufferCt = audioBufferStart
	return dig
}

// Hash implements the Digest interface.
func (dig Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// Sample folds one stereo sample pair into the digest, flushing whenever
// the scratch buffer fills.
func (dig *Audio) Sample(left, right float32) {
	var b [8]byte
	binary.LittleEndian.PutUint32(b[0:4], math.Float32bits(left))
	binary.LittleEndian.PutUint32(b[4:8], math.Float32bits(right))

	for _, v := range b {
		dig.buffer[dig.bufferCt] = v
		dig.bufferCt++
		if dig.bufferCt >= audioBufferLength {
			dig.flush()
		}
	}
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer)
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
