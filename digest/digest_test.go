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

package digest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vc64/core/digest"
)

func TestVideoDeterministic(t *testing.T) {
	frame := make([]uint8, 320*200)
	for i := range frame {
		frame[i] = uint8(i)
	}

	a := digest.NewVideo()
	b := digest.NewVideo()

	a.Frame(frame)
	b.Frame(frame)
	assert.Equal(t, a.Hash(), b.Hash())

	a.Frame(frame)
	assert.NotEqual(t, a.Hash(), b.Hash(), "a second frame folded into a only must diverge from b")
}

func TestVideoDiffersOnDifferentPixels(t *testing.T) {
	a := digest.NewVideo()
	b := digest.NewVideo()

	a.Frame([]uint8{1, 2, 3})
	b.Frame([]uint8{1, 2, 4})
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestVideoResetDigest(t *testing.T) {
	v := digest.NewVideo()
	v.Frame([]uint8{1, 2, 3})
	assert.NotEqual(t, "", v.Hash())

	v.ResetDigest()
	fresh := digest.NewVideo()
	assert.Equal(t, fresh.Hash(), v.Hash())
}

func TestAudioDeterministic(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()

	for i := 0; i < 300; i++ {
		a.Sample(0.5, -0.5)
		b.Sample(0.5, -0.5)
	}
	assert.Equal(t, a.Hash(), b.Hash())

	// Hash only reflects whole flushed buffers, so a must be fed enough
	// divergent samples (128 pairs = 1024 bytes) to force another flush
	for i := 0; i < 128; i++ {
		a.Sample(0.25, 0.25)
	}
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestAudioResetDigest(t *testing.T) {
	a := digest.NewAudio()
	a.Sample(1, 1)
	a.ResetDigest()

	fresh := digest.NewAudio()
	assert.Equal(t, fresh.Hash(), a.Hash())
}
