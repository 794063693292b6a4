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

package sid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vc64/core/hardware/sid"
)

const palClockHz = 985248.0

func TestRegisterWritesAreMirroredByReadsForWriteOnlyRegisters(t *testing.T) {
	s := sid.New(sid.MOS6581, palClockHz, 44100)

	assert.NoError(t, s.Write(0x00, 0x34)) // voice 0 freq lo - write-only
	v, err := s.Read(0x00)
	assert.NoError(t, err)
	assert.EqualValues(t, 0x34, v) // reads back the last bus value, not the register
}

func TestGateOnDrivesEnvelopeFromZeroTowardsFullScale(t *testing.T) {
	s := sid.New(sid.MOS6581, palClockHz, 44100)

	// Only voice 3's envelope is independently readable (via ENV3 at
	// $D41C), so that's the voice exercised here.
	assert.NoError(t, s.Write(0x0e, 0xff))
	assert.NoError(t, s.Write(0x0f, 0x10))
	assert.NoError(t, s.Write(0x13, 0x00))
	assert.NoError(t, s.Write(0x14, 0xf0))
	assert.NoError(t, s.Write(0x12, 0x11))

	env3Before, err := s.Read(0x1c)
	assert.NoError(t, err)
	assert.Zero(t, env3Before)

	for i := 0; i < 5000; i++ {
		s.StepCycle()
	}

	env3After, err := s.Read(0x1c)
	assert.NoError(t, err)
	assert.Greater(t, env3After, env3Before)
}

func TestOscillator3ReflectsAccumulatorTopByte(t *testing.T) {
	s := sid.New(sid.MOS8580, palClockHz, 44100)

	assert.NoError(t, s.Write(0x0e, 0xff)) // voice 2 freq lo
	assert.NoError(t, s.Write(0x0f, 0xff)) // voice 2 freq hi -> fast-running oscillator

	var sawBefore uint8
	sawBefore, _ = s.Read(0x1b)

	for i := 0; i < 200; i++ {
		s.StepCycle()
	}

	sawAfter, err := s.Read(0x1b)
	assert.NoError(t, err)
	assert.NotEqual(t, sawBefore, sawAfter)
}

func TestGateOffAfterSustainReleasesEnvelopeTowardsZero(t *testing.T) {
	s := sid.New(sid.MOS6581, palClockHz, 44100)

	assert.NoError(t, s.Write(0x0e, 0xff))
	assert.NoError(t, s.Write(0x0f, 0x10))
	assert.NoError(t, s.Write(0x13, 0x00)) // attack=0, decay=0
	assert.NoError(t, s.Write(0x14, 0xf9)) // sustain=15, release=9 (slow-ish)
	assert.NoError(t, s.Write(0x12, 0x11)) // gate on

	for i := 0; i < 5000; i++ {
		s.StepCycle()
	}
	atSustain, err := s.Read(0x1c)
	assert.NoError(t, err)
	assert.NotZero(t, atSustain)

	assert.NoError(t, s.Write(0x12, 0x10)) // gate off, waveform bit retained

	for i := 0; i < 40000; i++ {
		s.StepCycle()
	}
	afterRelease, err := s.Read(0x1c)
	assert.NoError(t, err)
	assert.Less(t, afterRelease, atSustain)
}

func TestOutputRingBufferFillsAtTargetSampleRate(t *testing.T) {
	s := sid.New(sid.MOS6581, palClockHz, 8000)

	cyclesPerSample := palClockHz / 8000.0
	for i := 0; i < int(cyclesPerSample)*10; i++ {
		s.StepCycle()
	}

	buf := make([]sid.Sample, 20)
	n := s.Pull(buf)
	assert.GreaterOrEqual(t, n, 8)
	assert.LessOrEqual(t, n, 11)
}

func TestPeekAndPokeMirrorReadAndWrite(t *testing.T) {
	s := sid.New(sid.MOS6581, palClockHz, 44100)

	assert.NoError(t, s.Poke(0x18, 0x0f)) // mode/volume, max volume
	v, err := s.Peek(0x18)
	assert.NoError(t, err)
	assert.EqualValues(t, 0x0f, v)
}
