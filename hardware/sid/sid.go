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

// Package sid implements the MOS 6581/8580 SID sound chip: three
// oscillator+ADSR voices, a shared state-variable filter, and a
// lock-free ring buffer of resampled stereo output the host audio
// callback drains.
package sid

// SID is one chip instance (the C64 has one; expansion cartridges can add
// up to three more at $D420/$D440/$D460-equivalent offsets, per spec.md
// §4.4 - MemoryMap is responsible for that address decode, this type only
// ever sees its own 32-byte register window).
type SID struct {
	model Model

	regs         [regCount]uint8
	lastBusValue uint8

	voices [3]voice
	filt   filter

	clockHz    float64
	sampleRate float64
	sampAccum  float64

	out ring

	// potX and potY are the analog POTX/POTY lines, last latched by
	// whatever is wired to the control port (a paddle, or a 1351 mouse in
	// analog quadrature mode). A C64 with nothing analog plugged in reads
	// these as 0xff, the real chip's floating-input behaviour.
	potX, potY uint8
}

// New returns a SID clocked at clockHz (the main C64 clock, e.g.
// clocks.PALMHz*1e6), resampled to sampleRate samples/sec for host
// playback.
func New(model Model, clockHz float64, sampleRate int) *SID {
	s := &SID{
		model:      model,
		clockHz:    clockHz,
		sampleRate: float64(sampleRate),
		potX:       0xff,
		potY:       0xff,
	}
	s.filt.model = model
	for i := range s.voices {
		s.voices[i] = newVoice()
	}
	return s
}

// Reset silences all voices and clears every register.
func (s *SID) Reset() {
	s.regs = [regCount]uint8{}
	s.lastBusValue = 0
	s.sampAccum = 0
	for i := range s.voices {
		s.voices[i].reset()
	}
	s.filt = filter{model: s.model}
}

func (s *SID) voiceBase(v int) int { return v * 7 }

func (s *SID) voiceParams(v int) (freq, pw uint16, ctrl, attack, decay, sustain, release uint8) {
	base := s.voiceBase(v)
	freq = uint16(s.regs[base+voiceFreqLo]) | uint16(s.regs[base+voiceFreqHi])<<8
	pw = uint16(s.regs[base+voicePWLo]) | uint16(s.regs[base+voicePWHi]&0x0f)<<8
	ctrl = s.regs[base+voiceCtrl]
	attack = s.regs[base+voiceAD] >> 4
	decay = s.regs[base+voiceAD] & 0x0f
	sustain = s.regs[base+voiceSR] >> 4
	release = s.regs[base+voiceSR] & 0x0f
	return
}

// StepCycle advances the chip by one main-clock cycle: every voice's
// oscillator and envelope tick, and - often enough to hit the target host
// sample rate - a resampled output frame is pushed to the ring buffer.
// This is the "fast" resampling method named in spec.md §4.5: a running
// fractional accumulator rather than a proper windowed-sinc resampler;
// the other three named methods (interpolated, high-quality, fast-memory)
// are not implemented, see DESIGN.md.
func (s *SID) StepCycle() {
	ringSources := [3]uint32{}
	for i := range s.voices {
		freq, _, ctrl, _, _, _, _ := s.voiceParams(i)
		test := ctrl&ctrlTest != 0
		s.voices[i].clockOscillator(freq, test)
		ringSources[i] = (s.voices[i].accumulator >> 23) & 1
	}
	for i := range s.voices {
		_, _, ctrl, attack, decay, sustain, release := s.voiceParams(i)
		gate := ctrl&ctrlGate != 0
		s.voices[i].clockEnvelope(attack, decay, sustain, release, gate)
	}

	s.sampAccum += s.sampleRate / s.clockHz
	if s.sampAccum < 1.0 {
		return
	}
	s.sampAccum -= 1.0
	s.out.push(s.mix(ringSources))
}

func (s *SID) mix(ringSources [3]uint32) Sample {
	resFilt := s.regs[regResFilt]
	modeVol := s.regs[regModeVol]

	s.filt.setCutoff(uint16(s.regs[regFCLo]&0x07) | uint16(s.regs[regFCHi])<<3)
	s.filt.setResonance(resFilt & filtResMask >> 4)
	s.filt.lowMix = modeVol&modeLowPass != 0
	s.filt.bandMix = modeVol&modeBandPass != 0
	s.filt.highMix = modeVol&modeHighPass != 0

	var filtered, dry float64
	voice3Off := modeVol&modeVoice3Off != 0

	routeMask := [3]uint8{filtVoice0, filtVoice1, filtVoice2}
	for i := range s.voices {
		if i == 2 && voice3Off {
			continue
		}
		_, pw, ctrl, _, _, _, _ := s.voiceParams(i)
		ringSrc := ringSources[(i+2)%3]
		ringMSB := uint32(0)
		if ctrl&ctrlRingMod != 0 {
			ringMSB = ringSrc
		}
		wave := s.voices[i].waveform(ctrl, pw, ringMSB)
		norm := (float64(wave)/4095.0 - 0.5) * 2.0
		voiceOut := norm * float64(s.voices[i].envLevel) / 255.0

		if resFilt&routeMask[i] != 0 {
			filtered += voiceOut
		} else {
			dry += voiceOut
		}
	}

	mixed := s.filt.process(filtered, s.sampleRate) + dry
	vol := float64(modeVol&modeVolMask) / 15.0
	out := float32(mixed * vol)

	return Sample{Left: out, Right: out}
}

// Pull drains resampled output into out, returning how many frames were
// copied.
func (s *SID) Pull(out []Sample) int {
	return s.out.Pull(out)
}

// DroppedSamples reports how many output frames have been discarded
// because the host fell behind and the ring buffer overflowed.
func (s *SID) DroppedSamples() uint64 {
	return s.out.Dropped()
}

// Read implements bus.CPUBus. OSC3/ENV3 reflect live voice 3 state; every
// other register is nominally write-only on real hardware and reads back
// whatever was last driven onto the data bus.
func (s *SID) Read(address uint16) (uint8, error) {
	i := regIndex(address)
	switch i {
	case regOsc3:
		return uint8(s.voices[2].accumulator >> 16), nil
	case regEnv3:
		return s.voices[2].envLevel, nil
	case regPotX:
		return s.potX, nil
	case regPotY:
		return s.potY, nil
	default:
		return s.lastBusValue, nil
	}
}

// SetPot latches the analog POTX/POTY lines, driven by whatever control
// port peripheral is plumbed to this SID (a paddle directly, or CIA1's
// port peripheral relaying a 1351 mouse's quadrature-derived position).
// Unconnected inputs should be left at the 0xff New initializes them to.
func (s *SID) SetPot(x, y uint8) {
	s.potX = x
	s.potY = y
}

// SetModel switches which revision's filter response the chip approximates,
// for the SID_REVISION config option - live-switchable since, unlike the
// VIC-II's timing, nothing about SID's register layout or clocking depends
// on the model.
func (s *SID) SetModel(m Model) {
	s.model = m
	s.filt.model = m
}

// Write implements bus.CPUBus.
func (s *SID) Write(address uint16, data uint8) error {
	s.lastBusValue = data
	i := regIndex(address)
	if i < regCount {
		s.regs[i] = data
	}
	return nil
}

// Peek and Poke implement bus.DebuggerBus: the SID has no clear-on-read or
// write-only-masking side effects beyond what Read/Write already apply, so
// these are plain passthroughs.
func (s *SID) Peek(address uint16) (uint8, error) {
	return s.Read(address)
}

func (s *SID) Poke(address uint16, value uint8) error {
	return s.Write(address, value)
}
