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

// register offsets within one voice's 7-byte block ($D400+voice*7).
const (
	voiceFreqLo = 0x00
	voiceFreqHi = 0x01
	voicePWLo   = 0x02
	voicePWHi   = 0x03
	voiceCtrl   = 0x04
	voiceAD     = 0x05
	voiceSR     = 0x06
)

// whole-chip register offsets, past the three 7-byte voice blocks.
const (
	regFCLo    = 0x15
	regFCHi    = 0x16
	regResFilt = 0x17
	regModeVol = 0x18
	regPotX    = 0x19
	regPotY    = 0x1a
	regOsc3    = 0x1b
	regEnv3    = 0x1c

	regCount = 0x1d
)

// voice control register bits.
const (
	ctrlGate     uint8 = 1 << 0
	ctrlSync     uint8 = 1 << 1
	ctrlRingMod  uint8 = 1 << 2
	ctrlTest     uint8 = 1 << 3
	ctrlTriangle uint8 = 1 << 4
	ctrlSawtooth uint8 = 1 << 5
	ctrlPulse    uint8 = 1 << 6
	ctrlNoise    uint8 = 1 << 7
)

// filter routing / resonance register ($D417) bits.
const (
	filtVoice0  uint8 = 1 << 0
	filtVoice1  uint8 = 1 << 1
	filtVoice2  uint8 = 1 << 2
	filtExt     uint8 = 1 << 3
	filtResMask uint8 = 0xf0
)

// mode/volume register ($D418) bits.
const (
	modeVolMask   uint8 = 0x0f
	modeLowPass   uint8 = 1 << 4
	modeBandPass  uint8 = 1 << 5
	modeHighPass  uint8 = 1 << 6
	modeVoice3Off uint8 = 1 << 7
)

func regIndex(address uint16) int {
	return int(address & 0x1f)
}
