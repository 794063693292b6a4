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

import "math"

// Model selects which SID revision's filter response curve to approximate.
type Model int

const (
	MOS6581 Model = iota
	MOS8580
)

// filter is a state-variable low/band/high-pass filter, the shape the SID's
// analogue filter implements. cutoffHz and resonance are recomputed from
// the $D415-$D417 registers whenever they change; low/band/highMix select
// which of the three taps the mode register routes to the output.
type filter struct {
	model Model

	low, band float64

	cutoffHz  float64
	resonance float64

	lowMix, bandMix, highMix bool
}

// setCutoff converts the SID's 11-bit filter cutoff value to a cutoff
// frequency, following the two chip revisions' documented response curves:
// 6581 is compressed at low values and expands non-linearly, 8580 is close
// to linear and reaches a higher maximum.
func (f *filter) setCutoff(raw uint16) {
	if raw == 0 {
		f.cutoffHz = 30
		return
	}
	v := float64(raw)
	if f.model == MOS8580 {
		f.cutoffHz = 30 + v*5.8
		if f.cutoffHz > 18000 {
			f.cutoffHz = 18000
		}
		return
	}
	f.cutoffHz = 30 + math.Pow(v, 1.35)*0.22
	if f.cutoffHz > 12000 {
		f.cutoffHz = 12000
	}
}

// setResonance converts the 4-bit resonance nibble to the state-variable
// filter's feedback coefficient, reproducing the SID's runaway-towards-
// self-oscillation character at high settings.
func (f *filter) setResonance(raw uint8) {
	norm := float64(raw) / 15.0
	f.resonance = math.Pow(norm, 2.2) * 0.95
}

// process runs one sample of the Chamberlin-topology state-variable filter
// and mixes whichever of low/band/high-pass outputs the mode register
// selected.
func (f *filter) process(in float64, sampleRate float64) float64 {
	if !f.lowMix && !f.bandMix && !f.highMix {
		return in
	}

	q := 1.0 - f.resonance
	if q < 0.05 {
		q = 0.05
	}
	fc := 2.0 * math.Sin(math.Pi*f.cutoffHz/sampleRate)
	if fc > 1.0 {
		fc = 1.0
	}

	high := in - f.low - q*f.band
	f.band += fc * high
	f.low += fc * f.band

	var out float64
	if f.lowMix {
		out += f.low
	}
	if f.bandMix {
		out += f.band
	}
	if f.highMix {
		out += high
	}
	return out
}
