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

// Package clocks defines the timing constants that govern a frame's worth
// of emulation: main clock frequency, cycles per scanline, and lines per
// frame, for both video standards the C64 shipped in.
package clocks

// Mhz is the nominal main clock frequency in MHz for each video standard.
const (
	PALMHz  = 0.985248
	NTSCMHz = 1.022727
)

// DriveMHz is the 1541's own controller clock, fixed regardless of which
// video standard the main machine runs - the drive is a standalone computer
// connected only by the serial bus, and free-runs at its own rate.
const DriveMHz = 1.0

// CyclesPerLine is constant for a given standard: the VIC-II always takes
// this many main-clock cycles to scan one raster line, regardless of
// whether the line is visible, border, or vertical blank.
const (
	PALCyclesPerLine  = 63
	NTSCCyclesPerLine = 65
)

// LinesPerFrame is the total raster line count, visible plus blanking.
const (
	PALLinesPerFrame  = 312
	NTSCLinesPerFrame = 263
)

// CyclesPerFrame is derived, not independently specified: it is what the
// Open Question on the exact PAL/NTSC field rate resolves against, rather
// than a rounded 50/60 Hz figure.
const (
	PALCyclesPerFrame  = PALCyclesPerLine * PALLinesPerFrame
	NTSCCyclesPerFrame = NTSCCyclesPerLine * NTSCLinesPerFrame
)

// FieldRate returns the exact field (frame) rate in Hz implied by the
// standard's main clock and its cycles-per-frame count, rather than the
// conventionally rounded 50/60 Hz.
func FieldRate(mhz float64, cyclesPerFrame int) float64 {
	return (mhz * 1_000_000) / float64(cyclesPerFrame)
}

// PALFieldRate and NTSCFieldRate are the two standards' exact field rates,
// computed once from the constants above (~50.1245 Hz and ~59.8261 Hz).
var (
	PALFieldRate  = FieldRate(PALMHz, PALCyclesPerFrame)
	NTSCFieldRate = FieldRate(NTSCMHz, NTSCCyclesPerFrame)
)

// VisibleSize is the framebuffer dimensions published to the host, per
// video standard, including the full border.
type VisibleSize struct {
	Width  int
	Height int
}

var (
	PALVisible  = VisibleSize{Width: 520, Height: PALLinesPerFrame}
	NTSCVisible = VisibleSize{Width: 520, Height: NTSCLinesPerFrame}
)
