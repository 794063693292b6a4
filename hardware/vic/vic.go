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

// Package vic implements the VIC-II video chip: raster-cycle stepping,
// bad-line/DMA timing, the character/bitmap/sprite graphics pipeline, and
// the $D000-$D02E register file (mirrored across the full $D000-$D3FF I/O
// sub-page). It produces a frame of palette-index pixels - converting those
// sixteen indices to host RGB is a presentation-layer concern outside this
// package.
package vic

import (
	"github.com/vc64/core/hardware/clocks"
	"github.com/vc64/core/random"
)

// Bus is the VIC-II's own 14-bit address bus into whichever 16 KiB bank of
// the C64's memory CIA2 currently selects. Addresses are bank-relative
// (0x0000-0x3fff); the caller (package machine) is responsible for adding
// the bank offset and for redirecting $1000-$1FFF/$9000-$9FFF to character
// ROM, exactly as the real address decode does regardless of what the CPU
// sees at those addresses.
type Bus interface {
	Read(address uint16) (uint8, error)
}

// Standard selects PAL or NTSC timing.
type Standard int

const (
	PAL Standard = iota
	NTSC
)

// Revision identifies a specific VIC-II silicon revision. It only affects
// the chip's handful of documented erratum behaviours - nothing in the
// mainline raster/DMA/sprite pipeline varies by revision.
type Revision int

const (
	Rev6569R1 Revision = iota
	Rev6569R3
	Rev8565
	Rev6567
	Rev6567R56A
	Rev8562
)

// HasGrayDotBug reports whether this revision exhibits the well-known
// "gray dot bug": the newer HMOS VIC-II mask sets (8565 PAL, 8562 NTSC)
// occasionally render a single gray pixel instead of black at the start of
// a bad line, because their character-fetch pipeline isn't yet driving a
// stable colour when DMA first steals the bus. The older NMOS revisions
// (6569R1/R3, 6567, 6567R56A) don't exhibit it.
func (r Revision) HasGrayDotBug() bool {
	return r == Rev8565 || r == Rev8562
}

// grayDotColour is the palette index the gray-dot bug substitutes for black.
const grayDotColour = 0x0f

const (
	firstVisibleLine25Row = 0x33
	lastVisibleLine25Row  = 0xfa
	firstVisibleLine24Row = 0x37
	lastVisibleLine24Row  = 0xf6

	badLineMinRaster = 0x30
	badLineMaxRaster = 0xf7

	canvasWidth  = 320
	canvasHeight = 200
)

// VIC is one VIC-II chip instance.
type VIC struct {
	Bus Bus

	std           Standard
	linesPerFrame int
	cyclesPerLine int

	raster int // current raster line, 0-based
	cycle  int // current cycle within the line, 1-based

	rasterCompareLo uint8

	vc, vcbase, rc int

	denLatched bool
	badLine    bool

	mainBorder, verticalBorder bool

	videoMatrix [40]uint8
	colorLine   [40]uint8

	sprites [8]sprite

	regs [64]uint8

	irr, imr       uint8
	ssColl, sbColl uint8
	lightpenX      uint8
	lightpenY      uint8

	lineBuffer [canvasWidth + 2*borderWidth]uint8
	frame      []uint8
	frameW     int
	frameH     int
	frameDone  bool

	revision   Revision
	frameCount int // completed-frame counter, used as random.Coords.Frame

	// grayDotArmed is set for one line when this is the first bad line of
	// a newly-enabled display on a revision with the gray dot bug.
	grayDotArmed   bool
	everHadBadLine bool
}

const borderWidth = (520 - canvasWidth) / 2

// New returns a VIC-II wired to the given graphics bus, timed for std.
func New(std Standard, bus Bus) *VIC {
	v := &VIC{Bus: bus, std: std}
	switch std {
	case NTSC:
		v.linesPerFrame = clocks.NTSCLinesPerFrame
		v.cyclesPerLine = clocks.NTSCCyclesPerLine
	default:
		v.linesPerFrame = clocks.PALLinesPerFrame
		v.cyclesPerLine = clocks.PALCyclesPerLine
	}
	v.frameW = canvasWidth + 2*borderWidth
	v.frameH = v.linesPerFrame
	v.frame = make([]uint8, v.frameW*v.frameH)
	v.revision = Rev6569R3
	v.Reset()
	return v
}

// SetRevision selects the silicon revision, affecting erratum behaviour
// only (see Revision.HasGrayDotBug). Call before running the chip.
func (v *VIC) SetRevision(r Revision) {
	v.revision = r
}

// GetCoords implements random.CoordsProvider, letting the shared
// hardware/instance.Instance derive a rewind-safe seed from this chip's
// raster position - the video chip is the canonical source of "where in
// time are we" for deterministic randomness, since every other chip's
// timing derives from it.
func (v *VIC) GetCoords() random.Coords {
	return random.Coords{Frame: v.frameCount, Line: v.raster, Cycle: v.cycle}
}

// Reset puts the chip back to its power-on state: raster at line 0, no
// interrupts pending or enabled, display off.
func (v *VIC) Reset() {
	v.raster = 0
	v.cycle = 1
	v.rasterCompareLo = 0
	v.vc, v.vcbase, v.rc = 0, 0, 0
	v.denLatched = false
	v.badLine = false
	v.mainBorder, v.verticalBorder = true, true
	v.regs = [64]uint8{}
	v.irr, v.imr = 0, 0
	v.ssColl, v.sbColl = 0, 0
	for i := range v.sprites {
		v.sprites[i] = sprite{}
	}
	v.everHadBadLine = false
	v.grayDotArmed = false
}

// IRQLine reports whether the chip currently wants to interrupt the CPU.
func (v *VIC) IRQLine() bool {
	return v.irr&v.imr&0x0f != 0
}

// BadLine reports whether the current raster line is a bad line, and
// Cycle the cycle position within it, so that package machine's main loop
// can drive cpu.CPU.RdyFlg low for the window a bad line steals the bus:
// cycles 12-51, the 40 cycles spec.md's CPU-reset-stall property names,
// starting 3 cycles before fetchRow's bulk c-access at cycle 15.
func (v *VIC) BadLine() bool { return v.badLine }
func (v *VIC) Cycle() int    { return v.cycle }
func (v *VIC) Raster() int   { return v.raster }

// FrameDone reports whether a frame has completed since the last call,
// clearing the flag: package machine polls this once per cycle to find
// the frame boundary it publishes the texture and checks FINISH_FRAME at.
func (v *VIC) FrameDone() bool {
	if v.frameDone {
		v.frameDone = false
		return true
	}
	return false
}

func (v *VIC) raise(bit uint8) {
	v.irr |= bit
}

func (v *VIC) rasterCompareTarget() int {
	hi := 0
	if v.regs[regCR1]&cr1RST8 != 0 {
		hi = 0x100
	}
	return hi | int(v.rasterCompareLo)
}

// Frame returns the most recently completed frame buffer (palette indices,
// row-major, frameW wide) and its dimensions. The slice is owned by the
// VIC and is overwritten as soon as the next frame completes - callers that
// need to hold onto it must copy.
func (v *VIC) Frame() (pixels []uint8, width, height int) {
	return v.frame, v.frameW, v.frameH
}

// StepCycle advances the chip by one main-clock cycle. It is called once
// per φ2 tick by package machine, the same cadence cpu.CPU.ExecuteInstruction
// drives its own cycleCallback at.
func (v *VIC) StepCycle() {
	if v.cycle == 1 {
		v.startLine()
	}

	if v.badLine && v.cycle == 15 {
		v.fetchRow()
	}

	if v.cycle >= 16 && v.cycle <= 55 {
		v.renderColumn(v.cycle - 16)
	}

	if v.cycle == v.cyclesPerLine {
		v.endLine()
	}

	v.cycle++
	if v.cycle > v.cyclesPerLine {
		v.cycle = 1
		v.raster++
		if v.raster >= v.linesPerFrame {
			v.raster = 0
		}
	}
}

func (v *VIC) startLine() {
	if v.raster == 0 {
		v.vcbase = 0
		v.rc = 0
		v.denLatched = false
	}
	if v.raster >= badLineMinRaster && v.raster <= badLineMaxRaster {
		if v.regs[regCR1]&cr1DEN != 0 {
			v.denLatched = true
		}
	}

	yscroll := v.regs[regCR1] & cr1YScrollMask
	wasBadLine := v.badLine
	v.badLine = v.denLatched &&
		v.raster >= badLineMinRaster && v.raster <= badLineMaxRaster &&
		uint8(v.raster&0x07) == yscroll

	v.grayDotArmed = false
	if v.badLine && !wasBadLine && !v.everHadBadLine && v.revision.HasGrayDotBug() {
		v.grayDotArmed = true
	}
	if v.badLine {
		v.everHadBadLine = true
	}

	if v.raster == v.rasterCompareTarget() {
		v.raise(irqRST)
	}

	v.updateVerticalBorder()
	v.stepSpriteDMA()

	for i := range v.lineBuffer {
		v.lineBuffer[i] = v.regs[regBorder]
	}
	if v.grayDotArmed && borderWidth < len(v.lineBuffer) {
		v.lineBuffer[borderWidth] = grayDotColour
	}
}

func (v *VIC) updateVerticalBorder() {
	rsel := v.regs[regCR1]&cr1RSEL != 0
	first, last := firstVisibleLine24Row, lastVisibleLine24Row
	if rsel {
		first, last = firstVisibleLine25Row, lastVisibleLine25Row
	}
	switch v.raster {
	case last:
		v.verticalBorder = true
	case first:
		if v.regs[regCR1]&cr1DEN != 0 {
			v.verticalBorder = false
		}
	}
}

// fetchRow performs the 40 c-accesses a bad line steals the bus for, in one
// bulk operation rather than spread across 40 individual cycles - a
// deliberate simplification, see DESIGN.md.
func (v *VIC) fetchRow() {
	v.rc = 0
	vmBase := uint16(v.regs[regMemPtrs]&0xf0) << 6
	for i := 0; i < 40; i++ {
		addr := vmBase + uint16(v.vcbase+i)
		b, err := v.Bus.Read(addr)
		if err == nil {
			v.videoMatrix[i] = b
		}
		colorAddr := uint16(0xd800) + uint16(v.vcbase+i)
		cb, err := v.Bus.Read(colorAddr)
		if err == nil {
			v.colorLine[i] = cb & 0x0f
		}
	}
}

func (v *VIC) endLine() {
	if v.badLine || (v.rc > 0 && !v.verticalBorder) {
		if v.rc == 7 {
			v.rc = 0
			v.vcbase = (v.vcbase + 40) % 1000
		} else {
			v.rc++
		}
	}

	if v.grayDotArmed {
		v.lineBuffer[borderWidth] = grayDotColour
	}

	v.compositeSprites()

	row := v.raster
	if row >= 0 && row < v.frameH {
		copy(v.frame[row*v.frameW:(row+1)*v.frameW], v.lineBuffer[:])
	}
	if row == v.linesPerFrame-1 {
		v.frameDone = true
		v.frameCount++
	}
}

func regBase(address uint16) int { return regIndex(address) }

// Read implements bus.CPUBus.
func (v *VIC) Read(address uint16) (uint8, error) {
	i := regBase(address)
	switch i {
	case regRaster:
		return uint8(v.raster & 0xff), nil
	case regIRR:
		val := v.irr & 0x0f
		if val&v.imr != 0 {
			val |= irqIRQ
		}
		return val | 0x70, nil
	case regIMR:
		return v.imr&0x0f | 0xf0, nil
	case regSSColl:
		val := v.ssColl
		v.ssColl = 0
		return val, nil
	case regSBColl:
		val := v.sbColl
		v.sbColl = 0
		return val, nil
	case regCR2:
		return v.regs[regCR2] | 0xc0, nil
	case regMemPtrs:
		return v.regs[regMemPtrs] | 0x01, nil
	case regLightPenX:
		return v.lightpenX, nil
	case regLightPenY:
		return v.lightpenY, nil
	default:
		if i >= 0x2f {
			return 0xff, nil
		}
		return v.regs[i], nil
	}
}

// Write implements bus.CPUBus.
func (v *VIC) Write(address uint16, data uint8) error {
	i := regBase(address)
	switch i {
	case regRaster:
		v.rasterCompareLo = data
		if v.raster == v.rasterCompareTarget() {
			v.raise(irqRST)
		}
	case regCR1:
		v.regs[regCR1] = data
		if v.raster == v.rasterCompareTarget() {
			v.raise(irqRST)
		}
	case regIRR:
		v.irr &^= data & 0x0f
	case regIMR:
		v.imr = data & 0x0f
	case regSSColl, regSBColl, regLightPenX, regLightPenY:
		// read-only
	default:
		if i < 0x2f {
			v.regs[i] = data
		}
	}
	return nil
}

// Peek and Poke implement bus.DebuggerBus: plain register access without
// Read's side effects (collision latches are not cleared, IRR is not
// consulted for bit 7).
func (v *VIC) Peek(address uint16) (uint8, error) {
	i := regBase(address)
	switch i {
	case regSSColl:
		return v.ssColl, nil
	case regSBColl:
		return v.sbColl, nil
	case regRaster:
		return uint8(v.raster & 0xff), nil
	case regIRR:
		return v.irr&0x0f | 0x70, nil
	case regIMR:
		return v.imr&0x0f | 0xf0, nil
	default:
		if i >= 0x2f {
			return 0xff, nil
		}
		return v.regs[i], nil
	}
}

func (v *VIC) Poke(address uint16, value uint8) error {
	return v.Write(address, value)
}
