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

package vic

// displayMode is one of the VIC-II's seven ECM/BMM/MCM combinations, two of
// which ("invalid" text and bitmap) produce solid black rather than
// meaningful graphics on real hardware.
type displayMode int

const (
	modeStandardText displayMode = iota
	modeMulticolorText
	modeStandardBitmap
	modeMulticolorBitmap
	modeExtendedBackground
	modeInvalidText
	modeInvalidBitmap
)

func (v *VIC) mode() displayMode {
	ecm := v.regs[regCR1]&cr1ECM != 0
	bmm := v.regs[regCR1]&cr1BMM != 0
	mcm := v.regs[regCR2]&cr2MCM != 0

	switch {
	case !ecm && !bmm && !mcm:
		return modeStandardText
	case !ecm && !bmm && mcm:
		return modeMulticolorText
	case !ecm && bmm && !mcm:
		return modeStandardBitmap
	case !ecm && bmm && mcm:
		return modeMulticolorBitmap
	case ecm && !bmm && !mcm:
		return modeExtendedBackground
	case ecm && !bmm && mcm:
		return modeInvalidText
	default:
		return modeInvalidBitmap
	}
}

// renderColumn draws the 8 (or, in multicolor, still 8, at half horizontal
// resolution) pixels of text/bitmap column col (0-39) into the line buffer.
// Sprites are composited separately, in compositeSprites.
func (v *VIC) renderColumn(col int) {
	if col < 0 || col >= 40 {
		return
	}
	xBase := borderWidth + col*8

	csel := v.regs[regCR2]&cr2CSEL != 0
	if v.verticalBorder || (!csel && (col == 0 || col == 39)) {
		border := v.regs[regBorder]
		for i := 0; i < 8; i++ {
			v.lineBuffer[xBase+i] = border
		}
		return
	}

	mode := v.mode()
	charCode := v.videoMatrix[col]
	colorNibble := v.colorLine[col] & 0x0f

	var gData uint8
	switch mode {
	case modeStandardBitmap, modeMulticolorBitmap, modeInvalidBitmap:
		bitmapBase := uint16(v.regs[regMemPtrs]&0x08) << 10
		addr := bitmapBase + uint16((v.vcbase+col)*8+v.rc)
		gData, _ = v.Bus.Read(addr)
	case modeExtendedBackground:
		charBase := uint16(v.regs[regMemPtrs]&0x0e) << 10
		addr := charBase + uint16(charCode&0x3f)*8 + uint16(v.rc)
		gData, _ = v.Bus.Read(addr)
	default:
		charBase := uint16(v.regs[regMemPtrs]&0x0e) << 10
		addr := charBase + uint16(charCode)*8 + uint16(v.rc)
		gData, _ = v.Bus.Read(addr)
	}

	pixels := v.decode(mode, gData, charCode, colorNibble)
	for i := 0; i < 8; i++ {
		v.lineBuffer[xBase+i] = pixels[i]
	}
}

func (v *VIC) decode(mode displayMode, gData, charCode, colorNibble uint8) [8]uint8 {
	var out [8]uint8

	bg0 := v.regs[regBackground]

	switch mode {
	case modeInvalidText, modeInvalidBitmap:
		return out // all zero (black)

	case modeStandardText:
		for i := 0; i < 8; i++ {
			if gData&(0x80>>uint(i)) != 0 {
				out[i] = colorNibble
			} else {
				out[i] = bg0
			}
		}

	case modeExtendedBackground:
		bg := v.regs[regBackground+(charCode>>6)]
		for i := 0; i < 8; i++ {
			if gData&(0x80>>uint(i)) != 0 {
				out[i] = colorNibble
			} else {
				out[i] = bg
			}
		}

	case modeMulticolorText:
		if colorNibble&0x08 == 0 {
			for i := 0; i < 8; i++ {
				if gData&(0x80>>uint(i)) != 0 {
					out[i] = colorNibble & 0x07
				} else {
					out[i] = bg0
				}
			}
			break
		}
		bg1 := v.regs[regBackground+1]
		bg2 := v.regs[regBackground+2]
		fg := colorNibble & 0x07
		for pair := 0; pair < 4; pair++ {
			val := (gData >> uint(6-pair*2)) & 0x03
			var c uint8
			switch val {
			case 0:
				c = bg0
			case 1:
				c = bg1
			case 2:
				c = bg2
			case 3:
				c = fg
			}
			out[pair*2] = c
			out[pair*2+1] = c
		}

	case modeStandardBitmap:
		hi := charCode >> 4
		lo := charCode & 0x0f
		for i := 0; i < 8; i++ {
			if gData&(0x80>>uint(i)) != 0 {
				out[i] = hi
			} else {
				out[i] = lo
			}
		}

	case modeMulticolorBitmap:
		hi := charCode >> 4
		lo := charCode & 0x0f
		for pair := 0; pair < 4; pair++ {
			val := (gData >> uint(6-pair*2)) & 0x03
			var c uint8
			switch val {
			case 0:
				c = bg0
			case 1:
				c = hi
			case 2:
				c = lo
			case 3:
				c = colorNibble
			}
			out[pair*2] = c
			out[pair*2+1] = c
		}
	}

	return out
}
