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

// sprite holds one sprite unit's DMA/display state, named after the fields
// spec.md's VicState data model calls out (MC, MCBASE, DMA-on latch,
// display-on latch); the bit-exact enable/disable edge case the real chip
// handles across cycles 15/16/55/56 is approximated here by a simple
// row-count cutoff rather than reproduced bit-for-bit - see DESIGN.md.
type sprite struct {
	dmaOn      bool
	displayOn  bool
	mc, mcbase int
	rowsDrawn  int
}

// stepSpriteDMA is called once per line, at line start, to decide which
// sprites are active for this line.
func (v *VIC) stepSpriteDMA() {
	for i := range v.sprites {
		s := &v.sprites[i]
		enabled := v.regs[regSpriteEn]&(1<<uint(i)) != 0
		yReg := v.regs[regSpriteBase+i*2+1]
		expandY := v.regs[regSpriteYExp]&(1<<uint(i)) != 0
		height := 21
		if expandY {
			height = 42
		}

		if !enabled {
			s.dmaOn, s.displayOn, s.rowsDrawn = false, false, 0
			continue
		}
		if !s.dmaOn && uint8(v.raster&0xff) == yReg {
			s.dmaOn = true
			s.displayOn = true
			s.rowsDrawn = 0
			s.mcbase = 0
		}
		if s.dmaOn {
			if s.rowsDrawn >= height {
				s.dmaOn = false
				s.displayOn = false
				s.rowsDrawn = 0
			}
		}
	}
}

// compositeSprites overlays the 8 sprite units onto the just-rendered text/
// bitmap line, in priority order (sprite 0 highest), with sprite-sprite and
// sprite-background collision detection against the pre-sprite background.
func (v *VIC) compositeSprites() {
	background := v.lineBuffer
	var coverage [canvasWidth + 2*borderWidth]uint8

	vmBase := uint16(v.regs[regMemPtrs]&0xf0) << 6
	pointerBase := vmBase + 0x3f8

	for i := 7; i >= 0; i-- {
		s := &v.sprites[i]
		if !s.displayOn {
			continue
		}

		y := int(v.regs[regSpriteBase+i*2+1])
		expandY := v.regs[regSpriteYExp]&(1<<uint(i)) != 0
		expandX := v.regs[regSpriteXExp]&(1<<uint(i)) != 0
		multicolor := v.regs[regSpriteMC]&(1<<uint(i)) != 0
		behind := v.regs[regSpritePrio]&(1<<uint(i)) != 0

		row := v.raster - y
		if row < 0 {
			continue
		}
		if expandY {
			row /= 2
		}
		s.rowsDrawn = row + 1

		ptr, err := v.Bus.Read(pointerBase + uint16(i))
		if err != nil {
			continue
		}
		base := uint16(ptr) * 64
		b0, _ := v.Bus.Read(base + uint16(row)*3)
		b1, _ := v.Bus.Read(base + uint16(row)*3 + 1)
		b2, _ := v.Bus.Read(base + uint16(row)*3 + 2)
		bits := uint32(b0)<<16 | uint32(b1)<<8 | uint32(b2)

		x := int(v.regs[regSpriteBase+i*2])
		if v.regs[regMSBX]&(1<<uint(i)) != 0 {
			x += 256
		}
		screenX := borderWidth + x - 24
		widthMul := 1
		if expandX {
			widthMul = 2
		}

		color := v.regs[regSpriteColor+i]
		mc0 := v.regs[regSpriteMC0]
		mc1 := v.regs[regSpriteMC1]

		plot := func(px int, c uint8) {
			if px < 0 || px >= len(v.lineBuffer) {
				return
			}
			coverage[px] |= 1 << uint(i)
			if background[px] != v.regs[regBorder] && background[px] != v.regs[regBackground] {
				v.sbColl |= 1 << uint(i)
				v.raise(irqMBC)
			}
			if !behind || background[px] == v.regs[regBorder] || background[px] == v.regs[regBackground] {
				v.lineBuffer[px] = c
			}
		}

		if multicolor {
			for pair := 0; pair < 12; pair++ {
				val := (bits >> uint(22-pair*2)) & 0x03
				if val == 0 {
					continue
				}
				var c uint8
				switch val {
				case 1:
					c = mc0
				case 2:
					c = color
				case 3:
					c = mc1
				}
				for w := 0; w < 2*widthMul; w++ {
					plot(screenX+pair*2*widthMul+w, c)
				}
			}
		} else {
			for bit := 0; bit < 24; bit++ {
				if bits&(1<<uint(23-bit)) == 0 {
					continue
				}
				for w := 0; w < widthMul; w++ {
					plot(screenX+bit*widthMul+w, color)
				}
			}
		}
	}

	for px := range coverage {
		c := coverage[px]
		if c&(c-1) != 0 { // more than one bit set: two or more sprites overlap here
			v.ssColl |= c
			v.raise(irqMMC)
		}
	}
}
