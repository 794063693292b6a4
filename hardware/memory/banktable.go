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

package memory

// bankSource names where a byte of the banked address space currently comes
// from. RAM always backs the address whether or not it is currently
// readable/writable through this source - writes to a RAM-shadowed ROM
// region still land in RAM, they are simply not visible until the bank
// configuration changes back.
type bankSource int

const (
	srcRAM bankSource = iota
	srcBasicROM
	srcKernalROM
	srcCharROM
	srcIO
	srcCartROML
	srcCartROMH
	srcOpenBus
)

// bankConfig is the effective source of each of the four bank-switched
// regions for one of the 32 possible (LORAM, HIRAM, CHAREN, GAME, EXROM)
// configurations. $0002-$7FFF and $C000-$CFFF are never banked - always RAM
// - and so aren't part of this table.
type bankConfig struct {
	roml   bankSource // $8000-$9fff
	basic  bankSource // $a000-$bfff
	io     bankSource // $d000-$dfff (srcIO, srcCharROM or srcRAM)
	kernal bankSource // $e000-$ffff
}

// bankTable is indexed by the 5-bit configuration vector:
// bit0=LORAM bit1=HIRAM bit2=CHAREN bit3=GAME bit4=EXROM (inverted: 0 means
// the corresponding cartridge line is asserted low, as on real hardware).
// Built once at package init from the documented C64 bank-switching logic,
// rather than typed out as 32 hand-written literal rows - as fragile doing
// that by hand as the 256-entry opcode table would have been trivially
// easy to get subtly wrong.
var bankTable [32]bankConfig

func init() {
	for i := range bankTable {
		loram := i&0x01 != 0
		hiram := i&0x02 != 0
		charen := i&0x04 != 0
		game := i&0x08 != 0
		exrom := i&0x10 != 0
		bankTable[i] = deriveBankConfig(loram, hiram, charen, game, exrom)
	}
}

func deriveBankConfig(loram, hiram, charen, game, exrom bool) bankConfig {
	var cfg bankConfig

	switch {
	case !game && !exrom:
		// 16K cartridge: ROML and ROMH both present, replacing BASIC.
		cfg.roml = srcCartROML
		cfg.basic = srcCartROMH
	case game && !exrom:
		// 8K cartridge: ROML only, $A000-$BFFF behaves as if no cartridge
		// were present.
		cfg.roml = srcCartROML
		cfg.basic = bankBasic(loram, hiram)
	case !game && exrom:
		// Ultimax mode: ROML at $8000, cartridge ROMH takes over the
		// KERNAL window, the BASIC window is unmapped (low RAM stays RAM).
		cfg.roml = srcCartROML
		cfg.basic = srcOpenBus
	default:
		// No cartridge.
		cfg.roml = srcRAM
		cfg.basic = bankBasic(loram, hiram)
	}

	if !game && exrom {
		cfg.kernal = srcCartROMH
	} else {
		cfg.kernal = bankKernal(hiram)
	}

	cfg.io = bankIO(hiram, loram, charen, game, exrom)

	return cfg
}

func bankBasic(loram, hiram bool) bankSource {
	if loram && hiram {
		return srcBasicROM
	}
	return srcRAM
}

func bankKernal(hiram bool) bankSource {
	if hiram {
		return srcKernalROM
	}
	return srcRAM
}

func bankIO(hiram, loram, charen bool, game, exrom bool) bankSource {
	if !game && exrom {
		// ultimax: I/O is always visible regardless of CHAREN
		return srcIO
	}
	if !hiram && !loram {
		return srcRAM
	}
	if charen {
		return srcIO
	}
	return srcCharROM
}
