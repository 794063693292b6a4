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

// Package memory implements the C64's bank-switched address space: it
// routes every CPU read/write by the current bank configuration, as decoded
// from the 6510 I/O port and (if present) the cartridge's GAME/EXROM lines.
// See hardware/memory/bus for the access-pattern interfaces different parts
// of the emulation use to reach it.
package memory

import (
	"github.com/vc64/core/errors"
	"github.com/vc64/core/hardware/cpu"
	"github.com/vc64/core/hardware/memory/bus"
)

// Cartridge is the minimal surface the memory map needs from whatever is
// plugged into the expansion port. A real cartridge family (there are 16+)
// additionally decides what ReadROML/ReadROMH/ReadIO return based on its own
// internal bank register, but that banking logic lives entirely inside the
// Cartridge implementation - the memory map only needs to know where the
// cartridge currently wants to be visible.
type Cartridge interface {
	GAME() bool
	EXROM() bool
	ReadROML(address uint16) (uint8, bool)
	ReadROMH(address uint16) (uint8, bool)
	ReadIO(address uint16) (uint8, bool)
	WriteIO(address uint16, value uint8) bool
}

// MemoryMap is the C64's full 64 KiB address space.
type MemoryMap struct {
	ram       [0x10000]uint8
	basicROM  [0x2000]uint8
	kernalROM [0x2000]uint8
	charROM   [0x1000]uint8
	colorRAM  [0x0400]uint8

	ioPort    *cpu.IOPort
	cartridge Cartridge

	VIC  bus.CPUBus
	SID  bus.CPUBus
	CIA1 bus.CPUBus
	CIA2 bus.CPUBus

	// lastBusValue models open-bus behaviour: reading an unmapped I/O
	// register returns whatever was last driven onto the bus.
	lastBusValue uint8

	// LastAccessAddress/LastAccessWrite/LastAccessValue record the most
	// recent Read/Write call, for the debug package's Watches to check
	// against.
	LastAccessAddress uint16
	LastAccessWrite   bool
	LastAccessValue   uint8
}

// NewMemoryMap is the preferred method of initialisation. port is the CPU's
// own $0000/$0001 I/O port; the memory map consults its bank bits and
// routes CPU reads and writes of $0000/$0001 to it.
func NewMemoryMap(port *cpu.IOPort) *MemoryMap {
	return &MemoryMap{ioPort: port}
}

// BindIOPort rewires which CPU I/O port the memory map consults for bank
// switching. It exists to break the circular dependency between
// cpu.NewCPU, which needs a bus.CPUBus to talk to, and that CPU's own
// IOPort field, which is what a correctly-wired memory map must consult:
// callers construct the memory map with a nil port, build the CPU against
// it, then bind the CPU's real IOPort in before running anything.
func (mm *MemoryMap) BindIOPort(port *cpu.IOPort) { mm.ioPort = port }

// Plumb attaches (or detaches, with nil) the chips and cartridge that live
// behind the I/O window and the expansion port.
func (mm *MemoryMap) Plumb(vic, sid, cia1, cia2 bus.CPUBus, cart Cartridge) {
	mm.VIC = vic
	mm.SID = sid
	mm.CIA1 = cia1
	mm.CIA2 = cia2
	mm.cartridge = cart
}

// LoadBasicROM, LoadKernalROM and LoadCharROM install the contents of the
// three fixed ROM images. They accept any length up to the ROM's size;
// sizing/checksumming the supplied image is left to whoever loads it.
func (mm *MemoryMap) LoadBasicROM(data []byte)  { copy(mm.basicROM[:], data) }
func (mm *MemoryMap) LoadKernalROM(data []byte) { copy(mm.kernalROM[:], data) }
func (mm *MemoryMap) LoadCharROM(data []byte)   { copy(mm.charROM[:], data) }

// currentConfig resolves the live 5-bit bank vector (LORAM/HIRAM/CHAREN from
// the CPU's I/O port, GAME/EXROM from the cartridge if one is attached) to
// its bankConfig.
func (mm *MemoryMap) currentConfig() bankConfig {
	idx := mm.ioPort.BankBits() & 0x07

	game, exrom := true, true
	if mm.cartridge != nil {
		game, exrom = mm.cartridge.GAME(), mm.cartridge.EXROM()
	}
	if game {
		idx |= 0x08
	}
	if exrom {
		idx |= 0x10
	}
	return bankTable[idx]
}

// Read implements bus.CPUBus.
func (mm *MemoryMap) Read(address uint16) (uint8, error) {
	v, err := mm.read(address)
	mm.LastAccessAddress = address
	mm.LastAccessWrite = false
	mm.LastAccessValue = v
	return v, err
}

func (mm *MemoryMap) read(address uint16) (uint8, error) {
	switch {
	case address <= 0x0001:
		if address == 0x0000 {
			return mm.ioPort.ReadDDR(), nil
		}
		return mm.ioPort.ReadData(), nil

	case address < 0x8000:
		return mm.ram[address], nil

	case address < 0xa000:
		if mm.currentConfig().roml == srcCartROML && mm.cartridge != nil {
			if v, ok := mm.cartridge.ReadROML(address); ok {
				return v, nil
			}
		}
		return mm.ram[address], nil

	case address < 0xc000:
		switch mm.currentConfig().basic {
		case srcBasicROM:
			return mm.basicROM[address-0xa000], nil
		case srcCartROMH:
			if mm.cartridge != nil {
				if v, ok := mm.cartridge.ReadROMH(address); ok {
					return v, nil
				}
			}
			return mm.lastBusValue, nil
		case srcOpenBus:
			return mm.lastBusValue, nil
		default:
			return mm.ram[address], nil
		}

	case address < 0xd000:
		return mm.ram[address], nil

	case address < 0xe000:
		switch mm.currentConfig().io {
		case srcCharROM:
			return mm.charROM[address-0xd000], nil
		case srcIO:
			return mm.readIO(address)
		default:
			return mm.ram[address], nil
		}

	default:
		switch mm.currentConfig().kernal {
		case srcKernalROM:
			return mm.kernalROM[address-0xe000], nil
		case srcCartROMH:
			if mm.cartridge != nil {
				if v, ok := mm.cartridge.ReadROMH(address); ok {
					return v, nil
				}
			}
			return mm.lastBusValue, nil
		default:
			return mm.ram[address], nil
		}
	}
}

// Write implements bus.CPUBus. The underlying RAM is always written,
// regardless of what is currently banked in for reading - a write while a
// ROM (or the I/O window) is mapped over it becomes visible as soon as the
// bank configuration switches back to RAM, exactly as on real hardware
// where the write-enable line is independent of the PLA's output-enable
// decode.
func (mm *MemoryMap) Write(address uint16, data uint8) error {
	mm.LastAccessAddress = address
	mm.LastAccessWrite = true
	mm.LastAccessValue = data

	if address <= 0x0001 {
		if address == 0x0000 {
			mm.ioPort.WriteDDR(data)
		} else {
			mm.ioPort.WriteData(data)
		}
		return nil
	}

	mm.ram[address] = data

	if address >= 0xd000 && address < 0xe000 && mm.currentConfig().io == srcIO {
		return mm.writeIO(address, data)
	}
	return nil
}

// readIO decodes the $D000-$DFFF I/O window per SPEC_FULL.md §4.4.
func (mm *MemoryMap) readIO(address uint16) (uint8, error) {
	offset := address - 0xd000
	switch {
	case offset < 0x0400:
		if mm.VIC == nil {
			return mm.lastBusValue, nil
		}
		v, err := mm.VIC.Read(0xd000 + offset%0x40)
		if err == nil {
			mm.lastBusValue = v
		}
		return v, err

	case offset < 0x0800:
		if mm.SID == nil {
			return mm.lastBusValue, nil
		}
		v, err := mm.SID.Read(0xd400 + offset%0x20)
		if err == nil {
			mm.lastBusValue = v
		}
		return v, err

	case offset < 0x0c00:
		// color RAM only implements 4 bits; the upper nibble floats and
		// typically reads back mixed with whatever was last on the bus.
		return mm.colorRAM[offset-0x0800]&0x0f | (mm.lastBusValue & 0xf0), nil

	case offset < 0x0d00:
		if mm.CIA1 == nil {
			return mm.lastBusValue, nil
		}
		v, err := mm.CIA1.Read(0xdc00 + (offset-0x0c00)%0x100)
		if err == nil {
			mm.lastBusValue = v
		}
		return v, err

	case offset < 0x0e00:
		if mm.CIA2 == nil {
			return mm.lastBusValue, nil
		}
		v, err := mm.CIA2.Read(0xdd00 + (offset-0x0d00)%0x100)
		if err == nil {
			mm.lastBusValue = v
		}
		return v, err

	default:
		if mm.cartridge != nil {
			if v, ok := mm.cartridge.ReadIO(address); ok {
				mm.lastBusValue = v
				return v, nil
			}
		}
		return mm.lastBusValue, nil
	}
}

func (mm *MemoryMap) writeIO(address uint16, data uint8) error {
	mm.lastBusValue = data
	offset := address - 0xd000
	switch {
	case offset < 0x0400:
		if mm.VIC != nil {
			return mm.VIC.Write(0xd000+offset%0x40, data)
		}
	case offset < 0x0800:
		if mm.SID != nil {
			return mm.SID.Write(0xd400+offset%0x20, data)
		}
	case offset < 0x0c00:
		mm.colorRAM[offset-0x0800] = data & 0x0f
	case offset < 0x0d00:
		if mm.CIA1 != nil {
			return mm.CIA1.Write(0xdc00+(offset-0x0c00)%0x100, data)
		}
	case offset < 0x0e00:
		if mm.CIA2 != nil {
			return mm.CIA2.Write(0xdd00+(offset-0x0d00)%0x100, data)
		}
	default:
		if mm.cartridge != nil {
			mm.cartridge.WriteIO(address, data)
		}
	}
	return nil
}

// ReadGraphicsByte services the VIC-II's own address bus: address is
// bank-relative (0x0000-0x3fff) within bank, one of the four 16 KiB windows
// CIA2 PA0-1 selects. It bypasses the CPU's LORAM/HIRAM/CHAREN bank
// switching entirely - the VIC-II has its own, simpler address decode that
// only ever substitutes character ROM for RAM at $1000-$1FFF/$9000-$9FFF,
// regardless of what the CPU currently sees at those addresses.
func (mm *MemoryMap) ReadGraphicsByte(bank uint8, address uint16) uint8 {
	rel := address & 0x3fff
	if (bank == 0 || bank == 2) && rel >= 0x1000 && rel < 0x2000 {
		return mm.charROM[rel-0x1000]
	}
	abs := uint32(bank&0x03)<<14 | uint32(rel)
	return mm.ram[abs]
}

// Peek and Poke implement bus.DebuggerBus: inspection without the side
// effects of a normal CPU access (no open-bus latch update, no chip
// register side effects beyond what a raw byte read/write would do).
func (mm *MemoryMap) Peek(address uint16) (uint8, error) {
	if address >= 0xd800 && address < 0xdc00 {
		return mm.colorRAM[address-0xd800] & 0x0f, nil
	}
	return mm.ram[address], nil
}

func (mm *MemoryMap) Poke(address uint16, value uint8) error {
	if address > 0xffff {
		return errors.Newf(errors.UnpokeableAddress, errors.UnpokeableAddressMsg, address)
	}
	mm.ram[address] = value
	return nil
}
