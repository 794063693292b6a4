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

package drive

import "github.com/vc64/core/hardware/memory/bus"

// memoryMap is the 1541's own 16-bit address space, a much simpler relative
// of hardware/memory.MemoryMap: 2 KiB of RAM mirrored three times up to
// $17ff, the two VIAs each mirrored across a 1 KiB window ($1800-$1bff and
// $1c00-$1fff), and 16 KiB of ROM occupying the top quarter of the map
// ($c000-$ffff). There is no bank switching - the
// 1541 has no equivalent of the 6510's CHAREN/HIRAM/LORAM port.
type memoryMap struct {
	ram [0x0800]uint8
	rom [0x4000]uint8

	via1 bus.CPUBus
	via2 bus.CPUBus

	lastBusValue uint8
}

func newMemoryMap(via1, via2 bus.CPUBus) *memoryMap {
	return &memoryMap{via1: via1, via2: via2}
}

// LoadROM installs the drive's firmware image (normally 16 KiB, the 1541's
// combined DOS and controller ROM).
func (m *memoryMap) LoadROM(data []byte) {
	copy(m.rom[:], data)
}

// Read implements bus.CPUBus.
func (m *memoryMap) Read(address uint16) (uint8, error) {
	switch {
	case address < 0x1800:
		return m.ram[address&0x07ff], nil
	case address < 0x1c00:
		v, err := m.via1.Read(address)
		m.lastBusValue = v
		return v, err
	case address < 0x2000:
		v, err := m.via2.Read(address)
		m.lastBusValue = v
		return v, err
	case address >= 0xc000:
		return m.rom[address-0xc000], nil
	default:
		return m.lastBusValue, nil
	}
}

// Write implements bus.CPUBus.
func (m *memoryMap) Write(address uint16, data uint8) error {
	m.lastBusValue = data
	switch {
	case address < 0x1800:
		m.ram[address&0x07ff] = data
		return nil
	case address < 0x1c00:
		return m.via1.Write(address, data)
	case address < 0x2000:
		return m.via2.Write(address, data)
	default:
		return nil // ROM, and the unmapped $2000-$bfff window, are read-only
	}
}

// Peek and Poke implement bus.DebuggerBus.
func (m *memoryMap) Peek(address uint16) (uint8, error) {
	switch {
	case address < 0x1800:
		return m.ram[address&0x07ff], nil
	case address < 0x1c00:
		return peekOrRead(m.via1, address)
	case address < 0x2000:
		return peekOrRead(m.via2, address)
	case address >= 0xc000:
		return m.rom[address-0xc000], nil
	default:
		return m.lastBusValue, nil
	}
}

func (m *memoryMap) Poke(address uint16, value uint8) error {
	return m.Write(address, value)
}

func peekOrRead(b bus.CPUBus, address uint16) (uint8, error) {
	if p, ok := b.(bus.DebuggerBus); ok {
		return p.Peek(address)
	}
	return b.Read(address)
}
