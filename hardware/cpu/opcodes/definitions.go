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

// Package opcodes holds the static 6510 instruction table: one Definition
// per one of the 256 possible opcode bytes, including the documented and
// undocumented ("illegal") instructions. The table is built once, at
// package init, and validated so that no opcode is defined twice or left
// undefined.
package opcodes

import "fmt"

// Definition describes one of the 256 opcodes of the 6510.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         Category
}

func (d Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s effect=%s]",
		d.OpCode, d.Operator, d.Bytes, d.Cycles, d.AddressingMode, d.Effect)
}

// IsBranch returns true if the instruction is a relative-addressed branch.
func (d Definition) IsBranch() bool {
	return d.AddressingMode == Relative && d.Effect == Flow
}

func bytesFor(mode AddressingMode) int {
	switch mode {
	case Implied, Accumulator:
		return 1
	case Absolute, Indirect, AbsoluteIndexedX, AbsoluteIndexedY:
		return 3
	default:
		return 2
	}
}

type builder struct {
	table [256]*Definition
}

func (b *builder) add(opcode uint8, op Operator, mode AddressingMode, cycles int, pageSensitive bool, effect Category) {
	if b.table[opcode] != nil {
		panic(fmt.Sprintf("opcode %#02x defined twice", opcode))
	}
	b.table[opcode] = &Definition{
		OpCode:         opcode,
		Operator:       op,
		Bytes:          bytesFor(mode),
		Cycles:         cycles,
		AddressingMode: mode,
		PageSensitive:  pageSensitive,
		Effect:         effect,
	}
}

// Table is the full 256-entry opcode table, indexed by opcode byte. Entries
// are never nil: every possible byte decodes to *some* Definition (JAM for
// the handful of genuinely unused encodings, shared with known unofficial
// NOP/illegal behaviour for the rest).
var Table [256]*Definition

func init() {
	b := &builder{}

	jam := func(opcode uint8) { b.add(opcode, JAM, Implied, 1, false, Interrupt) }

	// --- row 0x0_ ---
	b.add(0x00, BRK, Implied, 7, false, Interrupt)
	b.add(0x01, ORA, IndexedIndirect, 6, false, Read)
	jam(0x02)
	b.add(0x03, SLO, IndexedIndirect, 8, false, RMW)
	b.add(0x04, NOP, ZeroPage, 3, false, Read)
	b.add(0x05, ORA, ZeroPage, 3, false, Read)
	b.add(0x06, ASL, ZeroPage, 5, false, RMW)
	b.add(0x07, SLO, ZeroPage, 5, false, RMW)
	b.add(0x08, PHP, Implied, 3, false, Write)
	b.add(0x09, ORA, Immediate, 2, false, Read)
	b.add(0x0A, ASL, Accumulator, 2, false, RMW)
	b.add(0x0B, ANC, Immediate, 2, false, Read)
	b.add(0x0C, NOP, Absolute, 4, false, Read)
	b.add(0x0D, ORA, Absolute, 4, false, Read)
	b.add(0x0E, ASL, Absolute, 6, false, RMW)
	b.add(0x0F, SLO, Absolute, 6, false, RMW)

	// --- row 0x1_ ---
	b.add(0x10, BPL, Relative, 2, true, Flow)
	b.add(0x11, ORA, IndirectIndexed, 5, true, Read)
	jam(0x12)
	b.add(0x13, SLO, IndirectIndexed, 8, false, RMW)
	b.add(0x14, NOP, ZeroPageIndexedX, 4, false, Read)
	b.add(0x15, ORA, ZeroPageIndexedX, 4, false, Read)
	b.add(0x16, ASL, ZeroPageIndexedX, 6, false, RMW)
	b.add(0x17, SLO, ZeroPageIndexedX, 6, false, RMW)
	b.add(0x18, CLC, Implied, 2, false, Read)
	b.add(0x19, ORA, AbsoluteIndexedY, 4, true, Read)
	b.add(0x1A, NOP, Implied, 2, false, Read)
	b.add(0x1B, SLO, AbsoluteIndexedY, 7, false, RMW)
	b.add(0x1C, NOP, AbsoluteIndexedX, 4, true, Read)
	b.add(0x1D, ORA, AbsoluteIndexedX, 4, true, Read)
	b.add(0x1E, ASL, AbsoluteIndexedX, 7, false, RMW)
	b.add(0x1F, SLO, AbsoluteIndexedX, 7, false, RMW)

	// --- row 0x2_ ---
	b.add(0x20, JSR, Absolute, 6, false, Subroutine)
	b.add(0x21, AND, IndexedIndirect, 6, false, Read)
	jam(0x22)
	b.add(0x23, RLA, IndexedIndirect, 8, false, RMW)
	b.add(0x24, BIT, ZeroPage, 3, false, Read)
	b.add(0x25, AND, ZeroPage, 3, false, Read)
	b.add(0x26, ROL, ZeroPage, 5, false, RMW)
	b.add(0x27, RLA, ZeroPage, 5, false, RMW)
	b.add(0x28, PLP, Implied, 4, false, Read)
	b.add(0x29, AND, Immediate, 2, false, Read)
	b.add(0x2A, ROL, Accumulator, 2, false, RMW)
	b.add(0x2B, ANC, Immediate, 2, false, Read)
	b.add(0x2C, BIT, Absolute, 4, false, Read)
	b.add(0x2D, AND, Absolute, 4, false, Read)
	b.add(0x2E, ROL, Absolute, 6, false, RMW)
	b.add(0x2F, RLA, Absolute, 6, false, RMW)

	// --- row 0x3_ ---
	b.add(0x30, BMI, Relative, 2, true, Flow)
	b.add(0x31, AND, IndirectIndexed, 5, true, Read)
	jam(0x32)
	b.add(0x33, RLA, IndirectIndexed, 8, false, RMW)
	b.add(0x34, NOP, ZeroPageIndexedX, 4, false, Read)
	b.add(0x35, AND, ZeroPageIndexedX, 4, false, Read)
	b.add(0x36, ROL, ZeroPageIndexedX, 6, false, RMW)
	b.add(0x37, RLA, ZeroPageIndexedX, 6, false, RMW)
	b.add(0x38, SEC, Implied, 2, false, Read)
	b.add(0x39, AND, AbsoluteIndexedY, 4, true, Read)
	b.add(0x3A, NOP, Implied, 2, false, Read)
	b.add(0x3B, RLA, AbsoluteIndexedY, 7, false, RMW)
	b.add(0x3C, NOP, AbsoluteIndexedX, 4, true, Read)
	b.add(0x3D, AND, AbsoluteIndexedX, 4, true, Read)
	b.add(0x3E, ROL, AbsoluteIndexedX, 7, false, RMW)
	b.add(0x3F, RLA, AbsoluteIndexedX, 7, false, RMW)

	// --- row 0x4_ ---
	b.add(0x40, RTI, Implied, 6, false, Flow)
	b.add(0x41, EOR, IndexedIndirect, 6, false, Read)
	jam(0x42)
	b.add(0x43, SRE, IndexedIndirect, 8, false, RMW)
	b.add(0x44, NOP, ZeroPage, 3, false, Read)
	b.add(0x45, EOR, ZeroPage, 3, false, Read)
	b.add(0x46, LSR, ZeroPage, 5, false, RMW)
	b.add(0x47, SRE, ZeroPage, 5, false, RMW)
	b.add(0x48, PHA, Implied, 3, false, Write)
	b.add(0x49, EOR, Immediate, 2, false, Read)
	b.add(0x4A, LSR, Accumulator, 2, false, RMW)
	b.add(0x4B, ALR, Immediate, 2, false, Read)
	b.add(0x4C, JMP, Absolute, 3, false, Flow)
	b.add(0x4D, EOR, Absolute, 4, false, Read)
	b.add(0x4E, LSR, Absolute, 6, false, RMW)
	b.add(0x4F, SRE, Absolute, 6, false, RMW)

	// --- row 0x5_ ---
	b.add(0x50, BVC, Relative, 2, true, Flow)
	b.add(0x51, EOR, IndirectIndexed, 5, true, Read)
	jam(0x52)
	b.add(0x53, SRE, IndirectIndexed, 8, false, RMW)
	b.add(0x54, NOP, ZeroPageIndexedX, 4, false, Read)
	b.add(0x55, EOR, ZeroPageIndexedX, 4, false, Read)
	b.add(0x56, LSR, ZeroPageIndexedX, 6, false, RMW)
	b.add(0x57, SRE, ZeroPageIndexedX, 6, false, RMW)
	b.add(0x58, CLI, Implied, 2, false, Read)
	b.add(0x59, EOR, AbsoluteIndexedY, 4, true, Read)
	b.add(0x5A, NOP, Implied, 2, false, Read)
	b.add(0x5B, SRE, AbsoluteIndexedY, 7, false, RMW)
	b.add(0x5C, NOP, AbsoluteIndexedX, 4, true, Read)
	b.add(0x5D, EOR, AbsoluteIndexedX, 4, true, Read)
	b.add(0x5E, LSR, AbsoluteIndexedX, 7, false, RMW)
	b.add(0x5F, SRE, AbsoluteIndexedX, 7, false, RMW)

	// --- row 0x6_ ---
	b.add(0x60, RTS, Implied, 6, false, Flow)
	b.add(0x61, ADC, IndexedIndirect, 6, false, Read)
	jam(0x62)
	b.add(0x63, RRA, IndexedIndirect, 8, false, RMW)
	b.add(0x64, NOP, ZeroPage, 3, false, Read)
	b.add(0x65, ADC, ZeroPage, 3, false, Read)
	b.add(0x66, ROR, ZeroPage, 5, false, RMW)
	b.add(0x67, RRA, ZeroPage, 5, false, RMW)
	b.add(0x68, PLA, Implied, 4, false, Read)
	b.add(0x69, ADC, Immediate, 2, false, Read)
	b.add(0x6A, ROR, Accumulator, 2, false, RMW)
	b.add(0x6B, ARR, Immediate, 2, false, Read)
	b.add(0x6C, JMP, Indirect, 5, false, Flow)
	b.add(0x6D, ADC, Absolute, 4, false, Read)
	b.add(0x6E, ROR, Absolute, 6, false, RMW)
	b.add(0x6F, RRA, Absolute, 6, false, RMW)

	// --- row 0x7_ ---
	b.add(0x70, BVS, Relative, 2, true, Flow)
	b.add(0x71, ADC, IndirectIndexed, 5, true, Read)
	jam(0x72)
	b.add(0x73, RRA, IndirectIndexed, 8, false, RMW)
	b.add(0x74, NOP, ZeroPageIndexedX, 4, false, Read)
	b.add(0x75, ADC, ZeroPageIndexedX, 4, false, Read)
	b.add(0x76, ROR, ZeroPageIndexedX, 6, false, RMW)
	b.add(0x77, RRA, ZeroPageIndexedX, 6, false, RMW)
	b.add(0x78, SEI, Implied, 2, false, Read)
	b.add(0x79, ADC, AbsoluteIndexedY, 4, true, Read)
	b.add(0x7A, NOP, Implied, 2, false, Read)
	b.add(0x7B, RRA, AbsoluteIndexedY, 7, false, RMW)
	b.add(0x7C, NOP, AbsoluteIndexedX, 4, true, Read)
	b.add(0x7D, ADC, AbsoluteIndexedX, 4, true, Read)
	b.add(0x7E, ROR, AbsoluteIndexedX, 7, false, RMW)
	b.add(0x7F, RRA, AbsoluteIndexedX, 7, false, RMW)

	// --- row 0x8_ ---
	b.add(0x80, NOP, Immediate, 2, false, Read)
	b.add(0x81, STA, IndexedIndirect, 6, false, Write)
	b.add(0x82, NOP, Immediate, 2, false, Read)
	b.add(0x83, SAX, IndexedIndirect, 6, false, Write)
	b.add(0x84, STY, ZeroPage, 3, false, Write)
	b.add(0x85, STA, ZeroPage, 3, false, Write)
	b.add(0x86, STX, ZeroPage, 3, false, Write)
	b.add(0x87, SAX, ZeroPage, 3, false, Write)
	b.add(0x88, DEY, Implied, 2, false, Read)
	b.add(0x89, NOP, Immediate, 2, false, Read)
	b.add(0x8A, TXA, Implied, 2, false, Read)
	b.add(0x8B, ANE, Immediate, 2, false, Read)
	b.add(0x8C, STY, Absolute, 4, false, Write)
	b.add(0x8D, STA, Absolute, 4, false, Write)
	b.add(0x8E, STX, Absolute, 4, false, Write)
	b.add(0x8F, SAX, Absolute, 4, false, Write)

	// --- row 0x9_ ---
	b.add(0x90, BCC, Relative, 2, true, Flow)
	b.add(0x91, STA, IndirectIndexed, 6, false, Write)
	jam(0x92)
	b.add(0x93, SHA, IndirectIndexed, 6, false, Write)
	b.add(0x94, STY, ZeroPageIndexedX, 4, false, Write)
	b.add(0x95, STA, ZeroPageIndexedX, 4, false, Write)
	b.add(0x96, STX, ZeroPageIndexedY, 4, false, Write)
	b.add(0x97, SAX, ZeroPageIndexedY, 4, false, Write)
	b.add(0x98, TYA, Implied, 2, false, Read)
	b.add(0x99, STA, AbsoluteIndexedY, 5, false, Write)
	b.add(0x9A, TXS, Implied, 2, false, Read)
	b.add(0x9B, TAS, AbsoluteIndexedY, 5, false, Write)
	b.add(0x9C, SHY, AbsoluteIndexedX, 5, false, Write)
	b.add(0x9D, STA, AbsoluteIndexedX, 5, false, Write)
	b.add(0x9E, SHX, AbsoluteIndexedY, 5, false, Write)
	b.add(0x9F, SHA, AbsoluteIndexedY, 5, false, Write)

	// --- row 0xA_ ---
	b.add(0xA0, LDY, Immediate, 2, false, Read)
	b.add(0xA1, LDA, IndexedIndirect, 6, false, Read)
	b.add(0xA2, LDX, Immediate, 2, false, Read)
	b.add(0xA3, LAX, IndexedIndirect, 6, false, Read)
	b.add(0xA4, LDY, ZeroPage, 3, false, Read)
	b.add(0xA5, LDA, ZeroPage, 3, false, Read)
	b.add(0xA6, LDX, ZeroPage, 3, false, Read)
	b.add(0xA7, LAX, ZeroPage, 3, false, Read)
	b.add(0xA8, TAY, Implied, 2, false, Read)
	b.add(0xA9, LDA, Immediate, 2, false, Read)
	b.add(0xAA, TAX, Implied, 2, false, Read)
	b.add(0xAB, LXA, Immediate, 2, false, Read)
	b.add(0xAC, LDY, Absolute, 4, false, Read)
	b.add(0xAD, LDA, Absolute, 4, false, Read)
	b.add(0xAE, LDX, Absolute, 4, false, Read)
	b.add(0xAF, LAX, Absolute, 4, false, Read)

	// --- row 0xB_ ---
	b.add(0xB0, BCS, Relative, 2, true, Flow)
	b.add(0xB1, LDA, IndirectIndexed, 5, true, Read)
	jam(0xB2)
	b.add(0xB3, LAX, IndirectIndexed, 5, true, Read)
	b.add(0xB4, LDY, ZeroPageIndexedX, 4, false, Read)
	b.add(0xB5, LDA, ZeroPageIndexedX, 4, false, Read)
	b.add(0xB6, LDX, ZeroPageIndexedY, 4, false, Read)
	b.add(0xB7, LAX, ZeroPageIndexedY, 4, false, Read)
	b.add(0xB8, CLV, Implied, 2, false, Read)
	b.add(0xB9, LDA, AbsoluteIndexedY, 4, true, Read)
	b.add(0xBA, TSX, Implied, 2, false, Read)
	b.add(0xBB, LAS, AbsoluteIndexedY, 4, true, Read)
	b.add(0xBC, LDY, AbsoluteIndexedX, 4, true, Read)
	b.add(0xBD, LDA, AbsoluteIndexedX, 4, true, Read)
	b.add(0xBE, LDX, AbsoluteIndexedY, 4, true, Read)
	b.add(0xBF, LAX, AbsoluteIndexedY, 4, true, Read)

	// --- row 0xC_ ---
	b.add(0xC0, CPY, Immediate, 2, false, Read)
	b.add(0xC1, CMP, IndexedIndirect, 6, false, Read)
	b.add(0xC2, NOP, Immediate, 2, false, Read)
	b.add(0xC3, DCP, IndexedIndirect, 8, false, RMW)
	b.add(0xC4, CPY, ZeroPage, 3, false, Read)
	b.add(0xC5, CMP, ZeroPage, 3, false, Read)
	b.add(0xC6, DEC, ZeroPage, 5, false, RMW)
	b.add(0xC7, DCP, ZeroPage, 5, false, RMW)
	b.add(0xC8, INY, Implied, 2, false, Read)
	b.add(0xC9, CMP, Immediate, 2, false, Read)
	b.add(0xCA, DEX, Implied, 2, false, Read)
	b.add(0xCB, AXS, Immediate, 2, false, Read)
	b.add(0xCC, CPY, Absolute, 4, false, Read)
	b.add(0xCD, CMP, Absolute, 4, false, Read)
	b.add(0xCE, DEC, Absolute, 6, false, RMW)
	b.add(0xCF, DCP, Absolute, 6, false, RMW)

	// --- row 0xD_ ---
	b.add(0xD0, BNE, Relative, 2, true, Flow)
	b.add(0xD1, CMP, IndirectIndexed, 5, true, Read)
	jam(0xD2)
	b.add(0xD3, DCP, IndirectIndexed, 8, false, RMW)
	b.add(0xD4, NOP, ZeroPageIndexedX, 4, false, Read)
	b.add(0xD5, CMP, ZeroPageIndexedX, 4, false, Read)
	b.add(0xD6, DEC, ZeroPageIndexedX, 6, false, RMW)
	b.add(0xD7, DCP, ZeroPageIndexedX, 6, false, RMW)
	b.add(0xD8, CLD, Implied, 2, false, Read)
	b.add(0xD9, CMP, AbsoluteIndexedY, 4, true, Read)
	b.add(0xDA, NOP, Implied, 2, false, Read)
	b.add(0xDB, DCP, AbsoluteIndexedY, 7, false, RMW)
	b.add(0xDC, NOP, AbsoluteIndexedX, 4, true, Read)
	b.add(0xDD, CMP, AbsoluteIndexedX, 4, true, Read)
	b.add(0xDE, DEC, AbsoluteIndexedX, 7, false, RMW)
	b.add(0xDF, DCP, AbsoluteIndexedX, 7, false, RMW)

	// --- row 0xE_ ---
	b.add(0xE0, CPX, Immediate, 2, false, Read)
	b.add(0xE1, SBC, IndexedIndirect, 6, false, Read)
	b.add(0xE2, NOP, Immediate, 2, false, Read)
	b.add(0xE3, ISC, IndexedIndirect, 8, false, RMW)
	b.add(0xE4, CPX, ZeroPage, 3, false, Read)
	b.add(0xE5, SBC, ZeroPage, 3, false, Read)
	b.add(0xE6, INC, ZeroPage, 5, false, RMW)
	b.add(0xE7, ISC, ZeroPage, 5, false, RMW)
	b.add(0xE8, INX, Implied, 2, false, Read)
	b.add(0xE9, SBC, Immediate, 2, false, Read)
	b.add(0xEA, NOP, Implied, 2, false, Read)
	b.add(0xEB, SBC, Immediate, 2, false, Read)
	b.add(0xEC, CPX, Absolute, 4, false, Read)
	b.add(0xED, SBC, Absolute, 4, false, Read)
	b.add(0xEE, INC, Absolute, 6, false, RMW)
	b.add(0xEF, ISC, Absolute, 6, false, RMW)

	// --- row 0xF_ ---
	b.add(0xF0, BEQ, Relative, 2, true, Flow)
	b.add(0xF1, SBC, IndirectIndexed, 5, true, Read)
	jam(0xF2)
	b.add(0xF3, ISC, IndirectIndexed, 8, false, RMW)
	b.add(0xF4, NOP, ZeroPageIndexedX, 4, false, Read)
	b.add(0xF5, SBC, ZeroPageIndexedX, 4, false, Read)
	b.add(0xF6, INC, ZeroPageIndexedX, 6, false, RMW)
	b.add(0xF7, ISC, ZeroPageIndexedX, 6, false, RMW)
	b.add(0xF8, SED, Implied, 2, false, Read)
	b.add(0xF9, SBC, AbsoluteIndexedY, 4, true, Read)
	b.add(0xFA, NOP, Implied, 2, false, Read)
	b.add(0xFB, ISC, AbsoluteIndexedY, 7, false, RMW)
	b.add(0xFC, NOP, AbsoluteIndexedX, 4, true, Read)
	b.add(0xFD, SBC, AbsoluteIndexedX, 4, true, Read)
	b.add(0xFE, INC, AbsoluteIndexedX, 7, false, RMW)
	b.add(0xFF, ISC, AbsoluteIndexedX, 7, false, RMW)

	for i, d := range b.table {
		if d == nil {
			panic(fmt.Sprintf("opcode %#02x left undefined", i))
		}
	}

	Table = b.table
}
