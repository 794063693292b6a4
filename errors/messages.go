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

package errors

// error message patterns, one per Category except Fatal (PanicError has no
// Category of its own). Kept as plain format strings
// (rather than baked into Category's String() method) so that Is/Has can
// keep matching on the formatted message head regardless of which values
// were interpolated into it.
const (
	// panics / fatal
	PanicError       = "panic: %v: %v"
	MachineHaltedMsg = "machine halted: %v"

	// cpu
	UnimplementedInstructionMsg = "cpu: unimplemented instruction (%#02x) at (%#04x)"
	InvalidDuringExecutionMsg   = "cpu: invalid operation mid-instruction (%v)"
	ProgramCounterCycledMsg     = "cpu: program counter cycled back to zero"
	CPUBugMsg                   = "cpu: %v"

	// memory / bus
	UnservicedChipWriteMsg = "memory: unserviced chip write (%v)"
	UnknownRegisterNameMsg = "memory: unknown register (%v)"
	UnreadableAddressMsg   = "memory: cannot read address (%#04x)"
	UnwritableAddressMsg   = "memory: cannot write address (%#04x)"
	UnrecognisedAddressMsg = "memory: unrecognised address (%#04x)"
	UnpokeableAddressMsg   = "memory: cannot poke address (%#04x)"

	// cia
	CIATimerErrorMsg = "cia: timer error: %v"
	CIATODErrorMsg   = "cia: time-of-day clock error: %v"

	// vic
	VICBankErrorMsg   = "vic: invalid bank selection (%v)"
	VICRasterErrorMsg = "vic: raster line out of range (%v)"

	// sid
	SIDRegisterErrorMsg = "sid: register error (%v)"

	// drive
	DriveNotReadyMsg        = "drive %d: not ready"
	DriveGCRErrorMsg        = "drive %d: gcr decode error: %v"
	DriveWriteProtectedMsg  = "drive %d: disk is write protected"

	// datasette / media
	TapeNotFoundMsg = "datasette: tape image not found (%v)"

	// snapshot
	SnapshotVersionMismatchMsg = "snapshot: version mismatch (got %v, want %v)"
	SnapshotCorruptMsg         = "snapshot: corrupt data: %v"

	// configuration
	ConfigInvalidValueMsg   = "config: invalid value for %v: %v"
	ConfigUnknownOptionMsg  = "config: unknown option (%v)"
)
