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

// Category classifies a curated error so that callers can branch on what
// kind of problem occurred without string-matching the whole message -
// configuration mistakes, runtime faults, snapshot corruption, bad media,
// and unrecoverable faults are handled very differently by a caller.
type Category int

// list of error categories, grouped by the component that raises them
const (
	// CPU
	UnimplementedInstruction Category = iota
	InvalidDuringExecution
	ProgramCounterCycled
	CPUBug

	// Memory / bus
	UnservicedChipWrite
	UnknownRegisterName
	UnreadableAddress
	UnwritableAddress
	UnrecognisedAddress
	UnpokeableAddress

	// CIA
	CIATimerError
	CIATODError

	// VIC-II
	VICBankError
	VICRasterError

	// SID
	SIDRegisterError

	// Drive
	DriveNotReady
	DriveGCRError
	DriveWriteProtected

	// Datasette / media
	TapeNotFound

	// Snapshot
	SnapshotVersionMismatch
	SnapshotCorrupt

	// Configuration
	ConfigInvalidValue
	ConfigUnknownOption

	// Machine / fatal
	MachineHalted
	Fatal
)

// Severity buckets a Category into one of the broad classes spec.md §7
// names: configuration, runtime, snapshot, media, or fatal.
type Severity int

const (
	SeverityConfiguration Severity = iota
	SeverityRuntime
	SeveritySnapshot
	SeverityMedia
	SeverityFatal
)

// SeverityOf reports which broad bucket a Category falls into.
func SeverityOf(c Category) Severity {
	switch c {
	case ConfigInvalidValue, ConfigUnknownOption:
		return SeverityConfiguration
	case SnapshotVersionMismatch, SnapshotCorrupt:
		return SeveritySnapshot
	case DriveGCRError, TapeNotFound:
		return SeverityMedia
	case MachineHalted, Fatal:
		return SeverityFatal
	default:
		return SeverityRuntime
	}
}
