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

package cpu

import "github.com/vc64/core/hardware/cpu/opcodes"

// Result describes the instruction most recently executed (or in the
// process of being executed) by the CPU. It exists for the benefit of
// disassemblers, trace logging and the debug package - the CPU itself
// consults its own LastResult only in HasReset, to tell whether any
// instruction has started since Reset.
type Result struct {
	Address   uint16
	Defn      *opcodes.Definition
	Cycles    int
	PageFault bool
	CPUBug    string
	Final     bool
}

// Reset clears the result, ready for a new instruction.
func (r *Result) Reset() {
	*r = Result{}
}

// String renders a one-line disassembly-style summary.
func (r Result) String() string {
	if r.Defn == nil {
		return "-"
	}
	return r.Defn.String()
}
