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

package debug

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/davecgh/go-spew/spew"
)

// Dump writes a readable, recursive rendering of v's exported state to w -
// the `dump` member of the component capability spec.md §9's Design Notes
// calls for, for any component that doesn't otherwise need a bespoke
// formatter.
func Dump(w io.Writer, v interface{}) {
	spew.Fdump(w, v)
}

// Sdump is Dump, returning a string instead of writing to an io.Writer -
// convenient for a single log line or a terminal REPL's response to an
// inspect command.
func Sdump(v interface{}) string {
	return spew.Sdump(v)
}

// DumpGraph renders a Graphviz DOT graph of v's exported state to w,
// including pointer relationships a flat field dump loses - useful for
// following a component's internal cross-references (e.g. a CIA's
// Peripheral wiring) rather than just its leaf values.
func DumpGraph(w io.Writer, v interface{}) {
	memviz.Map(w, v)
}
