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
//
// You should have received a copy of the GNU General Public License
// along with VirtualC64.  If not, see <https://www.gnu.org/licenses/>.

// Package emulation defines the vocabulary a host uses to observe the
// worker goroutine's run state, independent of machine.Machine's own
// internals - kept as its own package so host code (a GUI, a test harness)
// doesn't need to import the rest of package machine just to switch on a
// state value.
package emulation

// State indicates the worker goroutine's current run state.
type State int

// List of possible emulation states.
const (
	Initialising State = iota
	Running
	Paused
	Stepping
	Halted
)

func (s State) String() string {
	switch s {
	case Initialising:
		return "initialising"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stepping:
		return "stepping"
	case Halted:
		return "halted"
	}
	return "unknown"
}

// Event describes a transition the worker goroutine reports as it changes
// State, distinct from the Message queue: Events are about the worker's own
// lifecycle, Messages are about things the emulated machine itself observed
// (tape running out, a recording finishing).
type Event int

// List of currently defined events.
const (
	EventRun Event = iota
	EventPause
	EventHalt
	EventSnapshotLoaded
)
