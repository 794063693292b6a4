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

package machine

import "github.com/vc64/core/config"

// CommandKind tags a Command: a string constant naming it, with the
// payload carried in whichever of Command's fields that kind documents as
// using.
type CommandKind string

// Power and run-state commands.
const (
	PowerOn    CommandKind = "POWER_ON"
	PowerOff   CommandKind = "POWER_OFF"
	Run        CommandKind = "RUN"
	Pause      CommandKind = "PAUSE"
	HardReset  CommandKind = "HARD_RESET"
	SoftReset  CommandKind = "SOFT_RESET"
	HaltCmd    CommandKind = "HALT"
	StepInto   CommandKind = "STEP_INTO"
	StepOver   CommandKind = "STEP_OVER"
	StepCycle  CommandKind = "STEP_CYCLE"
	FinishLine CommandKind = "FINISH_LINE"
	FinishFrame CommandKind = "FINISH_FRAME"
)

// Warp commands. Src is a bit position (0-6): warp mode is active while any
// source has asserted it, so turning one source off doesn't necessarily
// leave warp mode.
const (
	WarpOn  CommandKind = "WARP_ON"
	WarpOff CommandKind = "WARP_OFF"
)

// Input commands.
const (
	KeyPress      CommandKind = "KEY_PRESS"
	KeyRelease    CommandKind = "KEY_RELEASE"
	KeyToggle     CommandKind = "KEY_TOGGLE"
	KeyReleaseAll CommandKind = "KEY_RELEASE_ALL"
	MouseMoveAbs  CommandKind = "MOUSE_MOVE_ABS"
	MouseMoveRel  CommandKind = "MOUSE_MOVE_REL"
	MouseButton   CommandKind = "MOUSE_BUTTON"
	JoyEvent      CommandKind = "JOY_EVENT"
)

// Configuration commands.
const (
	Config       CommandKind = "CONFIG"
	ConfigAll    CommandKind = "CONFIG_ALL"
	ConfigScheme CommandKind = "CONFIG_SCHEME"
)

// Tape commands.
const (
	TapeInsert CommandKind = "TAPE_INSERT"
	TapeEject  CommandKind = "TAPE_EJECT"
	TapePlay   CommandKind = "TAPE_PLAY"
	TapeStop   CommandKind = "TAPE_STOP"
	TapeRewind CommandKind = "TAPE_REWIND"
)

// ButtonAction is the payload for MouseButton and JoyEvent.
type ButtonAction int

const (
	ActionRelease ButtonAction = iota
	ActionPress
)

// Command is one entry on the host-to-core queue. Which fields are
// meaningful depends entirely on Kind; see each CommandKind's own comment.
type Command struct {
	Kind CommandKind

	// Row/Col address a keyboard matrix cell (KeyPress/KeyRelease/KeyToggle);
	// Delay is cycles to hold before auto-releasing (0: caller releases
	// explicitly via KeyRelease).
	Row, Col int
	Delay    int

	// Port selects control port 1 (0) or 2 (1) (MouseMoveAbs/Rel,
	// MouseButton, JoyEvent).
	Port int
	X, Y int // MouseMoveAbs: absolute position. MouseMoveRel: delta.

	Action ButtonAction // MouseButton, JoyEvent (button field below selects which)
	Button int          // which joystick switch (0-4) or mouse button (1-2)

	Src uint8 // WarpOn/WarpOff: bit position 0-6 identifying the warp source

	Option config.Option // Config/ConfigAll
	ID     int            // Config: drive/unit index, where the option is per-unit
	Value  config.Value   // Config/ConfigAll

	Scheme config.Scheme // ConfigScheme

	TapePath string // TapeInsert: path/identifier of the tape image to mount
}
