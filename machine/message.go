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

// MessageKind tags a Message on the core-to-host queue, the counterpart of
// CommandKind on the host-to-core side.
type MessageKind string

const (
	MsgPAL              MessageKind = "PAL"
	MsgNTSC             MessageKind = "NTSC"
	MsgRecordingStarted MessageKind = "RECORDING_STARTED"
	MsgRecordingStopped MessageKind = "RECORDING_STOPPED"
	MsgRecordingAborted MessageKind = "RECORDING_ABORTED"
	MsgMute             MessageKind = "MUTE"
	MsgVC1530Tape       MessageKind = "VC1530_TAPE"
	MsgNoTape           MessageKind = "NO_TAPE"
	MsgProgress         MessageKind = "PROGRESS"
	MsgRshError         MessageKind = "RSH_ERROR"
	MsgAbort            MessageKind = "ABORT"
	MsgSrvState         MessageKind = "SRV_STATE"
)

// Message is one entry on the core-to-host queue. As with Command, which
// fields carry a payload depends on Kind.
type Message struct {
	Kind MessageKind

	Muted bool // MsgMute

	Percent int // MsgProgress: 0-100

	Err string // MsgRshError, MsgAbort: human-readable diagnostic

	State string // MsgSrvState: free-form server-state label
}
