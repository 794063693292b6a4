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

package ports

import "github.com/vc64/core/snapshot"

// Snapshot captures the keyboard matrix and row/column select latches, the
// paddle-select bits, and whatever devices are currently installed in each
// control port.
func (p *Ports) Snapshot(w *snapshot.Writer) error {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			w.WriteBool(p.Keyboard.pressed[r][c])
		}
	}
	w.WriteUint8(p.Keyboard.rowSelect)
	w.WriteUint8(p.Keyboard.colSelect)
	w.WriteUint8(p.paddleSelect)

	snapshotControlPort(w, p.Port1)
	snapshotControlPort(w, p.Port2)
	return nil
}

// Restore undoes Snapshot. A device present in the blob but not currently
// installed is allocated fresh; one installed but absent from the blob is
// removed.
func (p *Ports) Restore(r *snapshot.Reader) error {
	for row := 0; row < 8; row++ {
		for c := 0; c < 8; c++ {
			v, err := r.ReadBool()
			if err != nil {
				return err
			}
			p.Keyboard.pressed[row][c] = v
		}
	}
	var err error
	if p.Keyboard.rowSelect, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.Keyboard.colSelect, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.paddleSelect, err = r.ReadUint8(); err != nil {
		return err
	}

	if err := restoreControlPort(r, p.Port1); err != nil {
		return err
	}
	return restoreControlPort(r, p.Port2)
}

func snapshotControlPort(w *snapshot.Writer, c *ControlPort) {
	w.WriteBool(c.Joystick != nil)
	if c.Joystick != nil {
		j := c.Joystick
		w.WriteBool(j.Up)
		w.WriteBool(j.Down)
		w.WriteBool(j.Left)
		w.WriteBool(j.Right)
		w.WriteBool(j.Fire)
		w.WriteBool(j.autofireOn)
		w.WriteInt(j.autofirePeriod)
		w.WriteInt(j.autofireAccum)
		w.WriteBool(j.autofireState)
	}

	for i := 0; i < 2; i++ {
		w.WriteBool(c.Paddles[i] != nil)
		if c.Paddles[i] != nil {
			w.WriteUint8(c.Paddles[i].Position)
			w.WriteBool(c.Paddles[i].Fire)
		}
	}

	w.WriteBool(c.Mouse != nil)
	if c.Mouse != nil {
		m := c.Mouse
		w.WriteInt(int(m.Variant))
		w.WriteBool(m.Button1)
		w.WriteBool(m.Button2)
		w.WriteUint8(m.potX)
		w.WriteUint8(m.potY)
		w.WriteInt(m.pulseX)
		w.WriteInt(m.pulseY)
	}
}

func restoreControlPort(r *snapshot.Reader, c *ControlPort) error {
	hasJoystick, err := r.ReadBool()
	if err != nil {
		return err
	}
	if !hasJoystick {
		c.Joystick = nil
	} else {
		if c.Joystick == nil {
			c.Joystick = NewJoystick()
		}
		j := c.Joystick
		if j.Up, err = r.ReadBool(); err != nil {
			return err
		}
		if j.Down, err = r.ReadBool(); err != nil {
			return err
		}
		if j.Left, err = r.ReadBool(); err != nil {
			return err
		}
		if j.Right, err = r.ReadBool(); err != nil {
			return err
		}
		if j.Fire, err = r.ReadBool(); err != nil {
			return err
		}
		if j.autofireOn, err = r.ReadBool(); err != nil {
			return err
		}
		if j.autofirePeriod, err = r.ReadInt(); err != nil {
			return err
		}
		if j.autofireAccum, err = r.ReadInt(); err != nil {
			return err
		}
		if j.autofireState, err = r.ReadBool(); err != nil {
			return err
		}
	}

	for i := 0; i < 2; i++ {
		has, err := r.ReadBool()
		if err != nil {
			return err
		}
		if !has {
			c.Paddles[i] = nil
			continue
		}
		if c.Paddles[i] == nil {
			c.Paddles[i] = NewPaddle()
		}
		if c.Paddles[i].Position, err = r.ReadUint8(); err != nil {
			return err
		}
		if c.Paddles[i].Fire, err = r.ReadBool(); err != nil {
			return err
		}
	}

	hasMouse, err := r.ReadBool()
	if err != nil {
		return err
	}
	if !hasMouse {
		c.Mouse = nil
		return nil
	}
	variant, err := r.ReadInt()
	if err != nil {
		return err
	}
	if c.Mouse == nil {
		c.Mouse = NewMouse(MouseVariant(variant))
	}
	m := c.Mouse
	m.Variant = MouseVariant(variant)
	if m.Button1, err = r.ReadBool(); err != nil {
		return err
	}
	if m.Button2, err = r.ReadBool(); err != nil {
		return err
	}
	if m.potX, err = r.ReadUint8(); err != nil {
		return err
	}
	if m.potY, err = r.ReadUint8(); err != nil {
		return err
	}
	if m.pulseX, err = r.ReadInt(); err != nil {
		return err
	}
	m.pulseY, err = r.ReadInt()
	return err
}
