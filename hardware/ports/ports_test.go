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

package ports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vc64/core/hardware/cia"
	"github.com/vc64/core/hardware/ports"
)

func TestKeyboardScanWithoutGhosting(t *testing.T) {
	p := ports.NewPorts()
	p.Keyboard.KeyDown(0, 3) // row 0, col 3

	c := cia.New("CIA1")
	c.PortA = p.PortA()
	c.PortB = p.PortB()
	assert.NoError(t, c.Write(0x02, 0xff)) // DDRA all output (rows)
	assert.NoError(t, c.Write(0x03, 0x00)) // DDRB all input (columns)

	assert.NoError(t, c.Write(0x00, 0xfe)) // select row 0 only
	v, err := c.Read(0x01)
	assert.NoError(t, err)
	assert.EqualValues(t, 0xf7, v) // bit 3 low, nothing else

	assert.NoError(t, c.Write(0x00, 0xfd)) // select row 1: no keys there
	v, err = c.Read(0x01)
	assert.NoError(t, err)
	assert.EqualValues(t, 0xff, v)
}

func TestKeyboardGhostingThreeKeys(t *testing.T) {
	// row0/col0, row0/col1 and row1/col0 held together: scanning row1
	// alone should also read col1 as pressed, even though no real key
	// connects row1 directly to col1 - the classic three-key ghost.
	p := ports.NewPorts()
	p.Keyboard.KeyDown(0, 0)
	p.Keyboard.KeyDown(0, 1)
	p.Keyboard.KeyDown(1, 0)

	c := cia.New("CIA1")
	c.PortA = p.PortA()
	c.PortB = p.PortB()
	assert.NoError(t, c.Write(0x02, 0xff))
	assert.NoError(t, c.Write(0x03, 0x00))

	assert.NoError(t, c.Write(0x00, 0xfd)) // select row 1 only
	v, err := c.Read(0x01)
	assert.NoError(t, err)
	assert.Zero(t, v&0x01) // col 0, directly pressed
	assert.Zero(t, v&0x02) // col 1, ghosted in via row 0
}

func TestKeyReleaseAllClearsMatrix(t *testing.T) {
	p := ports.NewPorts()
	p.Keyboard.KeyDown(2, 2)
	p.Keyboard.ReleaseAll()

	c := cia.New("CIA1")
	c.PortA = p.PortA()
	c.PortB = p.PortB()
	assert.NoError(t, c.Write(0x02, 0xff))
	assert.NoError(t, c.Write(0x00, 0xfb)) // select row 2
	v, err := c.Read(0x01)
	assert.NoError(t, err)
	assert.EqualValues(t, 0xff, v)
}

func TestJoystickPort1SharesColumnBits(t *testing.T) {
	p := ports.NewPorts()
	joy := ports.NewJoystick()
	joy.Fire = true
	joy.Up = true
	p.Port1.Joystick = joy

	c := cia.New("CIA1")
	c.PortA = p.PortA()
	c.PortB = p.PortB()
	assert.NoError(t, c.Write(0x03, 0x00)) // PB all input

	v, err := c.Read(0x01)
	assert.NoError(t, err)
	assert.Zero(t, v&0x01)    // up
	assert.Zero(t, v&0x10)    // fire
	assert.NotZero(t, v&0x0e) // down/left/right untouched
}

func TestAutofireTogglesFireOnDivider(t *testing.T) {
	joy := ports.NewJoystick()
	joy.SetAutofire(true, 4)

	p := ports.NewPorts()
	p.Port1.Joystick = joy
	c := cia.New("CIA1")
	c.PortB = p.PortB()
	assert.NoError(t, c.Write(0x03, 0x00))

	v, _ := c.Read(0x01)
	assert.NotZero(t, v&0x10) // not yet fired

	for i := 0; i < 4; i++ {
		p.StepCycle()
	}
	v, _ = c.Read(0x01)
	assert.Zero(t, v&0x10) // autofire engaged
}

func TestPaddleSelectFeedsPotValues(t *testing.T) {
	p := ports.NewPorts()
	p.Port1.Paddles[0] = &ports.Paddle{Position: 0x40}
	p.Port1.Paddles[1] = &ports.Paddle{Position: 0xc0}

	c := cia.New("CIA1")
	c.PortA = p.PortA()
	assert.NoError(t, c.Write(0x02, 0xff))

	x, y := p.PotValues()
	assert.EqualValues(t, 0xff, x) // nothing selected yet
	assert.EqualValues(t, 0xff, y)

	assert.NoError(t, c.Write(0x00, 0x80)) // select port 1's pair
	x, y = p.PotValues()
	assert.EqualValues(t, 0x40, x)
	assert.EqualValues(t, 0xc0, y)
}

func TestMouse1351ReportsAbsolutePotPosition(t *testing.T) {
	m := ports.NewMouse(ports.Mouse1351)
	m.Move(10, -5)

	p := ports.NewPorts()
	p.Port2.Mouse = m
	c := cia.New("CIA1")
	c.PortA = p.PortA()
	assert.NoError(t, c.Write(0x02, 0xff))
	assert.NoError(t, c.Write(0x00, 0x40)) // select port 2's pair

	x, y := p.PotValues()
	assert.EqualValues(t, 0x8a, x) // 0x80 + 10
	assert.EqualValues(t, 0x85, y) // 0x80 + 5 (Y inverted)
}

func TestMouse1350DrainsPulsesOnePerRead(t *testing.T) {
	m := ports.NewMouse(ports.Mouse1350)
	m.Move(2, 0)

	p := ports.NewPorts()
	p.Port1.Mouse = m
	c := cia.New("CIA1")
	c.PortB = p.PortB()
	assert.NoError(t, c.Write(0x03, 0x00))

	v, _ := c.Read(0x01)
	assert.Zero(t, v&0x08) // right pulse consumed
	v, _ = c.Read(0x01)
	assert.Zero(t, v&0x08) // second pending pulse
	v, _ = c.Read(0x01)
	assert.NotZero(t, v&0x08) // drained
}
