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

package drive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vc64/core/hardware/drive"
	"github.com/vc64/core/hardware/instance"
)

func newDrive(t *testing.T) (*drive.Drive, *drive.SerialBus) {
	t.Helper()
	ins := instance.NewInstance(nil)
	bus := &drive.SerialBus{}
	d := drive.New(ins, 8, drive.DeviceDrive8, bus)
	return d, bus
}

func TestSerialBusIsWiredANDAcrossDevices(t *testing.T) {
	bus := &drive.SerialBus{}

	assert.False(t, bus.CLK())
	bus.SetCLK(drive.DeviceComputer, true)
	assert.True(t, bus.CLK())

	bus.SetCLK(drive.DeviceComputer, false)
	assert.False(t, bus.CLK())

	bus.SetCLK(drive.DeviceDrive8, true)
	bus.SetCLK(drive.DeviceDrive9, true)
	assert.True(t, bus.CLK())
	bus.SetCLK(drive.DeviceDrive8, false)
	assert.True(t, bus.CLK()) // drive 9 still pulling it low
	bus.SetCLK(drive.DeviceDrive9, false)
	assert.False(t, bus.CLK())
}

func TestVIA1ReadReflectsBusLevelRegardlessOfOwnDrive(t *testing.T) {
	d, bus := newDrive(t)

	assert.NoError(t, d.VIA1.Write(0x02, 0x05)) // DDRB: bits 0 and 2 output (DATA/CLK out)
	assert.NoError(t, d.VIA1.Write(0x00, 0x00)) // ORB: not pulling anything

	bus.SetATN(drive.DeviceComputer, true)
	v, err := d.VIA1.Read(0x00)
	assert.NoError(t, err)
	assert.NotZero(t, v&0x10) // ATN_IN bit set

	assert.NoError(t, d.VIA1.Write(0x00, 0x01)) // pull DATA low ourselves
	assert.True(t, bus.DATA())
}

func TestStepperMotorMovesHeadOneHalfTrackPerPhaseStep(t *testing.T) {
	d, _ := newDrive(t)

	assert.NoError(t, d.VIA2.Write(0x02, 0xff)) // DDRB all output
	assert.NoError(t, d.VIA2.Write(0x00, 0x00)) // ORB: phase 0, motor off, LED off
	assert.EqualValues(t, 2, d.HalfTrackPosition())

	// three consecutive forward phase transitions (0->1->2->3) each step
	// the head out by one half-track.
	assert.NoError(t, d.VIA2.Write(0x00, 0x01))
	assert.NoError(t, d.VIA2.Write(0x00, 0x02))
	assert.NoError(t, d.VIA2.Write(0x00, 0x03))
	assert.EqualValues(t, 5, d.HalfTrackPosition())
	assert.EqualValues(t, 3, d.Track())
	assert.False(t, d.MotorOn())

	assert.NoError(t, d.VIA2.Write(0x00, 0x03|0x04)) // same phase, motor on
	assert.True(t, d.MotorOn())
}

func TestMotorOnAdvancesHeadAndAssemblesBytesFromDiskStream(t *testing.T) {
	d, _ := newDrive(t)

	disk := drive.NewBlankDisk()
	// an 11-bit sync run (bits 0-10, spanning into the second byte)
	// followed by the data byte 0x5a (chosen with its top bit 0 so it
	// can't be mistaken for more sync), then trailing zero bytes so the
	// stream is long enough that the divisor-scaled head never wraps
	// mid-test. Hand-traced against halfTrack.isSync/byteAt and the
	// drive's sync-then-byte-align state machine in StepCycle.
	pattern := []byte{0xff, 0xeb, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00}
	disk.SetHalfTrack(2, pattern)
	d.Insert(disk)

	assert.NoError(t, d.VIA2.Write(0x02, 0xff)) // DDRB all output
	assert.NoError(t, d.VIA2.Write(0x00, 0x04)) // ORB: motor on, phase unchanged

	// zone 0 (track 1) divisor is 17 cycles/bit; run enough cycles to clear
	// the sync run and assemble the following byte.
	for i := 0; i < 17*20; i++ {
		d.StepCycle()
	}

	v, err := d.VIA2.Read(0x01) // ORA: assembled data byte
	assert.NoError(t, err)
	assert.EqualValues(t, 0x5a, v)
}
