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

// Package drive implements the VC1541 floppy drive: its own 6502-family
// CPU (reusing hardware/cpu directly, exactly the way the main machine's
// does), two MOS 6522 VIAs (serial bus and parallel cable on VIA1, disk
// mechanism on VIA2), and a GCR disk representation with bit-level head
// addressing. There is no teacher package for any of this - the VIA's
// shape is carried over from hardware/cia, and the mechanism/serial-bus
// wiring below is this emulator's own, documented in DESIGN.md.
package drive

import (
	"github.com/vc64/core/hardware/cpu"
	"github.com/vc64/core/hardware/drive/via"
	"github.com/vc64/core/hardware/instance"
)

// Drive is one VC1541 unit, addressed on the serial bus as device 8 or 9.
type Drive struct {
	ID int

	CPU  *cpu.CPU
	mem  *memoryMap
	VIA1 *via.VIA
	VIA2 *via.VIA

	bus    *SerialBus
	device int // DeviceDrive8 or DeviceDrive9, this unit's SerialBus index

	Disk *Disk

	halfTrackPos int // 2..84
	stepPhase    uint8
	motorOn      bool
	ledOn        bool

	bitAccum     float64
	bitsSinceHdr int

	mech   *mechPeripheral
	serial *serialPeripheral
}

// New returns a drive wired to bus as device id (DeviceDrive8 or
// DeviceDrive9), with no disk inserted and its head parked at track 1.
func New(ins *instance.Instance, id int, device int, bus *SerialBus) *Drive {
	d := &Drive{
		ID:           id,
		VIA1:         via.New("VIA1"),
		VIA2:         via.New("VIA2"),
		bus:          bus,
		device:       device,
		halfTrackPos: 2,
	}
	d.mem = newMemoryMap(d.VIA1, d.VIA2)
	d.CPU = cpu.NewCPU(ins, d.mem)

	d.mech = &mechPeripheral{d: d}
	d.serial = &serialPeripheral{d: d}
	d.VIA2.PortA = d.mech.portA()
	d.VIA2.PortB = d.mech
	d.VIA1.PortA = d.serial.portA()
	d.VIA1.PortB = d.serial

	return d
}

// LoadROM installs the drive's firmware image.
func (d *Drive) LoadROM(data []byte) {
	d.mem.LoadROM(data)
}

// Insert mounts a disk (nil to eject). The write-protect sensor reflects
// disk.WriteProtect from the moment it is inserted.
func (d *Drive) Insert(disk *Disk) {
	d.Disk = disk
}

// Reset reinitialises the CPU and both VIAs; the disk stays inserted and
// the head stays where it was, matching a real 1541's power-on behaviour
// (it does not rehome the head until the DOS issues an explicit seek).
func (d *Drive) Reset() {
	d.CPU.Reset()
	d.VIA1.Reset()
	d.VIA2.Reset()
	d.VIA1.PortA = d.serial.portA()
	d.VIA1.PortB = d.serial
	d.VIA2.PortA = d.mech.portA()
	d.VIA2.PortB = d.mech
}

// Track returns the 1-based track number the head currently sits on
// (half-tracks between two tracks round up to the higher one).
func (d *Drive) Track() int { return (d.halfTrackPos + 1) / 2 }

// HalfTrackPosition returns the head's raw half-track position (2..84).
func (d *Drive) HalfTrackPosition() int { return d.halfTrackPos }

// LEDOn reports the drive's activity LED, as last set by the mechanism
// peripheral's port B writes - surfaced for the host UI, which shows one
// per drive alongside the disk icon.
func (d *Drive) LEDOn() bool { return d.ledOn }

// MotorOn reports whether the drive's spindle motor is currently running.
func (d *Drive) MotorOn() bool { return d.motorOn }

// currentHalfTrack returns the bit stream under the head, or the zero
// value if no disk is inserted or the half-track was never formatted.
func (d *Drive) currentHalfTrack() halfTrack {
	if d.Disk == nil {
		return halfTrack{}
	}
	return d.Disk.HalfTrack(d.halfTrackPos)
}

// StepCycle advances the drive by one of its own clock cycles: the CPU
// executes at its own pace via ExecuteInstruction/cycleCallback from
// whatever drives the machine's main loop, but the read/write head's
// rotation is modeled here, ticked once per drive-CPU cycle regardless of
// what instruction is in flight - exactly like the VIC-II stealing cycles
// from the main CPU, the disk mechanism and the CPU it serves advance on
// the same clock but are otherwise independent state machines.
func (d *Drive) StepCycle() {
	d.VIA1.StepCycle()
	d.VIA2.StepCycle()

	if !d.motorOn || d.Disk == nil {
		return
	}
	ht := d.currentHalfTrack()
	if ht.bitLen == 0 {
		return
	}

	divisor := zoneDivisors[zoneForTrack(d.Track())]
	d.bitAccum += 1.0 / divisor
	if d.bitAccum < 1.0 {
		return
	}
	d.bitAccum -= 1.0

	bitPos := d.mech.bitPos
	bitPos = (bitPos + 1) % ht.bitLen
	d.mech.bitPos = bitPos

	if ht.isSync(bitPos) {
		if !d.mech.hdrArmed {
			d.bitsSinceHdr = 0
			d.mech.hdrArmed = true
		}
		d.mech.synced = true
		return
	}
	d.mech.synced = false
	d.mech.hdrArmed = false

	d.bitsSinceHdr++
	if d.bitsSinceHdr < 8 {
		return
	}
	d.bitsSinceHdr = 0

	start := bitPos - 7
	if start < 0 {
		start += ht.bitLen
	}
	d.mech.dataByte = ht.byteAt(start)
	d.VIA2.SetCA1(true)
	d.VIA2.SetCA1(false) // byte-ready pulse
}
