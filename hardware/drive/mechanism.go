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

package drive

// Bit assignments on VIA2's port B, the disk mechanism control port. There
// is no teacher or retrieved reference for the exact wiring, so this is a
// plausible, internally documented assignment rather than a verified
// hardware trace; see DESIGN.md.
const (
	mechStepPhaseMask = 0x03 // bits 0-1: stepper motor phase (counting up steps inwards)
	mechMotorOn       = 0x04 // bit 2: spindle motor on/off
	mechLED           = 0x08 // bit 3: drive activity LED
	mechWriteProtect  = 0x10 // bit 4: write-protect sensor (input)
	mechDensityMask   = 0x60 // bits 5-6: density/zone select
	mechSyncN         = 0x80 // bit 7: SYNC detected, active low (input)
)

// mechPeripheral is VIA2's port B: head stepping, motor control, the LED,
// and the write-protect/sync sensors. The data byte currently under the
// head is exposed separately via portA, since on real hardware that's a
// distinct port (PA) from the mechanism control lines (PB).
type mechPeripheral struct {
	d *Drive

	bitPos   int
	dataByte uint8
	synced   bool
	hdrArmed bool // true once the current sync run has already realigned the byte boundary
}

// Write is called when the drive CPU writes VIA2's ORB - stepping the
// head, and turning the motor or LED on and off.
func (m *mechPeripheral) Write(value uint8) {
	newPhase := value & mechStepPhaseMask
	delta := (newPhase - m.d.stepPhase) & 0x03
	switch delta {
	case 1:
		m.stepHead(1)
	case 3:
		m.stepHead(-1)
	}
	m.d.stepPhase = newPhase
	m.d.motorOn = value&mechMotorOn != 0
	m.d.ledOn = value&mechLED != 0
}

func (m *mechPeripheral) stepHead(dir int) {
	pos := m.d.halfTrackPos + dir
	if pos < 2 {
		pos = 2
	}
	if pos > maxHalfTracks {
		pos = maxHalfTracks
	}
	m.d.halfTrackPos = pos
	m.d.bitsSinceHdr = 0
	m.bitPos = 0
	m.synced = false
	m.hdrArmed = false
}

// Read returns driven (the bits the VIA is actively outputting) combined
// with the two sensor inputs: write-protect and SYNC.
func (m *mechPeripheral) Read(driven uint8) uint8 {
	v := driven
	if m.d.Disk != nil && m.d.Disk.WriteProtect {
		v |= mechWriteProtect
	}
	if !m.synced {
		v |= mechSyncN
	}
	return v
}

// portA returns the Peripheral VIA2's PA - the GCR data byte register - is
// wired to: reads return the byte last assembled from the bit stream under
// the head, writes commit a byte to the disk at the current head position
// (only meaningful while the motor is running and a writable disk is
// inserted).
func (m *mechPeripheral) portA() *mechDataPeripheral {
	return &mechDataPeripheral{m: m}
}

type mechDataPeripheral struct {
	m *mechPeripheral
}

func (p *mechDataPeripheral) Read(driven uint8) uint8 {
	return p.m.dataByte
}

func (p *mechDataPeripheral) Write(value uint8) {
	d := p.m.d
	if !d.motorOn || d.Disk == nil || d.Disk.WriteProtect {
		return
	}
	ht := d.currentHalfTrack()
	if ht.bitLen == 0 {
		return
	}
	start := p.m.bitPos - 7
	if start < 0 {
		start += ht.bitLen
	}
	ht.setByteAt(start, value)
}
