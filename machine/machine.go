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

// Package machine assembles every hardware component into one running C64:
// a single dedicated worker goroutine steps the main CPU cycle by cycle,
// ticking the two CIAs, the VIC-II, SID, the two floppy drives and the
// datasette alongside it, and exchanges Commands and Messages with the
// host over a pair of buffered channels, so a host never touches emulated
// state directly and never blocks the worker for longer than a channel
// send. See DESIGN.md for the reasoning behind this shape.
package machine

import (
	"context"
	"sync"
	"time"

	"github.com/vc64/core/assert"
	"github.com/vc64/core/config"
	"github.com/vc64/core/debug"
	"github.com/vc64/core/emulation"
	"github.com/vc64/core/errors"
	"github.com/vc64/core/hardware/cia"
	"github.com/vc64/core/hardware/clocks"
	"github.com/vc64/core/hardware/cpu"
	"github.com/vc64/core/hardware/datasette"
	"github.com/vc64/core/hardware/drive"
	"github.com/vc64/core/hardware/instance"
	"github.com/vc64/core/hardware/memory"
	"github.com/vc64/core/hardware/ports"
	"github.com/vc64/core/hardware/sid"
	"github.com/vc64/core/hardware/vic"
	"github.com/vc64/core/logger"
	"github.com/vc64/core/random"
	"github.com/vc64/core/snapshot"
)

// sidSampleRate is the fixed host playback rate SID resamples its output
// to; spec.md §6 leaves this a host concern, but some concrete value has
// to drive the ring buffer's fractional accumulator.
const sidSampleRate = 44100

// todJitterSpread is the maximum number of cycles a jittered power-grid
// divider wanders from its nominal tenth-of-a-second period, in either
// direction - an approximation of mains-frequency wobble, not a measured
// figure.
const todJitterSpread = 400

// badLineStallFirst and badLineStallLast bound the cycle window within a
// bad line that RdyFlg is held low, matching spec.md §8 scenario 6: 40
// consecutive cycles starting 3 cycles before fetchRow's bulk c-access.
const (
	badLineStallFirst = 12
	badLineStallLast  = 51
)

type pendingRelease struct {
	row, col int
	cycles   int
}

// Machine is one running C64: every chip it owns, the worker goroutine
// that steps them, and the command/message queues a host drives it
// through.
type Machine struct {
	ins *instance.Instance

	mem    *memory.MemoryMap
	cpu    *cpu.CPU
	cia1   *cia.CIA
	cia2   *cia.CIA
	cia2PA *cia2PortA
	vbus   *vicBus
	vic    *vic.VIC
	sid    *sid.SID
	ports  *ports.Ports

	serialBus  *drive.SerialBus
	drives     [2]*drive.Drive
	driveAccum [2]float64

	tape *datasette.Datasette

	std     vic.Standard
	mainMHz float64

	todAccum     float64
	todThreshold float64

	warpSources uint8

	pendingReleases []pendingRelease
	lastMouseX      [2]int
	lastMouseY      [2]int

	breakpoints *debug.Breakpoints
	watches     *debug.Watches

	commands chan Command
	messages chan Message

	stateMu sync.Mutex
	state   emulation.State

	pendingStep CommandKind

	frameMu    sync.Mutex
	frontFrame []uint8
	frontW     int
	frontH     int
	frameCount uint64

	wake      chan struct{}
	suspendCh chan parkRequest
	haltOnce  sync.Once
	haltCh    chan struct{}
	doneCh    chan struct{}
	launched  bool

	// workerGoroutine identifies the goroutine run() is executing on, once
	// Launch has started it. assertWorker uses it to catch a host
	// accidentally calling a worker-only method directly instead of going
	// through the Command channel, which would otherwise show up only as
	// an intermittent, hard-to-reproduce data race.
	workerGoroutine   uint64
	workerGoroutineOK bool
}

type parkRequest struct {
	parked chan struct{}
	resume chan struct{}
}

// New returns a freshly wired, powered-down machine: PAL timing, a stock
// configuration (config.Default), one connected VC1541 at device 8 and a
// second, disconnected one at device 9, an empty datasette, and no ROM
// images loaded - LoadKernalROM/LoadBasicROM/LoadCharROM/LoadDriveROM are
// the caller's responsibility before Launch.
func New() *Machine {
	m := &Machine{
		commands:  make(chan Command, 1024),
		messages:  make(chan Message, 1024),
		wake:      make(chan struct{}, 1),
		suspendCh: make(chan parkRequest),
		haltCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
		state:     emulation.Paused,
	}

	m.ins = instance.NewInstance(coordsProvider{m})

	m.mem = memory.NewMemoryMap(nil)
	m.cpu = cpu.NewCPU(m.ins, m.mem)
	m.mem.BindIOPort(&m.cpu.IOPort)

	m.serialBus = &drive.SerialBus{}
	m.cia2PA = newCIA2PortA(m.serialBus)
	m.vbus = &vicBus{mem: m.mem, cia2: m.cia2PA}

	m.cia1 = cia.New("CIA1")
	m.cia2 = cia.New("CIA2")
	m.cia2.PortA = m.cia2PA
	m.cia2.PortB = cia2PortB{}

	m.ports = ports.NewPorts()
	m.ports.Port1.Joystick = ports.NewJoystick()
	m.ports.Port2.Joystick = ports.NewJoystick()
	m.cia1.PortA = m.ports.PortA()
	m.cia1.PortB = m.ports.PortB()

	m.drives[0] = drive.New(m.ins, 8, drive.DeviceDrive8, m.serialBus)
	m.drives[1] = drive.New(m.ins, 9, drive.DeviceDrive9, m.serialBus)

	m.tape = datasette.New()

	m.breakpoints = debug.NewBreakpoints()
	m.watches = debug.NewWatches()

	cfg := m.ins.Config
	m.setStandard(standardFor(cfg.VICRevision))
	m.vic.SetRevision(vic.Revision(cfg.VICRevision))

	return m
}

// coordsProvider adapts Machine to random.CoordsProvider by forwarding to
// whichever VIC is currently installed - indirected through a small
// wrapper because instance.NewInstance needs a CoordsProvider before the
// VIC it will eventually delegate to has been constructed.
type coordsProvider struct{ m *Machine }

func (c coordsProvider) GetCoords() random.Coords {
	if c.m.vic == nil {
		return random.Coords{}
	}
	return c.m.vic.GetCoords()
}

func standardFor(v config.VICRevisionValue) vic.Standard {
	switch config.VICRevisionValue(v) {
	case config.NTSC6567, config.NTSC6567R56A, config.NTSC8562:
		return vic.NTSC
	default:
		return vic.PAL
	}
}

// setStandard (re)builds the VIC-II and SID, the two components whose
// behaviour depends on the video standard's clock rate, in place - used
// both at construction and by CONFIG_SCHEME, which can switch a running
// machine between PAL and NTSC.
func (m *Machine) setStandard(std vic.Standard) {
	m.std = std
	if std == vic.NTSC {
		m.mainMHz = clocks.NTSCMHz
	} else {
		m.mainMHz = clocks.PALMHz
	}
	m.todThreshold = m.mainMHz * 1_000_000 / 10

	m.vic = vic.New(std, m.vbus)
	m.sid = sid.New(sid.Model(m.ins.Config.SIDRevision), m.mainMHz*1_000_000, sidSampleRate)
	if m.mem != nil {
		m.mem.Plumb(m.vic, m.sid, m.cia1, m.cia2, nil)
	}
}

// refreshPeriod is the worker's self-paced wake-up interval absent any
// host-driven pulse: one field period for the current video standard.
func (m *Machine) refreshPeriod() time.Duration {
	rate := clocks.PALFieldRate
	if m.std == vic.NTSC {
		rate = clocks.NTSCFieldRate
	}
	return time.Duration(float64(time.Second) / rate)
}

// Launch starts the worker goroutine. It returns immediately; the worker
// runs until ctx is cancelled or Halt is called.
func (m *Machine) Launch(ctx context.Context) error {
	if m.launched {
		return errors.Errorf("machine: already launched")
	}
	m.launched = true
	go m.run(ctx)
	return nil
}

// Wake delivers one forward-progress pulse, typically sent once per host
// video frame; it is dropped rather than queued if the worker hasn't
// consumed the previous one yet, since only the most recent pulse matters.
func (m *Machine) Wake() {
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// Halt requests the worker stop at its next safe point; it does not block.
// Call Join to wait for it to actually exit.
func (m *Machine) Halt() {
	m.haltOnce.Do(func() { close(m.haltCh) })
}

// Join blocks until the worker goroutine has exited.
func (m *Machine) Join() {
	<-m.doneCh
}

// Suspend blocks until the worker parks at a frame boundary, and returns a
// closure that resumes it - the host calls this to read consistent state
// (e.g. for the debugger) without racing the worker.
func (m *Machine) Suspend() func() {
	req := parkRequest{parked: make(chan struct{}), resume: make(chan struct{})}
	select {
	case m.suspendCh <- req:
		<-req.parked
	case <-m.doneCh:
		close(req.parked)
	}
	return func() {
		select {
		case <-req.parked:
			close(req.resume)
		default:
		}
	}
}

func (m *Machine) currentState() emulation.State {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()
	return m.state
}

func (m *Machine) setState(s emulation.State) {
	m.stateMu.Lock()
	m.state = s
	m.stateMu.Unlock()
}

// State reports the worker's current run state.
func (m *Machine) State() emulation.State { return m.currentState() }

// run is the worker goroutine's body: drain whatever woke it, apply
// pending commands, and - while running - advance cycles to the next
// frame boundary (or perform one pending debugger step), repeating
// without pacing while warp mode is active.
func (m *Machine) run(ctx context.Context) {
	defer close(m.doneCh)

	m.workerGoroutine = assert.GetGoRoutineID()
	m.workerGoroutineOK = true

	ticker := time.NewTicker(m.refreshPeriod())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.haltCh:
			return
		case req := <-m.suspendCh:
			close(req.parked)
			select {
			case <-req.resume:
			case <-m.haltCh:
				return
			case <-ctx.Done():
				return
			}
			continue
		case <-m.wake:
		case <-ticker.C:
		}

		m.drainCommands()
		m.advance()

		for m.warpSources != 0 && m.currentState() == emulation.Running {
			select {
			case req := <-m.suspendCh:
				close(req.parked)
				<-req.resume
			case <-m.haltCh:
				return
			default:
			}
			m.drainCommands()
			m.advance()
		}
	}
}

// assertWorker panics if called from any goroutine other than the one
// run() is executing on - a debug check for the invariant that every chip
// method the worker drives (stepCycle and everything it calls) is only
// ever touched from that one goroutine, never concurrently from a host
// call. It is a no-op before Launch, since workerGoroutineOK is only set
// once run() starts.
func (m *Machine) assertWorker() {
	if !m.workerGoroutineOK {
		return
	}
	if id := assert.GetGoRoutineID(); id != m.workerGoroutine {
		panic("machine: called from outside the worker goroutine")
	}
}

// advance runs one unit of forward progress appropriate to the current
// state: a full frame while Running, one debugger-granularity step while
// Stepping, nothing otherwise.
func (m *Machine) advance() {
	m.assertWorker()
	switch m.currentState() {
	case emulation.Running:
		m.runToFrameBoundary()
	case emulation.Stepping:
		m.runStep()
		m.setState(emulation.Paused)
	}
}

func (m *Machine) runToFrameBoundary() {
	for {
		select {
		case <-m.haltCh:
			return
		default:
		}
		m.drainCommands()
		if m.currentState() != emulation.Running {
			return
		}
		if err := m.stepCycle(); err != nil {
			m.reportRuntimeError(err)
			return
		}
		if m.checkBreakpoint() || m.checkWatches() {
			return
		}
		if m.vic.FrameDone() {
			m.publishFrame()
			return
		}
	}
}

// checkBreakpoint consults the breakpoint set against the CPU's current
// program counter - a new instruction boundary, since stepCycle only
// returns once ExecuteInstruction has completed a whole instruction or
// serviced an interrupt. A hit pauses the machine and surfaces it as a
// message, per spec.md §7's "runtime hardware errors... converted into a
// message; the worker transitions to PAUSED".
func (m *Machine) checkBreakpoint() bool {
	if !m.breakpoints.Check(m.cpu.PC.Value()) {
		return false
	}
	m.setState(emulation.Paused)
	m.emit(Message{Kind: MsgAbort, Err: errors.Errorf("breakpoint at $%04x", m.cpu.PC.Value()).Error()})
	return true
}

// checkWatches consults the watch list against the memory map's most
// recent access - checked at the same instruction-boundary granularity as
// checkBreakpoint, which catches any watch the just-completed instruction
// tripped without the cost of hooking every individual bus access.
func (m *Machine) checkWatches() bool {
	hits := m.watches.Check(m.mem.LastAccessAddress, m.mem.LastAccessWrite, m.mem.LastAccessValue)
	if len(hits) == 0 {
		return false
	}
	m.setState(emulation.Paused)
	for _, w := range hits {
		m.emit(Message{Kind: MsgAbort, Err: errors.Errorf("watch hit: %s", w).Error()})
	}
	return true
}

func (m *Machine) runStep() {
	switch m.pendingStep {
	case StepCycle:
		_ = m.stepCycle()
	case StepInto, StepOver:
		// ExecuteInstruction always completes exactly one whole
		// instruction (or services one interrupt); a true STEP_OVER
		// would additionally run to the return from a JSR it just
		// stepped over rather than descending into it, which this
		// CPU core has no call-depth tracking to support - see
		// DESIGN.md.
		_ = m.stepCycle()
	case FinishLine:
		line := m.vic.Raster()
		for m.vic.Raster() == line {
			if err := m.stepCycle(); err != nil {
				m.reportRuntimeError(err)
				return
			}
		}
	case FinishFrame:
		for {
			if err := m.stepCycle(); err != nil {
				m.reportRuntimeError(err)
				return
			}
			if m.vic.FrameDone() {
				m.publishFrame()
				return
			}
		}
	}
}

func (m *Machine) reportRuntimeError(err error) {
	logger.Log("MACHINE", err)
	m.setState(emulation.Paused)
	m.emit(Message{Kind: MsgAbort, Err: err.Error()})
}

// stepCycle advances every chip by exactly one main-clock cycle: RdyFlg is
// set for the upcoming cycle from the VIC-II's current bad-line state
// (the window it needs to steal the bus in), then the CPU either executes
// one whole instruction (RdyFlg high) or is frozen for this single cycle
// (RdyFlg low) - either way cycleCallback fires once per cycle elapsed,
// which is where every other chip is ticked in lockstep.
func (m *Machine) stepCycle() error {
	m.cpu.RdyFlg = !(m.vic.BadLine() && m.vic.Cycle() >= badLineStallFirst && m.vic.Cycle() <= badLineStallLast)
	return m.cpu.ExecuteInstruction(m.cycleCallback)
}

func (m *Machine) cycleCallback() error {
	m.vic.StepCycle()
	m.cia1.StepCycle(true)
	m.cia2.StepCycle(true)
	m.ports.StepCycle()
	m.sid.StepCycle()

	if ranOut := m.tape.StepCycle(); ranOut {
		m.emit(Message{Kind: MsgNoTape})
	}

	m.stepTOD()
	m.stepDrives()
	m.stepPendingReleases()

	x, y := m.ports.PotValues()
	m.sid.SetPot(x, y)

	m.cpu.SetIRQ(m.cia1.IRQLine() || m.vic.IRQLine())
	m.cpu.SetNMI(m.cia2.IRQLine())

	return nil
}

// stepTOD paces both CIAs' time-of-day clocks off the emulated power
// grid: a stable divider ticks every exact tenth of a second, an unstable
// one wanders by up to todJitterSpread cycles either way, reseeded from
// the current playfield position so the jitter sequence is itself
// reproducible across a rewind.
func (m *Machine) stepTOD() {
	m.todAccum++
	if m.todAccum < m.todThreshold {
		return
	}
	m.todAccum -= m.todThreshold
	m.cia1.TickTOD()
	m.cia2.TickTOD()

	switch m.ins.Config.PowerGrid {
	case config.Unstable50Hz, config.Unstable60Hz:
		jitter := m.ins.Random.Rewindable(2*todJitterSpread) - todJitterSpread
		m.todThreshold = m.mainMHz*1_000_000/10 + float64(jitter)
	default:
		m.todThreshold = m.mainMHz * 1_000_000 / 10
	}
}

// stepDrives paces each connected drive's own CPU off a fractional
// accumulator, generalising spec.md §9's per-cycle formula to this CPU
// core's instruction-granular ExecuteInstruction: rather than executing a
// single drive cycle whenever the accumulator reaches 1.0, it executes one
// whole drive instruction and subtracts however many cycles that actually
// consumed, which may leave the accumulator negative and so skip the next
// few main cycles' worth of opportunities - see DESIGN.md.
func (m *Machine) stepDrives() {
	for i, drv := range m.drives {
		if drv == nil || !m.ins.Config.DriveConnect[i] {
			continue
		}
		m.driveAccum[i] += clocks.DriveMHz / m.mainMHz
		if m.driveAccum[i] < 1.0 {
			continue
		}
		cyclesUsed := 0
		_ = drv.CPU.ExecuteInstruction(func() error {
			cyclesUsed++
			drv.StepCycle()
			return nil
		})
		if cyclesUsed == 0 {
			cyclesUsed = 1
		}
		m.driveAccum[i] -= float64(cyclesUsed)
	}
}

func (m *Machine) stepPendingReleases() {
	kept := m.pendingReleases[:0]
	for _, p := range m.pendingReleases {
		p.cycles--
		if p.cycles <= 0 {
			m.ports.Keyboard.KeyUp(p.row, p.col)
			continue
		}
		kept = append(kept, p)
	}
	m.pendingReleases = kept
}

// emit delivers a message to the host queue, dropping (and logging) it if
// the host has fallen far enough behind that the buffered channel is full
// - a worker that blocked here instead could stall emulation indefinitely
// on an inattentive host.
func (m *Machine) emit(msg Message) {
	select {
	case m.messages <- msg:
	default:
		logger.Logf("MACHINE", "dropped message %v: host queue full", msg.Kind)
	}
}

// Messages returns the core-to-host notification queue.
func (m *Machine) Messages() <-chan Message { return m.messages }

// SendCommand enqueues one host-to-core command, observed in FIFO order at
// the start of a future cycle.
func (m *Machine) SendCommand(cmd Command) { m.commands <- cmd }

func (m *Machine) drainCommands() {
	for {
		select {
		case cmd := <-m.commands:
			m.applyCommand(cmd)
		default:
			return
		}
	}
}

// Frame returns a copy of the most recently published framebuffer, its
// dimensions, and the frame counter it was published at.
func (m *Machine) Frame() (pixels []uint8, width, height int, count uint64) {
	m.frameMu.Lock()
	defer m.frameMu.Unlock()
	out := make([]uint8, len(m.frontFrame))
	copy(out, m.frontFrame)
	return out, m.frontW, m.frontH, m.frameCount
}

func (m *Machine) publishFrame() {
	pixels, w, h := m.vic.Frame()
	m.frameMu.Lock()
	if cap(m.frontFrame) < len(pixels) {
		m.frontFrame = make([]uint8, len(pixels))
	}
	m.frontFrame = m.frontFrame[:len(pixels)]
	copy(m.frontFrame, pixels)
	m.frontW, m.frontH = w, h
	m.frameCount++
	m.frameMu.Unlock()
}

// PullAudio drains up to len(out) resampled stereo frames from SID's
// output ring, same as spec.md §6's copy_stereo.
func (m *Machine) PullAudio(out []sid.Sample) int {
	return m.sid.Pull(out)
}

// Breakpoints returns the machine's breakpoint set, for a host debug façade
// to arm/disarm/list against.
func (m *Machine) Breakpoints() *debug.Breakpoints { return m.breakpoints }

// Watches returns the machine's bus watch list.
func (m *Machine) Watches() *debug.Watches { return m.watches }

// MemWindow returns a side-effect-free peek/poke view of the full address
// space, for a host debug façade's memory inspector.
func (m *Machine) MemWindow() *debug.MemWindow { return debug.NewMemWindow(m.mem) }

// LoadKernalROM, LoadBasicROM, LoadCharROM and LoadDriveROM install the
// fixed ROM images; none are loaded by New, since sourcing them is a host
// concern (spec.md's file-format list is "consumed by external
// collaborators").
func (m *Machine) LoadKernalROM(data []byte) { m.mem.LoadKernalROM(data) }
func (m *Machine) LoadBasicROM(data []byte)  { m.mem.LoadBasicROM(data) }
func (m *Machine) LoadCharROM(data []byte)   { m.mem.LoadCharROM(data) }
func (m *Machine) LoadDriveROM(id int, data []byte) {
	if id < 0 || id > 1 {
		return
	}
	m.drives[id].LoadROM(data)
}

// InsertDisk mounts (or, with nil, ejects) a disk image in the given drive.
func (m *Machine) InsertDisk(id int, disk *drive.Disk) {
	if id < 0 || id > 1 {
		return
	}
	m.drives[id].Insert(disk)
}

func (m *Machine) hardReset() {
	m.softReset()
	for _, drv := range m.drives {
		drv.Reset()
	}
	m.tape.Rewind()
}

func (m *Machine) softReset() {
	m.cpu.Reset()
	_ = m.cpu.LoadPCIndirect(0xfffc)
	m.cia1.Reset()
	m.cia2.Reset()
	m.vic.Reset()
	m.sid.Reset()
	m.todAccum = 0
	m.todThreshold = m.mainMHz * 1_000_000 / 10
}

func (m *Machine) controlPort(port int) *ports.ControlPort {
	if port == 1 {
		return m.ports.Port2
	}
	return m.ports.Port1
}

func (m *Machine) mouseFor(port int) *ports.Mouse {
	cp := m.controlPort(port)
	if cp.Mouse == nil {
		cp.Mouse = ports.NewMouse(ports.Mouse1351)
	}
	return cp.Mouse
}

// applyCommand performs one queued command's effect. It is always called
// from the worker goroutine, with every component it touches otherwise
// untouched by any other goroutine - per spec.md §5, commands are applied
// before any component ticks for the cycle they were drained on.
func (m *Machine) applyCommand(cmd Command) {
	switch cmd.Kind {
	case PowerOn:
		m.hardReset()
		m.setState(emulation.Running)
	case PowerOff:
		m.setState(emulation.Paused)
	case Run:
		m.setState(emulation.Running)
	case Pause:
		m.setState(emulation.Paused)
	case HardReset:
		m.hardReset()
	case SoftReset:
		m.softReset()
	case HaltCmd:
		m.Halt()

	case StepInto, StepOver, StepCycle, FinishLine, FinishFrame:
		m.pendingStep = cmd.Kind
		m.setState(emulation.Stepping)

	case WarpOn:
		m.warpSources |= 1 << (cmd.Src & 0x07)
	case WarpOff:
		m.warpSources &^= 1 << (cmd.Src & 0x07)

	case KeyPress:
		m.ports.Keyboard.KeyDown(cmd.Row, cmd.Col)
		if cmd.Delay > 0 {
			m.pendingReleases = append(m.pendingReleases, pendingRelease{cmd.Row, cmd.Col, cmd.Delay})
		}
	case KeyRelease:
		m.ports.Keyboard.KeyUp(cmd.Row, cmd.Col)
	case KeyToggle:
		m.ports.Keyboard.Toggle(cmd.Row, cmd.Col)
	case KeyReleaseAll:
		m.ports.Keyboard.ReleaseAll()
		m.pendingReleases = nil

	case MouseMoveAbs:
		mouse := m.mouseFor(cmd.Port)
		dx := cmd.X - m.lastMouseX[cmd.Port&1]
		dy := cmd.Y - m.lastMouseY[cmd.Port&1]
		m.lastMouseX[cmd.Port&1] = cmd.X
		m.lastMouseY[cmd.Port&1] = cmd.Y
		mouse.Move(dx, dy)
	case MouseMoveRel:
		m.mouseFor(cmd.Port).Move(cmd.X, cmd.Y)
	case MouseButton:
		mouse := m.mouseFor(cmd.Port)
		pressed := cmd.Action == ActionPress
		if cmd.Button == 2 {
			mouse.Button2 = pressed
		} else {
			mouse.Button1 = pressed
		}
	case JoyEvent:
		cp := m.controlPort(cmd.Port)
		if cp.Joystick == nil {
			cp.Joystick = ports.NewJoystick()
		}
		pressed := cmd.Action == ActionPress
		switch cmd.Button {
		case 0:
			cp.Joystick.Up = pressed
		case 1:
			cp.Joystick.Down = pressed
		case 2:
			cp.Joystick.Left = pressed
		case 3:
			cp.Joystick.Right = pressed
		default:
			cp.Joystick.Fire = pressed
		}

	case Config:
		if err := m.ins.Config.Apply(cmd.Option, cmd.ID, cmd.Value); err != nil {
			logger.Log("MACHINE", err)
			return
		}
		m.applyConfigEffect(cmd.Option)
	case ConfigAll:
		if err := m.ins.Config.ApplyAll(cmd.Option, cmd.Value); err != nil {
			logger.Log("MACHINE", err)
			return
		}
		m.applyConfigEffect(cmd.Option)
	case ConfigScheme:
		if err := m.ins.Config.ApplyScheme(cmd.Scheme); err != nil {
			logger.Log("MACHINE", err)
			return
		}
		std := standardFor(m.ins.Config.VICRevision)
		m.setStandard(std)
		if std == vic.NTSC {
			m.emit(Message{Kind: MsgNTSC})
		} else {
			m.emit(Message{Kind: MsgPAL})
		}

	case TapeInsert:
		m.tape.Insert(cmd.TapePath, 0)
		m.emit(Message{Kind: MsgVC1530Tape})
	case TapeEject:
		m.tape.Eject()
		m.emit(Message{Kind: MsgNoTape})
	case TapePlay:
		m.tape.Play()
	case TapeStop:
		m.tape.Stop()
	case TapeRewind:
		m.tape.Rewind()
	}
}

// applyConfigEffect pushes a just-applied config option's value onto the
// live component it governs, for the options whose effect isn't simply
// "consulted on the next StepDrives/applyCommand pass" - VIC revision and
// SID model both affect chips that otherwise only read their config at
// construction time.
func (m *Machine) applyConfigEffect(opt config.Option) {
	switch opt {
	case config.VICRevision:
		m.vic.SetRevision(vic.Revision(m.ins.Config.VICRevision))
	case config.SIDRevision:
		m.sid.SetModel(sid.Model(m.ins.Config.SIDRevision))
	}
}

// components returns every persistent component in spec.md §6's snapshot
// order: CPU, Memory, CIA1, CIA2, VIC, SID, Keyboard, ControlPort x2,
// Drive x2, Datasette. Keyboard and both ControlPorts share the single
// ports.Ports blob. SID x4 is collapsed to a single blob (this
// emulator only ever wires up one SID, see DESIGN.md) and no
// ExpansionPort blob is written, since no concrete Cartridge
// implementation exists to serialise.
func (m *Machine) components() []snapshot.Component {
	return []snapshot.Component{
		m.cpu,
		m.mem,
		m.cia1,
		m.cia2,
		m.vic,
		m.sid,
		m.ports,
		m.drives[0],
		m.drives[1],
		m.tape,
	}
}

// Save serializes the whole machine into one self-contained blob.
func (m *Machine) Save(flags uint32) ([]byte, error) {
	return snapshot.Save(flags, m.components())
}

// Load restores a blob produced by Save. Per spec.md §7, a version
// mismatch or corrupted blob is detected before any component's state is
// touched, so a Load failing for either reason leaves the machine exactly
// as it was; see snapshot.Load for the one failure that can leave it
// partly restored.
func (m *Machine) Load(data []byte) (uint32, error) {
	return snapshot.Load(data, m.components())
}
