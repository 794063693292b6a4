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

package machine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vc64/core/debug"
	"github.com/vc64/core/emulation"
	"github.com/vc64/core/machine"
)

func TestNewDefaultsToPaused(t *testing.T) {
	m := machine.New()
	assert.Equal(t, emulation.Paused, m.State())
}

// the worker never advances the CPU while paused, so a machine that is
// launched and immediately halted again exercises the goroutine's startup
// and shutdown path without depending on what garbage instruction stream a
// ROM-less CPU would actually execute.
func TestLaunchThenHaltJoinsCleanly(t *testing.T) {
	m := machine.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.NoError(t, m.Launch(ctx))
	// a second Launch on an already-launched machine is rejected
	assert.Error(t, m.Launch(ctx))

	m.Halt()
	m.Join()

	assert.Equal(t, emulation.Paused, m.State())
}

func TestContextCancelStopsWorker(t *testing.T) {
	m := machine.New()
	ctx, cancel := context.WithCancel(context.Background())

	assert.NoError(t, m.Launch(ctx))
	cancel()
	m.Join()
}

func TestBreakpointsAndWatchesAccessible(t *testing.T) {
	m := machine.New()
	m.Breakpoints().SetHard(0xc000)
	assert.True(t, m.Breakpoints().Check(0xc000))

	m.Watches().Add(debug.Watch{Address: 0xd020})
	assert.Len(t, m.Watches().List(), 1)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	a := machine.New()
	blob, err := a.Save(0x7)
	assert.NoError(t, err)

	b := machine.New()
	flags, err := b.Load(blob)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x7), flags)
}

func TestFrameAccessorBeforeLaunch(t *testing.T) {
	m := machine.New()
	_, _, _, count := m.Frame()
	assert.Equal(t, uint64(0), count, "no frame has been published yet")
}

func TestPullAudioOnEmptyRingIsZero(t *testing.T) {
	m := machine.New()
	assert.Equal(t, 0, m.PullAudio(nil))
}
