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

package debug

import (
	"fmt"
	"sync"

	"github.com/vc64/core/errors"
)

// Watch is one armed bus watchpoint: a read or write to Address, optionally
// narrowed to one specific Value.
type Watch struct {
	Address    uint16
	Write      bool
	MatchValue bool
	Value      uint8
}

func (w Watch) String() string {
	kind := "read"
	if w.Write {
		kind = "write"
	}
	if w.MatchValue {
		return fmt.Sprintf("%s $%04x=$%02x", kind, w.Address, w.Value)
	}
	return fmt.Sprintf("%s $%04x", kind, w.Address)
}

// Watches is the list of currently armed bus watchpoints.
type Watches struct {
	mu   sync.Mutex
	list []Watch

	// lastAddr/lastWrite/lastValue dedup a run of identical accesses to the
	// same address, in the same direction, with the same value (e.g. the
	// CPU idling on the same address across stalled cycles) so Check reports one hit
	// per genuinely new access rather than one per cycle it happens to
	// still be live.
	hasLast   bool
	lastAddr  uint16
	lastWrite bool
	lastValue uint8
}

// NewWatches is the preferred method of initialisation for Watches.
func NewWatches() *Watches {
	return &Watches{}
}

// Add arms a new watch. It is not an error to arm the same condition twice.
func (w *Watches) Add(watch Watch) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.list = append(w.list, watch)
}

// Remove disarms the watch at position i in List's order.
func (w *Watches) Remove(i int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.list) {
		return errors.Errorf("watch #%d is not defined", i)
	}
	w.list = append(w.list[:i], w.list[i+1:]...)
	return nil
}

// Clear disarms every watch.
func (w *Watches) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.list = nil
}

// List returns a copy of every currently armed watch.
func (w *Watches) List() []Watch {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Watch, len(w.list))
	copy(out, w.list)
	return out
}

// Check reports every armed watch that matches this bus access, to be
// called by whatever owns the memory map once per CPU read/write. A repeat
// of the exact same access (same address, same direction, same value) as
// the immediately preceding call is not reported twice in a row.
func (w *Watches) Check(address uint16, write bool, value uint8) []Watch {
	w.mu.Lock()
	defer w.mu.Unlock()

	repeat := w.hasLast && w.lastAddr == address && w.lastWrite == write && w.lastValue == value
	w.hasLast, w.lastAddr, w.lastWrite, w.lastValue = true, address, write, value
	if repeat {
		return nil
	}

	var hits []Watch
	for _, watch := range w.list {
		if watch.Address != address || watch.Write != write {
			continue
		}
		if watch.MatchValue && watch.Value != value {
			continue
		}
		hits = append(hits, watch)
	}
	return hits
}
