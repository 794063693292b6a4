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

import "github.com/vc64/core/hardware/memory"

// vicBus implements vic.Bus: it adds CIA2 PA's current bank selection to
// the VIC-II's bank-relative address before handing the access to the
// memory map's own raw-RAM/char-ROM view, which is independent of the
// CPU-facing LORAM/HIRAM/CHAREN bank switching.
type vicBus struct {
	mem  *memory.MemoryMap
	cia2 *cia2PortA
}

func (b *vicBus) Read(address uint16) (uint8, error) {
	return b.mem.ReadGraphicsByte(b.cia2.bank, address), nil
}
