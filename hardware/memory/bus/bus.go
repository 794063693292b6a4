// Package bus defines the memory bus concept. For an explanation see the
// memory package documentation.
package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU. Every memory area - VIC, SID, the two CIAs, the drive's VIA pair, and
// the memory map itself - implements this interface, so the CPU never needs
// to know which part of the address space it's actually talking to.
type CPUBus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// DebuggerBus defines the meta-operations for all memory areas: Peek and
// Poke, i.e. inspection and mutation outside of the normal operation of the
// machine.
type DebuggerBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}
