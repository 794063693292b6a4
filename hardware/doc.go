// Package hardware has no code of its own; it exists to namespace the
// C64's individual chip packages (cpu, memory, cia, vic, sid, drive, ports,
// datasette, clocks, instance), each modeled independently and wired
// together by machine.Machine, which owns the single worker goroutine that
// steps them cycle by cycle.
package hardware

