// Package cpu describes how the SH-4 sees the Holly bus. Everything the
// graphics core touches is addressed physically; the CPU reaches it through
// the P1 (cached) and P2 (uncached) mirrors.
package cpu

// The CPU's clock speed
const ClockSpeed = 200e6

// Memory areas in privileged mode
const (
	P1 uintptr = 0x8000_0000 // unmapped, cached
	P2 uintptr = 0xa000_0000 // unmapped, uncached
	P4 uintptr = 0xe000_0000 // store queues and control registers
)

const physicalMask = 0x1fff_ffff

// Addr represents a physical memory address
type Addr uint32

// PhysicalAddress returns the physical address of a virtual address in P1 or
// P2.
func PhysicalAddress(addr uintptr) Addr {
	return Addr(addr & physicalMask)
}

// Cached returns the address of a in the cached P1 mirror.
func (a Addr) Cached() uintptr { return P1 | uintptr(a) }

// Uncached returns the address of a in the uncached P2 mirror. Writes through
// this mirror reach memory in program order, which is what the PowerVR's
// texture and list fetches expect.
func (a Addr) Uncached() uintptr { return P2 | uintptr(a) }

// PVR returns the 24-bit offset into video memory the PowerVR registers
// expect.
func (a Addr) PVR() uint32 { return uint32(a) & 0x00ff_ffff }
