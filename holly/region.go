// Package holly provides access to the Holly system ASIC. Holly hosts the
// PowerVR2 core, its Tile Accelerator FIFO and the interrupt controller that
// reports completions of both.
package holly

import (
	"encoding/binary"

	"github.com/naomigo/naomi/debug"
	"github.com/naomigo/naomi/holly/cpu"
)

// Region is a window of memory or registers at a fixed physical address. On
// the target it is backed by MMIO through the uncached mirror, see MMIO. Tests
// use Memory, which has the same layout but lives in RAM.
//
// Offsets are in bytes and must be aligned to the access size.
type Region interface {
	Addr() cpu.Addr
	Size() int

	Load32(off uint32) uint32
	Store32(off uint32, v uint32)
	Load16(off uint32) uint16
	Store16(off uint32, v uint16)
}

// Memory is a Region backed by a byte slice. The SH-4 is little endian, so is
// Memory.
type Memory struct {
	addr cpu.Addr
	buf  []byte
}

// NewMemory returns a zeroed Memory of size bytes pretending to live at
// physical address addr.
func NewMemory(addr cpu.Addr, size int) *Memory {
	return &Memory{addr: addr, buf: make([]byte, size)}
}

func (m *Memory) Addr() cpu.Addr { return m.addr }
func (m *Memory) Size() int      { return len(m.buf) }

// Bytes returns the backing slice.
func (m *Memory) Bytes() []byte { return m.buf }

func (m *Memory) Load32(off uint32) uint32 {
	debug.Assert(off&0x3 == 0, "holly: unaligned 32-bit load")
	return binary.LittleEndian.Uint32(m.buf[off:])
}

func (m *Memory) Store32(off uint32, v uint32) {
	debug.Assert(off&0x3 == 0, "holly: unaligned 32-bit store")
	binary.LittleEndian.PutUint32(m.buf[off:], v)
}

func (m *Memory) Load16(off uint32) uint16 {
	debug.Assert(off&0x1 == 0, "holly: unaligned 16-bit load")
	return binary.LittleEndian.Uint16(m.buf[off:])
}

func (m *Memory) Store16(off uint32, v uint16) {
	debug.Assert(off&0x1 == 0, "holly: unaligned 16-bit store")
	binary.LittleEndian.PutUint16(m.buf[off:], v)
}

// Fill32 stores v into n consecutive words of r starting at off.
func Fill32(r Region, off uint32, n int, v uint32) {
	for i := range n {
		r.Store32(off+uint32(i)<<2, v)
	}
}
