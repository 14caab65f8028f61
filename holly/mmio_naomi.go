//go:build naomi

package holly

import (
	"sync/atomic"
	"unsafe"

	"github.com/naomigo/naomi/holly/cpu"
)

type mmio struct {
	addr cpu.Addr
	base uintptr
	size int
}

// MMIO returns the Region of size bytes at physical address addr. All accesses
// go through the uncached P2 mirror.
func MMIO(addr cpu.Addr, size int) Region {
	return &mmio{addr: addr, base: addr.Uncached(), size: size}
}

func (r *mmio) Addr() cpu.Addr { return r.addr }
func (r *mmio) Size() int      { return r.size }

func (r *mmio) Load32(off uint32) uint32 {
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(r.base + uintptr(off))))
}

func (r *mmio) Store32(off uint32, v uint32) {
	atomic.StoreUint32((*uint32)(unsafe.Pointer(r.base+uintptr(off))), v)
}

// 16-bit accesses are only used on video memory, never on registers, so they
// don't need to be volatile.
func (r *mmio) Load16(off uint32) uint16 {
	return *(*uint16)(unsafe.Pointer(r.base + uintptr(off)))
}

func (r *mmio) Store16(off uint32, v uint16) {
	*(*uint16)(unsafe.Pointer(r.base + uintptr(off))) = v
}
