package holly

import (
	"encoding/binary"
	"errors"

	"github.com/naomigo/naomi/holly/cpu"
)

// Physical location of the Tile Accelerator's polygon FIFO.
const (
	FIFOBase cpu.Addr = 0x1000_0000
	FIFOSize          = 0x0080_0000
)

// FIFOBurst is the transfer granularity of the TA FIFO.
const FIFOBurst = 32

var ErrFIFOAlign = errors.New("holly: TA FIFO writes must be a multiple of 32 bytes")

// FIFO writes TA parameters into the Tile Accelerator. Each Write starts again
// at the FIFO's base address.
type FIFO struct {
	r Region
}

// NewFIFO returns a FIFO writing through r, which must be mapped at FIFOBase.
func NewFIFO(r Region) *FIFO {
	return &FIFO{r: r}
}

func (f *FIFO) Write(p []byte) (n int, err error) {
	if len(p)%FIFOBurst != 0 {
		return 0, ErrFIFOAlign
	}
	for off := 0; off < len(p); off += 4 {
		f.r.Store32(uint32(off), binary.LittleEndian.Uint32(p[off:]))
	}
	return len(p), nil
}
