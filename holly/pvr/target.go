package pvr

import (
	"math"

	"github.com/naomigo/naomi/holly/cpu"
)

// Object list block sizes for RegTAAllocCtrl
const (
	blocksizeNotUsed = 0
	blocksize32      = 1
	blocksize64      = 2
	blocksize128     = 3
)

const (
	allocGrowDown = 1 << 20

	allocCtrl = allocGrowDown |
		blocksizeNotUsed<<16 | // punch-through
		blocksizeNotUsed<<12 | // translucent modifier
		blocksizeNotUsed<<8 | // translucent
		blocksizeNotUsed<<4 | // opaque modifier
		blocksize128<<0 // opaque

	listInitConfirm = 0x8000_0000
)

// Target is where the TA stores what it receives through the FIFO.
type Target struct {
	CommandList  cpu.Addr
	ObjectBuffer cpu.Addr

	// Size of the tile grid, at least 1x1.
	TilesX, TilesY int
}

// SetTarget resets the TA and points it to a new command list and object
// buffer. Only opaque polygons get object list blocks.
func (p *Registers) SetTarget(t Target) {
	cmdl := t.CommandList.PVR()
	objbuf := t.ObjectBuffer.PVR()

	p.Reset()

	p.Store(RegTAOLBase, objbuf)
	p.Store(RegTAOLLimit, 0)
	p.Store(RegTAISPBase, cmdl)
	p.Store(RegTAISPLimit, 0)
	p.Store(RegTAGlobTile, uint32(t.TilesY-1)<<16|uint32(t.TilesX-1))
	p.Store(RegTANextOPB, objbuf)
	p.Store(RegTAAllocCtrl, allocCtrl)

	p.Store(RegTAListInit, listInitConfirm)
}

// Render describes a render pass over a finished command list.
type Render struct {
	CommandList cpu.Addr
	Tiles       cpu.Addr // tile descriptor table
	Background  cpu.Addr // background plane parameters, inside the command list area

	// Framebuffer and its line stride in bytes. The second field starts
	// one line below the first one.
	Framebuffer cpu.Addr
	Stride      int

	// Depth of the background plane.
	ZClip float32
}

const (
	bgTextureDisable = 1 << 24
	bgTagMask        = 0x00ff_fffc
	zclipMask        = 0xffff_fff0
	startRender      = 0xffff_ffff
)

// BackgroundTag returns the ISP background tag for r. The tag addresses the
// background parameters relative to the command list, not absolutely.
func BackgroundTag(r Render) uint32 {
	bg := (uint32(r.Background) - uint32(r.CommandList)) & bgTagMask
	return bgTextureDisable | bg<<1
}

// StartRender programs the render registers and starts rendering.
func (p *Registers) StartRender(r Render) {
	fb := r.Framebuffer.PVR()

	p.Store(RegRegionBase, r.Tiles.PVR())
	p.Store(RegParamBase, r.CommandList.PVR())
	p.Store(RegFBWSOF1, fb)
	p.Store(RegFBWSOF2, fb+uint32(r.Stride))

	p.Store(RegISPBackgndT, BackgroundTag(r))
	p.Store(RegISPBackgndD, math.Float32bits(r.ZClip)&zclipMask)

	p.Store(RegStartRender, startRender)
}

// ShowFramebuffer makes the video output scan out the framebuffer at fb, with
// lines stride bytes apart.
func (p *Registers) ShowFramebuffer(fb cpu.Addr, stride int) {
	addr := fb.PVR()
	p.Store(RegFBRSOF1, addr)
	p.Store(RegFBRSOF2, addr+uint32(stride))
}
