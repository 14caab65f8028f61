package pvr

import (
	"github.com/naomigo/naomi/debug"
	"github.com/naomigo/naomi/holly/video"
)

// PaletteMode is the pixel format of palette RAM entries.
type PaletteMode uint32

const (
	PaletteARGB1555 PaletteMode = iota
	PaletteRGB565
	PaletteARGB4444
	PaletteARGB8888
)

// PaletteModeFor returns the palette format matching a framebuffer depth, so
// that palettes can be filled with the same colour values as the framebuffer.
func PaletteModeFor(depth video.ColorDepth) PaletteMode {
	if depth == video.BPP16 {
		return PaletteARGB1555
	}
	return PaletteARGB8888
}

const (
	fpuParams       = 0x0027_df77 // undocumented, from the system ROM
	fogDensity      = 0xff07
	cullOne         = 0x3f80_0000 // 1.0f
	spgScanlineMask = 0x1ff

	feedCfg = 0x200<<14 | // translucent cache size
		0x200<<4 | // punch-through cache size
		1<<3 | // polygon discard
		0<<0 // auto-sort translucent triangles
)

// Setup does the one-time configuration of sorting, culling, fog, clamping and
// palettes, and resets the TA.
func (p *Registers) Setup(depth video.ColorDepth) {
	debug.Assert(depth == video.BPP16 || depth == video.BPP32, "pvr: invalid color depth")

	p.Store(RegISPFeedCfg, feedCfg)
	p.Store(RegFPUCullVal, cullOne)
	p.Store(RegFPUPerpVal, 0)
	p.Store(RegSpanSortCfg, 1<<8|1) // offset and span sort

	grey := RGB0888(127, 127, 127)
	p.Store(RegFogColRAM, grey)
	p.Store(RegFogColVert, grey)
	p.Store(RegFogClampMin, ARGB8888(0, 0, 0, 0))
	p.Store(RegFogClampMax, ARGB8888(255, 255, 255, 255))

	p.Store(RegHalfOffset, 0x7) // sample pixels at (0.5, 0.5)
	p.Store(RegFPUShadScale, 0)
	p.Store(RegFPUParamCfg, fpuParams)

	p.Reset()

	p.Store(RegTextControl, 0) // stride of stride textures
	p.Store(RegFogDensity, fogDensity)
	p.Store(RegFogColVert, grey)
	p.Store(RegFogColRAM, grey)

	p.Store(RegPalRAMCtrl, uint32(PaletteModeFor(depth)))
}

// WaitVBlank spins until the beam has entered and left the vertical blank
// once.
func (p *Registers) WaitVBlank() {
	for p.Load(RegSPGStatus)&spgScanlineMask == 0 {
		// wait
	}
	for p.Load(RegSPGStatus)&spgScanlineMask != 0 {
		// wait
	}
}
