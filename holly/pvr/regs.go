// Package pvr programs the PowerVR2 core: the one-time configuration done at
// bring-up, the Tile Accelerator's list target and the render launch.
package pvr

import (
	"github.com/naomigo/naomi/holly"
	"github.com/naomigo/naomi/holly/cpu"
)

// Physical location of the PowerVR2 register block, including palette RAM.
const (
	Base cpu.Addr = 0x005f_8000
	Size          = 0x2000
)

// Reg is a register offset relative to Base.
type Reg uint32

const (
	RegID           Reg = 0x000
	RegRevision     Reg = 0x004
	RegSoftReset    Reg = 0x008 // bit 0 resets the TA
	RegStartRender  Reg = 0x014 // any write starts a render
	RegParamBase    Reg = 0x020 // command list the ISP/TSP reads
	RegRegionBase   Reg = 0x02c // tile descriptor table
	RegSpanSortCfg  Reg = 0x030
	RegFBRSOF1      Reg = 0x050 // framebuffer read address, field 1
	RegFBRSOF2      Reg = 0x054 // framebuffer read address, field 2
	RegFBWSOF1      Reg = 0x060 // framebuffer write address, field 1
	RegFBWSOF2      Reg = 0x064 // framebuffer write address, field 2
	RegFPUShadScale Reg = 0x074
	RegFPUCullVal   Reg = 0x078
	RegFPUParamCfg  Reg = 0x07c
	RegHalfOffset   Reg = 0x080
	RegFPUPerpVal   Reg = 0x084
	RegISPBackgndD  Reg = 0x088 // background plane depth
	RegISPBackgndT  Reg = 0x08c // background plane tag
	RegISPFeedCfg   Reg = 0x098
	RegFogColRAM    Reg = 0x0b0
	RegFogColVert   Reg = 0x0b4
	RegFogDensity   Reg = 0x0b8
	RegFogClampMax  Reg = 0x0bc
	RegFogClampMin  Reg = 0x0c0
	RegTextControl  Reg = 0x0e4
	RegPalRAMCtrl   Reg = 0x108
	RegSPGStatus    Reg = 0x10c
	RegTAOLBase     Reg = 0x124 // object buffer base
	RegTAISPBase    Reg = 0x128 // command list base
	RegTAOLLimit    Reg = 0x12c
	RegTAISPLimit   Reg = 0x130
	RegTAGlobTile   Reg = 0x13c // tile grid size minus one
	RegTAAllocCtrl  Reg = 0x140 // object list block sizes
	RegTAListInit   Reg = 0x144 // confirms the TA settings
	RegTANextOPB    Reg = 0x164 // where to continue when object lists overflow
	RegPaletteRAM   Reg = 0x1000
)

// Registers is the PowerVR2 register block.
type Registers struct {
	r holly.Region
}

// NewRegisters returns the register block accessed through r, which must be
// mapped at Base.
func NewRegisters(r holly.Region) *Registers {
	return &Registers{r: r}
}

func (p *Registers) Load(reg Reg) uint32 {
	return p.r.Load32(uint32(reg))
}

func (p *Registers) Store(reg Reg, v uint32) {
	p.r.Store32(uint32(reg), v)
}

// Reset pulses the TA's reset bit.
func (p *Registers) Reset() {
	p.Store(RegSoftReset, 1)
	p.Store(RegSoftReset, 0)
}

// RGB0888 packs a colour as used by the fog colour registers.
func RGB0888(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// ARGB8888 packs a colour as used by the clamp registers and 32-bit palettes.
func ARGB8888(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | RGB0888(r, g, b)
}
