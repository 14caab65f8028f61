package pvr

import (
	"math"
	"testing"

	"github.com/naomigo/naomi/holly"
	"github.com/naomigo/naomi/holly/cpu"
	"github.com/naomigo/naomi/holly/video"
)

func TestPaletteBank(t *testing.T) {
	tests := map[string]struct {
		format PaletteFormat
		bank   int
		addr   cpu.Addr
		err    error
	}{
		"clut4First":    {CLUT4, 0, 0x005f_9000, nil},
		"clut4Second":   {CLUT4, 1, 0x005f_9040, nil},
		"clut4Last":     {CLUT4, 63, 0x005f_9fc0, nil},
		"clut4Overflow": {CLUT4, 64, 0, ErrInvalidBank},
		"clut4Negative": {CLUT4, -1, 0, ErrInvalidBank},
		"clut8First":    {CLUT8, 0, 0x005f_9000, nil},
		"clut8Last":     {CLUT8, 3, 0x005f_9c00, nil},
		"clut8Overflow": {CLUT8, 4, 0, ErrInvalidBank},
		"badFormat":     {PaletteFormat(7), 0, 0, errInvalidCLUT},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			addr, err := PaletteBank(tc.format, tc.bank)
			if err != tc.err {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			if addr != tc.addr {
				t.Fatalf("expected %#x, got %#x", tc.addr, addr)
			}
		})
	}
}

func TestWritePalette(t *testing.T) {
	mem := holly.NewMemory(Base, Size)
	regs := NewRegisters(mem)

	colors := []uint32{0xff00_0000, 0xffff_ffff, 0x8012_3456}
	if err := regs.WritePalette(CLUT4, 2, colors); err != nil {
		t.Fatal(err)
	}
	for i, c := range colors {
		got := mem.Load32(uint32(RegPaletteRAM) + 2*16*4 + uint32(i)*4)
		if got != c {
			t.Errorf("entry %d: expected %#x, got %#x", i, c, got)
		}
	}

	if err := regs.WritePalette(CLUT4, 0, make([]uint32, 17)); err != ErrPaletteSize {
		t.Fatalf("expected ErrPaletteSize, got %v", err)
	}
	if err := regs.WritePalette(CLUT8, 4, colors); err != ErrInvalidBank {
		t.Fatalf("expected ErrInvalidBank, got %v", err)
	}
}

func TestSetTarget(t *testing.T) {
	mem := holly.NewMemory(Base, Size)
	regs := NewRegisters(mem)

	regs.SetTarget(Target{
		CommandList:  0x0540_0000,
		ObjectBuffer: 0x0548_0000,
		TilesX:       20,
		TilesY:       15,
	})

	expected := map[Reg]uint32{
		RegSoftReset:   0,
		RegTAOLBase:    0x48_0000,
		RegTAOLLimit:   0,
		RegTAISPBase:   0x40_0000,
		RegTAISPLimit:  0,
		RegTAGlobTile:  14<<16 | 19,
		RegTANextOPB:   0x48_0000,
		RegTAAllocCtrl: 1<<20 | 3,
		RegTAListInit:  0x8000_0000,
	}
	for reg, v := range expected {
		if got := regs.Load(reg); got != v {
			t.Errorf("reg %#x: expected %#x, got %#x", reg, v, got)
		}
	}
}

func TestStartRender(t *testing.T) {
	mem := holly.NewMemory(Base, Size)
	regs := NewRegisters(mem)

	r := Render{
		CommandList: 0x0540_0000,
		Tiles:       0x0548_4b60,
		Background:  0x0548_4b00,
		Framebuffer: 0x0500_0000,
		Stride:      1280,
		ZClip:       0.2,
	}
	regs.StartRender(r)

	expected := map[Reg]uint32{
		RegRegionBase:  0x48_4b60,
		RegParamBase:   0x40_0000,
		RegFBWSOF1:     0,
		RegFBWSOF2:     1280,
		RegISPBackgndT: 1<<24 | 0x8_4b00<<1,
		RegISPBackgndD: math.Float32bits(0.2) &^ 0xf,
		RegStartRender: 0xffff_ffff,
	}
	for reg, v := range expected {
		if got := regs.Load(reg); got != v {
			t.Errorf("reg %#x: expected %#x, got %#x", reg, v, got)
		}
	}
}

func TestShowFramebuffer(t *testing.T) {
	mem := holly.NewMemory(Base, Size)
	regs := NewRegisters(mem)

	regs.ShowFramebuffer(0x0509_6000, 640*2)
	if got := regs.Load(RegFBRSOF1); got != 0x09_6000 {
		t.Errorf("field 1 at %#x", got)
	}
	if got := regs.Load(RegFBRSOF2); got != 0x09_6000+1280 {
		t.Errorf("field 2 at %#x", got)
	}
}

func TestSetupPaletteMode(t *testing.T) {
	tests := map[string]struct {
		depth video.ColorDepth
		mode  PaletteMode
	}{
		"16bpp": {video.BPP16, PaletteARGB1555},
		"32bpp": {video.BPP32, PaletteARGB8888},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			regs := NewRegisters(holly.NewMemory(Base, Size))
			regs.Setup(tc.depth)
			if got := PaletteMode(regs.Load(RegPalRAMCtrl)); got != tc.mode {
				t.Fatalf("expected palette mode %d, got %d", tc.mode, got)
			}
			if regs.Load(RegFPUCullVal) != math.Float32bits(1.0) {
				t.Error("cull value isn't 1.0")
			}
			if regs.Load(RegFogDensity) != 0xff07 {
				t.Error("fog density not set")
			}
		})
	}
}

// scanline fakes the sync status register of a beam that moves one line per
// read and wraps to line 0 after the visible area.
type scanline struct {
	*holly.Memory
	line, reads uint32
}

func (s *scanline) Load32(off uint32) uint32 {
	if off != uint32(RegSPGStatus) {
		return s.Memory.Load32(off)
	}
	s.reads++
	s.line = (s.line + 1) % 4
	return s.line
}

func TestWaitVBlank(t *testing.T) {
	s := &scanline{Memory: holly.NewMemory(Base, Size), line: 3}
	NewRegisters(s).WaitVBlank()

	// line 0 first, then 1 (rising), then 2, 3 and 0 (falling)
	if s.reads != 5 {
		t.Fatalf("expected 5 status reads, got %d", s.reads)
	}
}
