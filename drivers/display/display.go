package display

import (
	"time"

	"github.com/naomigo/naomi/holly/cpu"
	"github.com/naomigo/naomi/holly/pvr"
	"github.com/naomigo/naomi/holly/ta"
	"github.com/naomigo/naomi/holly/video"
)

// Display implements a vsynced, double buffered framebuffer rendered by the
// Tile Accelerator. The two framebuffers are placed back to back starting at
// the mode's framebuffer address.
type Display struct {
	ta   *ta.Driver
	regs *pvr.Registers
	mode video.Mode

	// VSync makes Swap wait for the vertical blank after flipping.
	VSync bool

	read, write cpu.Addr
	start       time.Time

	rendertime, frametime time.Duration
}

func NewDisplay(d *ta.Driver, regs *pvr.Registers, mode video.Mode) *Display {
	p := &Display{
		ta:    d,
		regs:  regs,
		mode:  mode,
		VSync: true,
		read:  mode.Framebuffer,
		write: mode.Framebuffer + cpu.Addr(mode.Stride()*mode.Height),
	}
	regs.ShowFramebuffer(p.read, mode.Stride())
	p.start = time.Now()
	return p
}

// Begin starts committing the next frame, which will be rendered into the
// framebuffer that isn't shown.
func (p *Display) Begin() {
	p.ta.SetFramebuffer(p.write)
	p.ta.BeginCommit()
}

// Submit adds a TA record to the frame started by Begin.
func (p *Display) Submit(rec []byte) error {
	return p.ta.Submit(rec)
}

// Swap renders the frame and shows it once the render is complete. Blocks
// until the framebuffer is shown.
func (p *Display) Swap() error {
	if err := p.ta.EndCommit(); err != nil {
		return err
	}
	if err := p.ta.Render(); err != nil {
		return err
	}
	p.rendertime = time.Since(p.start)

	p.read, p.write = p.write, p.read
	p.regs.ShowFramebuffer(p.read, p.mode.Stride())

	if p.VSync {
		p.regs.WaitVBlank()
	}

	p.frametime = time.Since(p.start)
	p.start = time.Now()

	return nil
}

// Framebuffer returns the address of the framebuffer currently shown.
func (p *Display) Framebuffer() cpu.Addr {
	return p.read
}

func (p *Display) FPS() float32 {
	return 1e9 / float32(p.frametime)
}

// Duration returns the time it took to commit and render the last frame.
func (p *Display) Duration() time.Duration {
	return p.rendertime
}
