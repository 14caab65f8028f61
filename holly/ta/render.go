package ta

import (
	"github.com/naomigo/naomi/debug"
	"github.com/naomigo/naomi/holly/pvr"
)

// BeginRender starts rendering the committed lists into the current
// framebuffer. Outside of interrupt handlers the wait for the render is
// announced before the hardware is started.
func (d *Driver) BeginRender() {
	debug.Assertf(d.state == ListsSubmitted, "ta: BeginRender in state %v", d.state)

	d.completion().Expect(RenderDone)

	d.regs.StartRender(pvr.Render{
		CommandList: d.layout.Addr(d.layout.CommandList),
		Tiles:       d.layout.Addr(d.layout.Tiles),
		Background:  d.layout.Addr(d.layout.Background),
		Framebuffer: d.mode.Framebuffer,
		Stride:      d.mode.Stride(),
		ZClip:       d.cfg.ZClip,
	})
	d.state = RenderLaunched
}

// WaitRender blocks until the render started by BeginRender has finished.
func (d *Driver) WaitRender() error {
	debug.Assertf(d.state == RenderLaunched, "ta: WaitRender in state %v", d.state)

	if err := d.completion().Await(RenderDone); err != nil {
		return err
	}
	d.state = Idle
	d.stats.Frames++
	return nil
}

// Render renders the committed lists and waits until the framebuffer is
// complete.
func (d *Driver) Render() error {
	d.BeginRender()
	return d.WaitRender()
}
