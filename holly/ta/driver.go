package ta

import (
	"errors"
	"io"

	"github.com/naomigo/naomi/debug"
	"github.com/naomigo/naomi/holly"
	"github.com/naomigo/naomi/holly/cpu"
	"github.com/naomigo/naomi/holly/pvr"
	"github.com/naomigo/naomi/holly/texture"
	"github.com/naomigo/naomi/holly/video"
)

var (
	ErrWorkingRegion  = errors.New("ta: working region too small for layout")
	ErrNotInitialized = errors.New("ta: driver not initialized")
)

// Hardware is what the driver runs on. On the target, use NaomiHardware.
type Hardware struct {
	Work       holly.Region // mapped at Config.Base
	PVR        holly.Region // mapped at pvr.Base
	Interrupts holly.Region // mapped at holly.InterruptBase
	FIFO       io.Writer    // the TA FIFO, see holly.FIFO

	IRQ      holly.IRQ
	Notifier Notifier
}

// NaomiHardware maps the driver's regions on the target. The returned Notes
// must be woken by calling Notes.Handle from the platform's level 2 interrupt
// handler.
func NaomiHardware(cfg Config, irq holly.IRQ) (Hardware, *Notes) {
	l := NewLayout(cfg)
	intr := holly.MMIO(holly.InterruptBase, holly.InterruptSize)
	notes := NewNotes(holly.NewInterrupts(intr))
	return Hardware{
		Work:       holly.MMIO(l.Base, int(l.Size)),
		PVR:        holly.MMIO(pvr.Base, pvr.Size),
		Interrupts: intr,
		FIFO:       holly.NewFIFO(holly.MMIO(holly.FIFOBase, holly.FIFOSize)),
		IRQ:        irq,
		Notifier:   notes,
	}, notes
}

// State is the position of the driver in the frame protocol.
type State uint8

const (
	Idle             State = iota
	TargetConfigured       // after BeginCommit
	Submitting             // after the first Submit
	ListsSubmitted         // after EndCommit
	RenderLaunched         // after BeginRender, until WaitRender
)

var stateNames = [...]string{"idle", "target configured", "submitting", "lists submitted", "render launched"}

func (s State) String() string { return stateNames[s] }

// Stats counts the driver's work since it was created.
type Stats struct {
	Frames  uint64 // completed renders
	Records uint64 // submitted records, not counting end of list markers
}

// Driver is the PowerVR2 Tile Accelerator. It owns the working region and
// the TA registers; there must only be a single Driver.
//
// Driver is not safe for concurrent use. Frames are strictly sequential, and
// calls out of order are programmer errors caught by debug builds.
type Driver struct {
	cfg    Config
	layout Layout

	work holly.Region
	regs *pvr.Registers
	intr *holly.Interrupts
	fifo io.Writer
	irq  holly.IRQ

	poll poller
	park parker

	twiddle *texture.TwiddleTable

	mode    video.Mode
	grid    Grid
	waiting Lists
	state   State
	stats   Stats

	eol [ShortRecord]byte
}

// NewDriver returns a driver for mode, with the tile descriptors and
// background plane of the working region set up. Call Init before the first
// frame.
func NewDriver(hw Hardware, cfg Config, mode video.Mode) (*Driver, error) {
	l := NewLayout(cfg)
	if hw.Work.Size() < int(l.Size) {
		return nil, ErrWorkingRegion
	}

	d := &Driver{
		cfg:    cfg,
		layout: l,
		work:   hw.Work,
		regs:   pvr.NewRegisters(hw.PVR),
		intr:   holly.NewInterrupts(hw.Interrupts),
		fifo:   hw.FIFO,
		irq:    hw.IRQ,
	}
	d.poll = poller{intr: d.intr, timeout: cfg.Timeout}
	d.park = parker{n: hw.Notifier, timeout: cfg.Timeout}

	if err := d.SetMode(mode); err != nil {
		return nil, err
	}
	return d, nil
}

// Layout returns the working region layout.
func (d *Driver) Layout() Layout { return d.layout }

// Grid returns the tile grid of the current mode.
func (d *Driver) Grid() Grid { return d.grid }

// State returns the position in the frame protocol.
func (d *Driver) State() State { return d.state }

// Stats returns the work counters.
func (d *Driver) Stats() Stats { return d.stats }

// Init configures the PowerVR, waits for the hardware to settle and enables
// the list and render completion interrupts. It also rewrites the tile
// descriptors and the background plane. It runs with interrupts disabled and
// may be called repeatedly.
func (d *Driver) Init() {
	s := d.irq.Disable()
	defer d.irq.Restore(s)

	d.regs.Setup(d.mode.Depth)
	d.regs.WaitVBlank()
	d.intr.Enable(completionInterrupts)

	BuildTileDescriptors(d.work, d.layout, d.grid)
	ClearBackground(d.work, d.layout)

	if d.twiddle == nil {
		d.twiddle = texture.BuildTwiddleTable()
	}
}

// Shutdown disables the interrupts enabled by Init.
func (d *Driver) Shutdown() {
	s := d.irq.Disable()
	defer d.irq.Restore(s)

	d.intr.Disable(completionInterrupts)
}

// SetMode switches to a new video mode and rebuilds the tile descriptors for
// it. It must not be called in the middle of a frame.
func (d *Driver) SetMode(m video.Mode) error {
	debug.Assertf(d.state == Idle, "ta: SetMode in state %v", d.state)

	g, err := d.layout.Grid(m)
	if err != nil {
		return err
	}
	d.mode, d.grid = m, g

	BuildTileDescriptors(d.work, d.layout, g)
	ClearBackground(d.work, d.layout)
	return nil
}

// SetFramebuffer selects the framebuffer the next render writes to.
func (d *Driver) SetFramebuffer(addr cpu.Addr) {
	d.mode.Framebuffer = addr
}

// StoreTexture writes a square 16-bit image twiddled into dst, see
// texture.TwiddleTable.Store.
func (d *Driver) StoreTexture(dst holly.Region, size int, src []uint16) error {
	if d.twiddle == nil {
		return ErrNotInitialized
	}
	return d.twiddle.Store(dst, size, src)
}

// completion returns the waiting strategy for the caller's context.
func (d *Driver) completion() Completion {
	if holly.CurrentContext(d.irq) == holly.Interrupt {
		return &d.poll
	}
	return &d.park
}
