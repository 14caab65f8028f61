package ta

import (
	"errors"
	"time"

	"github.com/naomigo/naomi/holly"
)

var ErrTimeout = errors.New("ta: timeout waiting for the PowerVR")

// Event is a completion the driver waits for.
type Event uint8

const (
	LoadOpaque Event = iota
	LoadTransparent
	LoadPunchThrough
	RenderDone

	numEvents
)

var eventFlags = [numEvents]holly.InterruptFlag{
	LoadOpaque:       holly.OpaqueListDone,
	LoadTransparent:  holly.TransparentListDone,
	LoadPunchThrough: holly.PunchThroughListDone,
	RenderDone:       holly.RenderDoneTSP,
}

var eventNames = [numEvents]string{
	LoadOpaque:       "load opaque",
	LoadTransparent:  "load transparent",
	LoadPunchThrough: "load punch-through",
	RenderDone:       "render done",
}

// Flag returns the interrupt raised on ev.
func (ev Event) Flag() holly.InterruptFlag { return eventFlags[ev] }

func (ev Event) String() string { return eventNames[ev] }

// completionInterrupts are enabled by Init and disabled by Shutdown.
const completionInterrupts = holly.OpaqueListDone | holly.TransparentListDone |
	holly.PunchThroughListDone | holly.RenderDoneTSP

// Notifier lets a goroutine block until the interrupt handler observed an
// event. Notify must be called before the hardware is started, so a
// completion which raises its interrupt before Wait is called isn't lost.
type Notifier interface {
	Notify(ev Event)

	// Wait blocks until ev happened after the last Notify. A negative
	// timeout waits forever. It reports false on timeout.
	Wait(ev Event, timeout time.Duration) bool
}

// Completion waits for hardware events in one execution context.
type Completion interface {
	// Expect announces that Await(ev) will follow. It must be called
	// before the hardware operation is started.
	Expect(ev Event)
	// Await blocks until ev happened and clears it.
	Await(ev Event) error
}

// poller spins on the interrupt status. It is the only option while
// interrupts are disabled.
type poller struct {
	intr    *holly.Interrupts
	timeout time.Duration
}

func (p *poller) Expect(Event) {}

func (p *poller) Await(ev Event) error {
	flag := ev.Flag()
	var deadline time.Time
	if p.timeout > 0 {
		deadline = time.Now().Add(p.timeout)
	}
	for p.intr.Pending()&flag == 0 {
		if p.timeout > 0 && time.Now().After(deadline) {
			return ErrTimeout
		}
	}
	p.intr.Ack(flag)
	return nil
}

// parker puts the goroutine to sleep until the interrupt handler wakes it.
type parker struct {
	n       Notifier
	timeout time.Duration
}

func (p *parker) Expect(ev Event) { p.n.Notify(ev) }

func (p *parker) Await(ev Event) error {
	timeout := p.timeout
	if timeout <= 0 {
		timeout = -1
	}
	if !p.n.Wait(ev, timeout) {
		return ErrTimeout
	}
	return nil
}

// Notes is a Notifier for goroutines, woken by calling Handle from the
// platform's level 2 interrupt handler.
type Notes struct {
	intr  *holly.Interrupts
	notes [numEvents]holly.Note
}

// NewNotes returns Notes acknowledging interrupts on intr.
func NewNotes(intr *holly.Interrupts) *Notes {
	return &Notes{intr: intr}
}

func (p *Notes) Notify(ev Event) { p.notes[ev].Clear() }

func (p *Notes) Wait(ev Event, timeout time.Duration) bool {
	return p.notes[ev].Sleep(timeout)
}

// Handle acknowledges all pending and enabled TA interrupts and wakes their
// waiters. It never blocks.
func (p *Notes) Handle() {
	pending := p.intr.Pending() & p.intr.Mask()
	for ev := range numEvents {
		if flag := ev.Flag(); pending&flag != 0 {
			p.intr.Ack(flag)
			p.notes[ev].Wakeup()
		}
	}
}
