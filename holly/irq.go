package holly

import "sync/atomic"

// Context is the execution regime a driver call is made from.
type Context uint8

const (
	// Ordinary code may block on a Note.
	Ordinary Context = iota
	// Interrupt handlers and code running with interrupts disabled must
	// never block, they poll the hardware instead.
	Interrupt
)

func (c Context) String() string {
	if c == Interrupt {
		return "interrupt"
	}
	return "ordinary"
}

// IRQState is the interrupt state returned by IRQ.Disable.
type IRQState uint32

// IRQ is the CPU's interrupt masking as provided by the platform.
type IRQ interface {
	// Disable masks all interrupts and returns the previous state.
	Disable() IRQState
	// Restore reinstates a state returned by Disable.
	Restore(IRQState)
	// Disabled reports whether interrupts are currently masked.
	Disabled() bool
}

// CurrentContext returns the execution context the caller runs in.
func CurrentContext(irq IRQ) Context {
	if irq.Disabled() {
		return Interrupt
	}
	return Ordinary
}

// SoftIRQ is an IRQ which only tracks the masking state. It serves hosts
// without real interrupts and tests, where a disabled SoftIRQ stands for
// running inside an interrupt handler.
type SoftIRQ struct {
	disabled atomic.Bool
}

func (p *SoftIRQ) Disable() IRQState {
	if p.disabled.Swap(true) {
		return 1
	}
	return 0
}

func (p *SoftIRQ) Restore(s IRQState) { p.disabled.Store(s != 0) }
func (p *SoftIRQ) Disabled() bool     { return p.disabled.Load() }
