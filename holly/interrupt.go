package holly

import "github.com/naomigo/naomi/holly/cpu"

// Physical location of Holly's interrupt status and mask registers.
const (
	InterruptBase cpu.Addr = 0x005f_6900
	InterruptSize          = 0x40
)

// Register offsets relative to InterruptBase
const (
	istnrm  = 0x00 // normal interrupt status, write 1 to clear
	istext  = 0x04 // external interrupt status
	isterr  = 0x08 // error interrupt status
	iml2nrm = 0x10 // normal interrupts routed to IRL level 2
	iml4nrm = 0x20 // normal interrupts routed to IRL level 4
	iml6nrm = 0x30 // normal interrupts routed to IRL level 6
)

// InterruptFlag is a bit in the normal interrupt status and mask registers.
type InterruptFlag uint32

const (
	RenderDoneVideo InterruptFlag = 1 << iota
	RenderDoneISP
	RenderDoneTSP // the last tile was written to the framebuffer
	VBlankIn
	VBlankOut
	HBlank
	YUVDone
	OpaqueListDone // TA finished loading the opaque list
	OpaqueModifierListDone
	TransparentListDone
	TransparentModifierListDone
)

const PunchThroughListDone InterruptFlag = 1 << 21

// Interrupts controls the normal interrupts routed to the level 2 interrupt
// line.
//
// Interrupts is not safe for concurrent use. Enable and Disable do a
// read-modify-write of the mask and must be called with interrupts disabled.
type Interrupts struct {
	r Region
}

// NewInterrupts returns the interrupt controller accessed through r, which
// must be mapped at InterruptBase.
func NewInterrupts(r Region) *Interrupts {
	return &Interrupts{r: r}
}

// Pending returns all raised normal interrupts, masked or not.
func (p *Interrupts) Pending() InterruptFlag {
	return InterruptFlag(p.r.Load32(istnrm))
}

// Ack clears the interrupts in flags.
func (p *Interrupts) Ack(flags InterruptFlag) {
	p.r.Store32(istnrm, uint32(flags))
}

// Mask returns the currently enabled interrupts.
func (p *Interrupts) Mask() InterruptFlag {
	return InterruptFlag(p.r.Load32(iml2nrm))
}

// Enable unmasks each interrupt in flags which isn't unmasked already.
func (p *Interrupts) Enable(flags InterruptFlag) {
	for bit := InterruptFlag(1); bit != 0; bit <<= 1 {
		if flags&bit == 0 {
			continue
		}
		if mask := p.Mask(); mask&bit == 0 {
			p.r.Store32(iml2nrm, uint32(mask|bit))
		}
	}
}

// Disable masks each interrupt in flags which isn't masked already.
func (p *Interrupts) Disable(flags InterruptFlag) {
	for bit := InterruptFlag(1); bit != 0; bit <<= 1 {
		if flags&bit == 0 {
			continue
		}
		if mask := p.Mask(); mask&bit != 0 {
			p.r.Store32(iml2nrm, uint32(mask&^bit))
		}
	}
}
