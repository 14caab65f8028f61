package ta

import (
	"encoding/binary"

	"github.com/naomigo/naomi/holly"
	"github.com/naomigo/naomi/holly/pvr"
)

// machine emulates the parts of Holly the driver talks to. The TA raises the
// list done interrupts on an end of list record and the core raises render
// done as soon as rendering is started. Raised interrupts which are enabled
// run the handler right away, unless interrupts are disabled.
type machine struct {
	work  *holly.Memory
	pvr   *pvrRegs
	intr  statusRegs
	fifo  *taFIFO
	irq   holly.SoftIRQ
	notes *countingNotifier

	interrupts *holly.Interrupts

	stuck   bool // never raise any interrupt
	starts  int
	records [][]byte
}

func newMachine(cfg Config) *machine {
	l := NewLayout(cfg)
	m := &machine{
		work: holly.NewMemory(l.Base, int(l.Size)),
		intr: statusRegs{holly.NewMemory(holly.InterruptBase, holly.InterruptSize)},
	}
	m.pvr = &pvrRegs{Memory: holly.NewMemory(pvr.Base, pvr.Size), m: m}
	m.fifo = &taFIFO{m: m}
	m.interrupts = holly.NewInterrupts(m.intr)
	m.notes = &countingNotifier{Notes: NewNotes(m.interrupts)}
	return m
}

func (m *machine) hardware() Hardware {
	return Hardware{
		Work:       m.work,
		PVR:        m.pvr,
		Interrupts: m.intr,
		FIFO:       m.fifo,
		IRQ:        &m.irq,
		Notifier:   m.notes,
	}
}

func (m *machine) raise(flags holly.InterruptFlag) {
	if m.stuck || flags == 0 {
		return
	}
	m.intr.Memory.Store32(0, m.intr.Load32(0)|uint32(flags))
	if m.interrupts.Mask()&flags != 0 && !m.irq.Disabled() {
		m.notes.Handle()
	}
}

// statusRegs makes the interrupt status register write 1 to clear.
type statusRegs struct{ *holly.Memory }

func (r statusRegs) Store32(off uint32, v uint32) {
	if off == 0 {
		v = r.Load32(0) &^ v
	}
	r.Memory.Store32(off, v)
}

type pvrRegs struct {
	*holly.Memory
	m     *machine
	frame bool
}

func (r *pvrRegs) Load32(off uint32) uint32 {
	if pvr.Reg(off) == pvr.RegSPGStatus {
		r.frame = !r.frame
		if r.frame {
			return 0
		}
		return 0x100
	}
	return r.Memory.Load32(off)
}

func (r *pvrRegs) Store32(off uint32, v uint32) {
	r.Memory.Store32(off, v)
	if pvr.Reg(off) == pvr.RegStartRender {
		r.m.starts++
		r.m.raise(holly.RenderDoneTSP)
	}
}

type taFIFO struct {
	m     *machine
	lists holly.InterruptFlag
}

func (f *taFIFO) Write(p []byte) (int, error) {
	f.m.records = append(f.m.records, append([]byte(nil), p...))

	ctrl := binary.LittleEndian.Uint32(p)
	switch ctrl >> 29 {
	case 0: // end of list
		f.m.raise(f.lists)
		f.lists = 0
	case 4, 5:
		switch ctrl >> 24 & 7 {
		case 0:
			f.lists |= holly.OpaqueListDone
		case 2:
			f.lists |= holly.TransparentListDone
		case 4:
			f.lists |= holly.PunchThroughListDone
		}
	}
	return len(p), nil
}

type countingNotifier struct {
	*Notes
	notified [numEvents]int
}

func (n *countingNotifier) Notify(ev Event) {
	n.notified[ev]++
	n.Notes.Notify(ev)
}

func record(size int, ctrl uint32) []byte {
	rec := make([]byte, size)
	binary.LittleEndian.PutUint32(rec, ctrl)
	return rec
}
