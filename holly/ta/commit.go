package ta

import (
	"github.com/naomigo/naomi/debug"
	"github.com/naomigo/naomi/holly"
	"github.com/naomigo/naomi/holly/pvr"
)

// BeginCommit starts a frame. It resets the TA and points it to the command
// list and object buffer of the working region.
//
// The previous frame's render must have finished, since the hardware would
// otherwise read a command list that is being overwritten.
func (d *Driver) BeginCommit() {
	debug.Assertf(d.state == Idle, "ta: BeginCommit in state %v", d.state)

	d.waiting = 0
	d.regs.SetTarget(pvr.Target{
		CommandList:  d.layout.Addr(d.layout.CommandList),
		ObjectBuffer: d.layout.Addr(d.layout.OpaqueBuffer),
		TilesX:       d.grid.X,
		TilesY:       d.grid.Y,
	})
	d.state = TargetConfigured
}

// Submit sends a 32 or 64 byte record to the TA. Apart from the control word
// in the first four bytes, the record isn't interpreted.
//
// Polygon and sprite headers mark their list as used by this frame, so that
// EndCommit waits for it to load. Marking announces the wait to the Notifier
// and is skipped in interrupt context, where EndCommit won't wait for any
// list.
func (d *Driver) Submit(rec []byte) error {
	if len(rec) != ShortRecord && len(rec) != LongRecord {
		return ErrRecordSize
	}
	debug.Assertf(d.state == TargetConfigured || d.state == Submitting,
		"ta: Submit in state %v", d.state)

	if holly.CurrentContext(d.irq) == holly.Ordinary {
		if list := Classify(controlWord(rec)) &^ d.waiting; list != 0 {
			d.waiting |= list
			for _, ev := range list.Events() {
				d.park.Expect(ev)
			}
		}
	}

	if _, err := d.fifo.Write(rec); err != nil {
		return err
	}
	d.state = Submitting
	d.stats.Records++
	return nil
}

// EndCommit terminates the lists with an end of list record and waits until
// the TA loaded every list used by this frame. Lists that received no
// polygons are not waited for, their interrupt won't be raised.
func (d *Driver) EndCommit() error {
	debug.Assertf(d.state == TargetConfigured || d.state == Submitting,
		"ta: EndCommit in state %v", d.state)

	if _, err := d.fifo.Write(d.eol[:]); err != nil {
		return err
	}

	c := d.completion()
	for _, ev := range d.waiting.Events() {
		if err := c.Await(ev); err != nil {
			return err
		}
	}
	d.state = ListsSubmitted
	return nil
}

// Waiting returns the lists used by the current frame.
func (d *Driver) Waiting() Lists { return d.waiting }
