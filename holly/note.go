package holly

import (
	"sync"
	"time"
)

// Note is a one-shot wakeup between an interrupt handler and a single
// sleeping goroutine, with the semantics of rtos.Note from Embedded Go.
//
// The waiter calls Clear before starting the hardware operation and Sleep
// afterwards. A Wakeup which happens between the two isn't lost: the note
// stays woken until the next Clear.
//
// The zero value is a woken note.
type Note struct {
	mu      sync.Mutex
	cleared bool
	woken   chan struct{}
}

// Clear arms the note for the next Sleep.
func (n *Note) Clear() {
	n.mu.Lock()
	n.cleared = true
	n.woken = make(chan struct{})
	n.mu.Unlock()
}

// Wakeup wakes the goroutine sleeping on n, or lets its next Sleep return
// immediately.
func (n *Note) Wakeup() {
	n.mu.Lock()
	if n.cleared {
		n.cleared = false
		close(n.woken)
	}
	n.mu.Unlock()
}

// Sleep waits until n is woken. A negative timeout waits forever. It reports
// whether n was woken before the timeout expired.
func (n *Note) Sleep(timeout time.Duration) bool {
	n.mu.Lock()
	if !n.cleared {
		n.mu.Unlock()
		return true
	}
	woken := n.woken
	n.mu.Unlock()

	if timeout < 0 {
		<-woken
		return true
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-woken:
		return true
	case <-t.C:
		return false
	}
}
