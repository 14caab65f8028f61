package holly

import (
	"testing"
	"time"
)

func TestNoteWakeupBeforeSleep(t *testing.T) {
	var n Note
	n.Clear()
	n.Wakeup()
	if !n.Sleep(0) {
		t.Fatal("wakeup before sleep was lost")
	}
}

func TestNoteTimeout(t *testing.T) {
	var n Note
	n.Clear()
	if n.Sleep(10 * time.Millisecond) {
		t.Fatal("sleep returned without wakeup")
	}
}

func TestNoteWakeupFromOtherGoroutine(t *testing.T) {
	var n Note
	n.Clear()
	go func() {
		time.Sleep(time.Millisecond)
		n.Wakeup()
	}()
	if !n.Sleep(-1) {
		t.Fatal("sleep forever returned false")
	}
}

func TestNoteZeroValue(t *testing.T) {
	var n Note
	if !n.Sleep(0) {
		t.Fatal("zero note should be woken")
	}
	n.Wakeup() // must not panic on an unarmed note
}
