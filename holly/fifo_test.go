package holly

import (
	"bytes"
	"testing"
)

func TestFIFOWrite(t *testing.T) {
	mem := NewMemory(FIFOBase, 64)
	fifo := NewFIFO(mem)

	rec := make([]byte, 64)
	for i := range rec {
		rec[i] = byte(i)
	}

	n, err := fifo.Write(rec)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(rec) {
		t.Fatalf("expected %d bytes written, got %d", len(rec), n)
	}
	if !bytes.Equal(mem.Bytes(), rec) {
		t.Fatalf("fifo content mismatch\n%x\n%x", mem.Bytes(), rec)
	}
}

func TestFIFOWriteUnaligned(t *testing.T) {
	mem := NewMemory(FIFOBase, 64)
	fifo := NewFIFO(mem)

	n, err := fifo.Write(make([]byte, 33))
	if err != ErrFIFOAlign || n != 0 {
		t.Fatalf("expected ErrFIFOAlign, got %d, %v", n, err)
	}
}

func TestSoftIRQ(t *testing.T) {
	var irq SoftIRQ
	if CurrentContext(&irq) != Ordinary {
		t.Fatal("expected ordinary context")
	}

	outer := irq.Disable()
	inner := irq.Disable()
	if CurrentContext(&irq) != Interrupt {
		t.Fatal("expected interrupt context")
	}
	irq.Restore(inner)
	if !irq.Disabled() {
		t.Fatal("nested restore enabled interrupts")
	}
	irq.Restore(outer)
	if irq.Disabled() {
		t.Fatal("outer restore didn't enable interrupts")
	}
}
