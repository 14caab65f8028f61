package pvr

import (
	"errors"

	"github.com/naomigo/naomi/holly/cpu"
)

// PaletteBase is the physical address of palette RAM.
const PaletteBase = Base + cpu.Addr(RegPaletteRAM)

// PaletteFormat selects how palette RAM is split into banks.
type PaletteFormat int

const (
	CLUT4 PaletteFormat = iota // 64 banks of 16 entries
	CLUT8                      // 4 banks of 256 entries
)

// Entries returns the number of colours in a bank.
func (f PaletteFormat) Entries() int {
	if f == CLUT4 {
		return 16
	}
	return 256
}

// Banks returns the number of banks palette RAM holds.
func (f PaletteFormat) Banks() int {
	if f == CLUT4 {
		return 64
	}
	return 4
}

var (
	ErrInvalidBank = errors.New("pvr: invalid palette bank")
	ErrPaletteSize = errors.New("pvr: too many palette entries")
	errInvalidCLUT = errors.New("pvr: invalid palette format")
)

const paletteEntrySize = 4

func paletteOffset(f PaletteFormat, bank int) (uint32, error) {
	if f != CLUT4 && f != CLUT8 {
		return 0, errInvalidCLUT
	}
	if bank < 0 || bank >= f.Banks() {
		return 0, ErrInvalidBank
	}
	return uint32(bank * f.Entries() * paletteEntrySize), nil
}

// PaletteBank returns the physical address of a palette bank.
func PaletteBank(f PaletteFormat, bank int) (cpu.Addr, error) {
	off, err := paletteOffset(f, bank)
	if err != nil {
		return 0, err
	}
	return PaletteBase + cpu.Addr(off), nil
}

// WritePalette stores colors into a palette bank. The colours must already be
// in the palette mode configured by Setup.
func (p *Registers) WritePalette(f PaletteFormat, bank int, colors []uint32) error {
	off, err := paletteOffset(f, bank)
	if err != nil {
		return err
	}
	if len(colors) > f.Entries() {
		return ErrPaletteSize
	}
	for i, c := range colors {
		p.Store(RegPaletteRAM+Reg(off)+Reg(i*paletteEntrySize), c)
	}
	return nil
}
