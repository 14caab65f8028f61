// Package texture converts image data into the layouts the PowerVR's texture
// unit reads.
//
// Non-stride textures are stored twiddled: texel (u, v) lives at the index
// whose bits alternate between the bits of v and u, starting with v in bit 0.
// This is the Morton order of the texture cache.
package texture

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"

	"github.com/naomigo/naomi/holly"
)

// MaxSize is the largest texture edge the PowerVR supports.
const MaxSize = 1024

var (
	ErrSize        = errors.New("texture: size must be a power of two from 8 to 1024")
	ErrNilBuffer   = errors.New("texture: nil buffer")
	ErrShortBuffer = errors.New("texture: buffer too small")
)

// TwiddleTable maps a coordinate to its bits spread to the even bit positions.
type TwiddleTable [MaxSize]uint32

// BuildTwiddleTable computes the table for all coordinates up to MaxSize.
func BuildTwiddleTable() *TwiddleTable {
	var t TwiddleTable
	for i := range t {
		t[i] = interleave(uint32(i))
	}
	return &t
}

func interleave(x uint32) uint32 {
	var v uint32
	for bit := 0; bit < 10; bit++ {
		v |= (x >> bit & 1) << (2 * bit)
	}
	return v
}

// ValidSize reports whether size is a supported texture edge.
func ValidSize(size int) bool {
	return size >= 8 && size <= MaxSize && size&(size-1) == 0
}

// Index returns the twiddled texel index of pixel (col, row).
func (t *TwiddleTable) Index(col, row int) uint32 {
	return t[row] | t[col]<<1
}

func check(size int, pixels int) error {
	if !ValidSize(size) {
		return ErrSize
	}
	if pixels < size*size {
		return ErrShortBuffer
	}
	return nil
}

// Store writes the square, row-major 16-bit image src of edge size into dst as
// a twiddled texture. Regions returned by holly.MMIO write through the
// uncached mirror, so the texture is visible to the texture unit as soon as
// Store returns.
//
// Nothing is written if an error is returned.
func (t *TwiddleTable) Store(dst holly.Region, size int, src []uint16) error {
	if !ValidSize(size) {
		return ErrSize
	}
	if dst == nil || src == nil {
		return ErrNilBuffer
	}
	if err := check(size, len(src)); err != nil {
		return err
	}
	if dst.Size() < size*size*2 {
		return ErrShortBuffer
	}

	for row := range size {
		line := src[row*size : (row+1)*size]
		for col, px := range line {
			dst.Store16(t.Index(col, row)<<1, px)
		}
	}
	return nil
}

// Load reads a twiddled texture of edge size from src and returns it as a
// row-major image.
func (t *TwiddleTable) Load(src holly.Region, size int) ([]uint16, error) {
	if !ValidSize(size) {
		return nil, ErrSize
	}
	if src == nil {
		return nil, ErrNilBuffer
	}
	if src.Size() < size*size*2 {
		return nil, ErrShortBuffer
	}

	dst := make([]uint16, size*size)
	for row := range size {
		for col := range size {
			dst[row*size+col] = src.Load16(t.Index(col, row) << 1)
		}
	}
	return dst, nil
}

// Twiddle is like Store but writes into a slice.
func (t *TwiddleTable) Twiddle(dst, src []uint16, size int) error {
	if err := check(size, min(len(dst), len(src))); err != nil {
		return err
	}
	for row := range size {
		for col := range size {
			dst[t.Index(col, row)] = src[row*size+col]
		}
	}
	return nil
}

// Detwiddle is the inverse of Twiddle.
func (t *TwiddleTable) Detwiddle(dst, src []uint16, size int) error {
	if err := check(size, min(len(dst), len(src))); err != nil {
		return err
	}
	for row := range size {
		for col := range size {
			dst[row*size+col] = src[t.Index(col, row)]
		}
	}
	return nil
}

// SizeOf returns the edge of a square texture of n bytes in format f, or 0.
func SizeOf(n int, f Format) int {
	for s := 8; s <= MaxSize; s <<= 1 {
		if s*s*f.Bytes() == n {
			return s
		}
	}
	return 0
}

// DecodeBytes decodes a raw texture as written by Encode, or by Twiddle for
// twiddled textures. If size is 0, it is derived from len(data).
func DecodeBytes(data []byte, size int, f Format, twiddled bool) (*image.NRGBA, error) {
	if size == 0 {
		size = SizeOf(len(data), f)
	}
	if !ValidSize(size) {
		return nil, ErrSize
	}
	if !twiddled {
		return Decode(bytes.NewReader(data), size, f)
	}

	if f.Bytes() != 2 {
		return nil, ErrFormat
	}
	if len(data) < size*size*2 {
		return nil, ErrShortBuffer
	}
	src := make([]uint16, size*size)
	for i := range src {
		src[i] = binary.LittleEndian.Uint16(data[2*i:])
	}
	pix := make([]uint16, len(src))
	if err := BuildTwiddleTable().Detwiddle(pix, src, size); err != nil {
		return nil, err
	}
	return Image(pix, size, f)
}
