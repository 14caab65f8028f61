package texture

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/draw"
)

// Format is a texel or framebuffer pixel format.
type Format uint8

const (
	ARGB1555 Format = iota
	RGB565
	ARGB4444
	ARGB8888
)

var ErrFormat = errors.New("texture: unsupported format")

var formatNames = [...]string{
	ARGB1555: "ARGB1555",
	RGB565:   "RGB565",
	ARGB4444: "ARGB4444",
	ARGB8888: "ARGB8888",
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "invalid"
}

// ParseFormat returns the format named s, as printed by Format.String.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if name == s {
			return Format(f), nil
		}
	}
	return 0, ErrFormat
}

// Bytes returns the size of a pixel in bytes.
func (f Format) Bytes() int {
	if f == ARGB8888 {
		return 4
	}
	return 2
}

// Pack converts c to its representation in f.
func (f Format) Pack(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	r, g, b, a := uint32(n.R), uint32(n.G), uint32(n.B), uint32(n.A)
	switch f {
	case ARGB1555:
		return a>>7<<15 | r>>3<<10 | g>>3<<5 | b>>3
	case RGB565:
		return r>>3<<11 | g>>2<<5 | b>>3
	case ARGB4444:
		return a>>4<<12 | r>>4<<8 | g>>4<<4 | b>>4
	default:
		return a<<24 | r<<16 | g<<8 | b
	}
}

// Unpack is the inverse of Pack. Low bits lost by Pack are filled by
// repeating the high bits.
func (f Format) Unpack(v uint32) color.NRGBA {
	switch f {
	case ARGB1555:
		return color.NRGBA{
			R: expand(v>>10, 5), G: expand(v>>5, 5), B: expand(v, 5),
			A: uint8(0xff * (v >> 15 & 1)),
		}
	case RGB565:
		return color.NRGBA{R: expand(v>>11, 5), G: expand(v>>5, 6), B: expand(v, 5), A: 0xff}
	case ARGB4444:
		return color.NRGBA{
			R: expand(v>>8, 4), G: expand(v>>4, 4), B: expand(v, 4),
			A: expand(v>>12, 4),
		}
	default:
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(v >> 24)}
	}
}

func expand(v uint32, bits uint) uint8 {
	v &= 1<<bits - 1
	v <<= 8 - bits
	return uint8(v | v>>bits)
}

// Scale returns img resized to a size x size square.
func Scale(img image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	if img.Bounds().Size() == dst.Bounds().Size() {
		draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	}
	return dst
}

// Pixels16 returns img as row-major pixels in a 16-bit format, the source
// layout expected by TwiddleTable.Store.
func Pixels16(img image.Image, f Format) ([]uint16, error) {
	if f.Bytes() != 2 {
		return nil, ErrFormat
	}
	r := img.Bounds()
	pix := make([]uint16, 0, r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			pix = append(pix, uint16(f.Pack(img.At(x, y))))
		}
	}
	return pix, nil
}

// Pixels32 returns img as row-major ARGB8888 pixels.
func Pixels32(img image.Image) []uint32 {
	r := img.Bounds()
	pix := make([]uint32, 0, r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			pix = append(pix, ARGB8888.Pack(img.At(x, y)))
		}
	}
	return pix
}

// Image returns 16-bit row-major pixels of a size x size texture as an image.
func Image(pix []uint16, size int, f Format) (*image.NRGBA, error) {
	if f.Bytes() != 2 {
		return nil, ErrFormat
	}
	if len(pix) < size*size {
		return nil, ErrShortBuffer
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i, v := range pix[:size*size] {
		img.SetNRGBA(i%size, i/size, f.Unpack(uint32(v)))
	}
	return img, nil
}

// Encode writes img to w as little endian pixels in format f, row by row.
func Encode(w io.Writer, img image.Image, f Format) error {
	r := img.Bounds()
	line := make([]byte, 0, r.Dx()*f.Bytes())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		line = line[:0]
		for x := r.Min.X; x < r.Max.X; x++ {
			v := f.Pack(img.At(x, y))
			if f.Bytes() == 2 {
				line = binary.LittleEndian.AppendUint16(line, uint16(v))
			} else {
				line = binary.LittleEndian.AppendUint32(line, v)
			}
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a size x size image written by Encode.
func Decode(r io.Reader, size int, f Format) (*image.NRGBA, error) {
	bpp := f.Bytes()
	buf := make([]byte, size*size*bpp)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i := range size * size {
		var v uint32
		if bpp == 2 {
			v = uint32(binary.LittleEndian.Uint16(buf[i*2:]))
		} else {
			v = binary.LittleEndian.Uint32(buf[i*4:])
		}
		img.SetNRGBA(i%size, i/size, f.Unpack(v))
	}
	return img, nil
}
