package texture

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/naomigo/naomi/holly/texture"
	"golang.org/x/image/draw"
)

// Output formats in addition to texture.Format
const (
	formatCLUT8 = "CLUT8"
	formatCLUT4 = "CLUT4"
	formatGray8 = "GRAY8"
)

var errTwiddle = errors.New("twiddling needs a 16-bit format")

type options struct {
	format  string
	size    int // 0 keeps the image size
	twiddle bool
	dither  bool
	colors  int
	bg      color.Color // nil keeps transparency
}

// result holds the converted texture and, for palettized formats, the palette
// as ARGB8888 entries.
type result struct {
	pix     []byte
	palette []byte
}

func convert(src image.Image, opt options) (*result, error) {
	size := opt.size
	if size == 0 {
		b := src.Bounds()
		if b.Dx() != b.Dy() {
			return nil, fmt.Errorf("%v image isn't square, set a size", b.Size())
		}
		size = b.Dx()
	}
	if !texture.ValidSize(size) {
		return nil, fmt.Errorf("size %d: %w", size, texture.ErrSize)
	}

	if opt.bg != nil {
		canvas := image.NewNRGBA(src.Bounds())
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(opt.bg), image.Point{}, draw.Src)
		draw.Draw(canvas, canvas.Bounds(), src, src.Bounds().Min, draw.Over)
		src = canvas
	}
	img := texture.Scale(src, size)

	switch opt.format {
	case formatCLUT8:
		return clut(img, min(opt.colors, 256), 8, opt)
	case formatCLUT4:
		return clut(img, min(opt.colors, 16), 4, opt)
	case formatGray8:
		if opt.twiddle {
			return nil, errTwiddle
		}
		gray := image.NewGray(img.Bounds())
		draw.Draw(gray, gray.Bounds(), img, image.Point{}, draw.Src)
		return &result{pix: gray.Pix}, nil
	}

	f, err := texture.ParseFormat(opt.format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opt.format, err)
	}
	if f.Bytes() != 2 {
		if opt.twiddle {
			return nil, errTwiddle
		}
		var buf bytes.Buffer
		err := texture.Encode(&buf, img, f)
		return &result{pix: buf.Bytes()}, err
	}

	pix, err := texture.Pixels16(img, f)
	if err != nil {
		return nil, err
	}
	if opt.twiddle {
		tw := make([]uint16, len(pix))
		if err := texture.BuildTwiddleTable().Twiddle(tw, pix, size); err != nil {
			return nil, err
		}
		pix = tw
	}
	out := make([]byte, 0, len(pix)*2)
	for _, v := range pix {
		out = binary.LittleEndian.AppendUint16(out, v)
	}
	return &result{pix: out}, nil
}

// clut quantizes img to a palette of at most n colors and returns the indices
// with bpp bits per texel. Two 4-bit texels share a byte, the left one in the
// low nibble.
func clut(img *image.NRGBA, n, bpp int, opt options) (*result, error) {
	if opt.twiddle {
		return nil, errTwiddle
	}
	if n < 1 {
		return nil, fmt.Errorf("palette of %d colors", n)
	}

	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, n), img)

	dst := image.NewPaletted(img.Bounds(), p)
	var d draw.Drawer = draw.Src
	if opt.dither {
		d = draw.FloydSteinberg
	}
	d.Draw(dst, dst.Bounds(), img, image.Point{})

	r := &result{pix: dst.Pix}
	if bpp == 4 {
		r.pix = make([]byte, len(dst.Pix)/2)
		for i := range r.pix {
			r.pix[i] = dst.Pix[2*i]&0xf | dst.Pix[2*i+1]<<4
		}
	}
	for _, c := range p {
		r.palette = binary.LittleEndian.AppendUint32(r.palette, texture.ARGB8888.Pack(c))
	}
	return r, nil
}
