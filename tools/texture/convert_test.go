package texture

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/naomigo/naomi/holly/texture"
	"golang.org/x/image/colornames"
)

func checkerboard(n int, a, b color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	for y := range n {
		for x := range n {
			c := a
			if (x/4+y/4)%2 == 1 {
				c = b
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestConvertSizes(t *testing.T) {
	src := checkerboard(16, colornames.Red, colornames.Blue)
	tests := map[string]struct {
		opt  options
		want int
	}{
		"ARGB1555":         {options{format: "ARGB1555"}, 16 * 16 * 2},
		"ARGB8888":         {options{format: "ARGB8888"}, 16 * 16 * 4},
		"RGB565 scaled":    {options{format: "RGB565", size: 32}, 32 * 32 * 2},
		"ARGB4444 twiddle": {options{format: "ARGB4444", twiddle: true}, 16 * 16 * 2},
		"GRAY8":            {options{format: "GRAY8", size: 8}, 8 * 8},
		"CLUT8":            {options{format: "CLUT8", colors: 256}, 16 * 16},
		"CLUT4":            {options{format: "CLUT4", colors: 256}, 16 * 16 / 2},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := convert(src, tc.opt)
			if err != nil {
				t.Fatal(err)
			}
			if len(res.pix) != tc.want {
				t.Errorf("got %d bytes, want %d", len(res.pix), tc.want)
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	square := checkerboard(16, colornames.Red, colornames.Blue)
	tests := map[string]struct {
		src image.Image
		opt options
		err error
	}{
		"not square":    {image.NewNRGBA(image.Rect(0, 0, 16, 8)), options{format: "RGB565"}, nil},
		"bad size":      {square, options{format: "RGB565", size: 24}, texture.ErrSize},
		"unknown":       {square, options{format: "YUV422"}, texture.ErrFormat},
		"twiddle 32bpp": {square, options{format: "ARGB8888", twiddle: true}, errTwiddle},
		"twiddle CLUT8": {square, options{format: "CLUT8", colors: 16, twiddle: true}, errTwiddle},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := convert(tc.src, tc.opt)
			if err == nil {
				t.Fatal("no error")
			}
			if tc.err != nil && !errors.Is(err, tc.err) {
				t.Errorf("got %v, want %v", err, tc.err)
			}
		})
	}
}

func TestConvertTwiddled(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	src.Set(1, 0, color.White)

	res, err := convert(src, options{format: "ARGB1555", twiddle: true})
	if err != nil {
		t.Fatal(err)
	}
	// pixel (1,0) is texel 2
	if v := binary.LittleEndian.Uint16(res.pix[2*2:]); v != 0xffff {
		t.Errorf("texel 2 = %#x, want white", v)
	}
	if v := binary.LittleEndian.Uint16(res.pix[1*2:]); v != 0 {
		t.Errorf("texel 1 = %#x, want transparent", v)
	}
}

func TestConvertCLUT(t *testing.T) {
	src := checkerboard(16, colornames.Red, colornames.Blue)

	res, err := convert(src, options{format: "CLUT4", colors: 16})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(res.palette) / 4; n < 2 || n > 16 {
		t.Fatalf("%d palette entries", n)
	}
	entry := func(i byte) uint32 {
		return binary.LittleEndian.Uint32(res.palette[int(i)*4:])
	}
	// texels (0,0) and (1,0) are red, (4,0) is blue
	first, second := res.pix[0]&0xf, res.pix[0]>>4
	if first != second {
		t.Errorf("neighbouring red texels use entries %d and %d", first, second)
	}
	if got := entry(first); got != 0xffff_0000 {
		t.Errorf("red texel maps to %#x", got)
	}
	if got := entry(res.pix[2] & 0xf); got != 0xff00_00ff {
		t.Errorf("blue texel maps to %#x", got)
	}
}

func TestConvertBackground(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	res, err := convert(src, options{format: "ARGB8888", bg: colornames.Lime})
	if err != nil {
		t.Fatal(err)
	}
	if v := binary.LittleEndian.Uint32(res.pix); v != 0xff00_ff00 {
		t.Errorf("got %#x, want opaque lime", v)
	}
}
