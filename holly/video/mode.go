// Package video describes the video mode the PowerVR renders for. Programming
// the video output itself is done by the platform's display code, this package
// only carries what the renderer needs to know about it.
package video

import (
	"image"

	"github.com/naomigo/naomi/holly/cpu"
)

// ColorDepth is the size of a framebuffer pixel in bytes.
type ColorDepth uint32

const (
	BPP16 ColorDepth = 2
	BPP32 ColorDepth = 4
)

func (d ColorDepth) String() string {
	switch d {
	case BPP16:
		return "16bpp"
	case BPP32:
		return "32bpp"
	}
	return "invalid"
}

// Mode is the active video mode.
type Mode struct {
	Width, Height int
	Depth         ColorDepth

	// Framebuffer is the physical address of the framebuffer the next
	// render is written to.
	Framebuffer cpu.Addr
}

// Bounds returns the screen rectangle of m.
func (m Mode) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// Stride returns the size of a framebuffer line in bytes.
func (m Mode) Stride() int {
	return m.Width * int(m.Depth)
}

// Common modes of the Naomi's JVS monitors. The framebuffer defaults to the
// start of video memory.
var (
	VGA  = Mode{Width: 640, Height: 480, Depth: BPP16, Framebuffer: 0x0500_0000}
	QVGA = Mode{Width: 320, Height: 240, Depth: BPP16, Framebuffer: 0x0500_0000}
)
