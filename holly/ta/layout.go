// Package ta drives the PowerVR2's Tile Accelerator: it lays out the working
// region the hardware reads from, feeds geometry records through the TA FIFO
// and synchronizes with list loading and rendering.
//
// A frame goes through
//
//	BeginCommit, Submit..., EndCommit, BeginRender, WaitRender
//
// in this order. Driver.Render combines the last two.
package ta

import (
	"errors"
	"time"

	"github.com/naomigo/naomi/holly/cpu"
	"github.com/naomigo/naomi/holly/video"
)

// TileSize is the edge length of a screen tile in pixels.
const TileSize = 32

const (
	backgroundWords = 24
	tileWords       = 6
)

var (
	ErrGridTooLarge = errors.New("ta: video mode exceeds maximum tile grid")
	ErrGridEmpty    = errors.New("ta: video mode smaller than one tile")
)

// Config sizes the working region. The sizes are fixed for the lifetime of a
// Driver and must cover every video mode it will be used with.
type Config struct {
	// Physical address of the working region in video memory.
	Base cpu.Addr

	CommandListSize int
	OpaqueSlotSize  int // object buffer bytes per tile

	MaxTilesX, MaxTilesY int

	// Depth of the background plane.
	ZClip float32

	// Timeout bounds every wait for the hardware if positive. Waits are
	// unbounded otherwise.
	Timeout time.Duration
}

// DefaultConfig returns the configuration for modes up to 640x480.
func DefaultConfig() Config {
	return Config{
		Base:            0x0540_0000,
		CommandListSize: 512 * 1024,
		OpaqueSlotSize:  64,
		MaxTilesX:       640 / TileSize,
		MaxTilesY:       480 / TileSize,
		ZClip:           0.2,
	}
}

// Grid is the number of tiles covering the screen.
type Grid struct {
	X, Y int
}

// Tiles returns the number of tiles in g.
func (g Grid) Tiles() int { return g.X * g.Y }

// Layout partitions the working region into, in this order, the command list,
// the opaque object buffer, the background plane and the tile descriptor
// table. All offsets are relative to Base.
type Layout struct {
	Base cpu.Addr

	CommandList  uint32
	OpaqueBuffer uint32
	Background   uint32
	Tiles        uint32
	Size         uint32

	Slot       uint32 // object buffer bytes per tile
	MaxX, MaxY int
}

// NewLayout computes the layout for cfg.
func NewLayout(cfg Config) Layout {
	maxTiles := cfg.MaxTilesX * cfg.MaxTilesY

	l := Layout{
		Base: cfg.Base,
		Slot: uint32(cfg.OpaqueSlotSize),
		MaxX: cfg.MaxTilesX,
		MaxY: cfg.MaxTilesY,
	}
	l.CommandList = 0
	l.OpaqueBuffer = l.CommandList + uint32(cfg.CommandListSize)
	l.Background = l.OpaqueBuffer + l.Slot*uint32(maxTiles)
	l.Tiles = l.Background + backgroundWords*4
	l.Size = l.Tiles + tileWords*4*uint32(maxTiles+1)
	return l
}

// Addr returns the physical address of offset off.
func (l Layout) Addr(off uint32) cpu.Addr {
	return l.Base + cpu.Addr(off)
}

// Grid returns the tile grid for m.
func (l Layout) Grid(m video.Mode) (Grid, error) {
	g := Grid{X: m.Width / TileSize, Y: m.Height / TileSize}
	if g.X < 1 || g.Y < 1 {
		return Grid{}, ErrGridEmpty
	}
	if g.X > l.MaxX || g.Y > l.MaxY {
		return Grid{}, ErrGridTooLarge
	}
	return g, nil
}
