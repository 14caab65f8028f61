package ta

import "github.com/naomigo/naomi/holly"

const (
	tileLast     = 0x8000_0000 // last tile in the table
	tileAutosort = 0x2000_0000 // autosort translucent polygons
	tileDummy    = 0x1000_0000
	listEmpty    = 0x8000_0000 // no object list for this polygon type
)

// TileDescriptor is one record of the tile descriptor table: a control word
// followed by the object list pointers for opaque, opaque modifier,
// translucent, translucent modifier and punch-through polygons.
type TileDescriptor [tileWords]uint32

// Pos returns the tile's position in the grid.
func (d TileDescriptor) Pos() (x, y int) {
	return int(d[0]>>2) & 0x3f, int(d[0]>>8) & 0x3f
}

// Last reports whether d ends the table.
func (d TileDescriptor) Last() bool { return d[0]&tileLast != 0 }

// Opaque returns the 24-bit address of the tile's opaque object list.
func (d TileDescriptor) Opaque() uint32 { return d[1] }

// BuildTileDescriptors writes the tile descriptor table for grid g into the
// working region r. The table starts with a dummy tile, without which the
// hardware renders the first real tile incorrectly. Only opaque polygons get
// an object list.
//
// It must be run again after the grid changes, before the next render.
func BuildTileDescriptors(r holly.Region, l Layout, g Grid) {
	off := l.Tiles
	put := func(d TileDescriptor) {
		for _, w := range d {
			r.Store32(off, w)
			off += 4
		}
	}

	put(TileDescriptor{tileDummy, listEmpty, listEmpty, listEmpty, listEmpty, listEmpty})

	opaque := l.Addr(l.OpaqueBuffer).PVR()
	for x := range g.X {
		for y := range g.Y {
			ctrl := uint32(tileAutosort | y<<8 | x<<2)
			if x == g.X-1 && y == g.Y-1 {
				ctrl |= tileLast
			}
			slot := uint32(x+y*g.X) * l.Slot
			put(TileDescriptor{ctrl, opaque + slot, listEmpty, listEmpty, listEmpty, listEmpty})
		}
	}
}

// TileDescriptors reads back n descriptors from the table in r, including the
// leading dummy tile.
func TileDescriptors(r holly.Region, l Layout, n int) []TileDescriptor {
	ds := make([]TileDescriptor, n)
	off := l.Tiles
	for i := range ds {
		for j := range ds[i] {
			ds[i][j] = r.Load32(off)
			off += 4
		}
	}
	return ds
}

// ClearBackground zeroes the background plane parameters: a mode word
// followed by the bottom left, top left and bottom right vertices with
// position, texture coordinates, base and offset colour. The result is a
// black background.
func ClearBackground(r holly.Region, l Layout) {
	holly.Fill32(r, l.Background, backgroundWords, 0)
}
