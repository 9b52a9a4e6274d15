package snake

import (
	"github.com/avolkov/gridsnake/internal/core"
	"github.com/avolkov/gridsnake/internal/level"
)

// Grid is a passive tile store: a fixed-size row-major tile array plus
// the mapping between screen-space (pixel) coordinates and grid cells.
// The shape is immutable after construction; only per-tile state changes.
type Grid struct {
	tiles    []TileType
	width    int
	height   int
	cellSize int
}

// NewGrid builds a grid from parsed level data. The level's tile slice
// always satisfies len == width*height, so the index invariant
// index(x,y) = x + width*y holds for every valid cell.
func NewGrid(lvl *level.Level, cellSize int) *Grid {
	tiles := make([]TileType, len(lvl.Tiles))
	for i, t := range lvl.Tiles {
		switch t {
		case level.TileWall:
			tiles[i] = TileBlocked
		case level.TileGoal:
			tiles[i] = TileActive
		default:
			tiles[i] = TileNonBlocked
		}
	}
	return &Grid{
		tiles:    tiles,
		width:    lvl.Width,
		height:   lvl.Height,
		cellSize: cellSize,
	}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// CellSize returns the size of one cell in pixels.
func (g *Grid) CellSize() int {
	return g.cellSize
}

// CellOf converts a screen-space position to grid coordinates by
// integer division. It always succeeds; the result may be out of range.
func (g *Grid) CellOf(pos core.Vec) (int, int) {
	return int(pos.X) / g.cellSize, int(pos.Y) / g.cellSize
}

// index returns the linear tile index for (x, y), or false when the
// coordinates fall outside the grid.
func (g *Grid) index(x, y int) (int, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, false
	}
	return x + g.width*y, true
}

// TypeAt returns the tile type at (x, y).
// Out-of-range coordinates report TileNonBlocked.
func (g *Grid) TypeAt(x, y int) TileType {
	i, ok := g.index(x, y)
	if !ok {
		return TileNonBlocked
	}
	return g.tiles[i]
}

// IsBlocked reports whether the tile at (x, y) is blocked.
// Out-of-range and negative coordinates are safe and report false.
func (g *Grid) IsBlocked(x, y int) bool {
	i, ok := g.index(x, y)
	return ok && g.tiles[i] == TileBlocked
}

// IsActive reports whether the tile at (x, y) is the active goal.
// Out-of-range and negative coordinates are safe and report false.
func (g *Grid) IsActive(x, y int) bool {
	i, ok := g.index(x, y)
	return ok && g.tiles[i] == TileActive
}

// Activate marks the tile at (x, y) as the active goal.
// Out-of-range coordinates are silently ignored.
func (g *Grid) Activate(x, y int) {
	if i, ok := g.index(x, y); ok {
		g.tiles[i] = TileActive
	}
}

// Deactivate marks the tile at (x, y) as a consumed goal.
// Out-of-range coordinates are silently ignored.
func (g *Grid) Deactivate(x, y int) {
	if i, ok := g.index(x, y); ok {
		g.tiles[i] = TileNonActive
	}
}

// Render draws every tile into the screen buffer, one screen cell per
// grid cell, offset by (offX, offY). Blocked tiles draw black, the
// active goal green, everything else as dark background.
func (g *Grid) Render(dst *core.Screen, offX, offY int) {
	for i, t := range g.tiles {
		x := i % g.width
		y := i / g.width

		cell := core.Cell{Rune: '·', Color: core.ColorDarkGray}
		switch t {
		case TileBlocked:
			cell = core.Cell{Rune: '█', Color: core.ColorBlack}
		case TileActive:
			cell = core.Cell{Rune: '●', Color: core.ColorGreen}
		}
		dst.SetCell(offX+x, offY+y, cell)
	}
}
