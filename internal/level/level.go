// Package level loads the plain-text tile maps the game runs on.
// A map is one character class per tile, row-major, rows separated by
// newlines: '0' is open floor, '1' is a wall, '2' is the starting goal
// tile. Any other character is skipped and does not consume a tile slot.
package level

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
)

// Tile is one parsed map cell.
type Tile byte

const (
	TileOpen Tile = iota
	TileWall
	TileGoal
)

// Level is a parsed map: a row-major tile slice with fixed dimensions.
// The invariant len(Tiles) == Width*Height always holds; rows shorter
// than the widest row are padded with open tiles.
type Level struct {
	Width  int
	Height int
	Tiles  []Tile
}

// At returns the tile at (x, y), or TileOpen when out of range.
func (l *Level) At(x, y int) Tile {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return TileOpen
	}
	return l.Tiles[x+l.Width*y]
}

// Parse reads map data from raw bytes.
// It fails when the data contains no tiles at all.
func Parse(data []byte) (*Level, error) {
	var rows [][]Tile

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		var row []Tile
		for _, ch := range scanner.Text() {
			switch ch {
			case '0':
				row = append(row, TileOpen)
			case '1':
				row = append(row, TileWall)
			case '2':
				row = append(row, TileGoal)
			default:
				// Unknown characters do not consume a tile slot.
			}
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("level: cannot scan map data: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("level: map contains no tiles")
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	lvl := &Level{
		Width:  width,
		Height: len(rows),
		Tiles:  make([]Tile, 0, width*len(rows)),
	}
	for _, row := range rows {
		lvl.Tiles = append(lvl.Tiles, row...)
		for i := len(row); i < width; i++ {
			lvl.Tiles = append(lvl.Tiles, TileOpen)
		}
	}
	return lvl, nil
}

// Load reads and parses a map file. A missing or unreadable file is an
// error; callers treat it as fatal before the game loop starts.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: cannot read map %s: %w", path, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level: cannot parse map %s: %w", path, err)
	}
	return lvl, nil
}
