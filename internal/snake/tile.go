// Package snake implements the grid-based snake simulation: the tile
// grid, the player-controlled head, the trailing body segments and the
// per-frame orchestration that ties them together. It contains pure
// game logic with no external dependencies so it stays testable.
package snake

// TileType is the closed set of tile states. A tile is exactly one of
// these at any time; consumers branch with a single switch.
type TileType int

const (
	TileNonBlocked TileType = iota
	TileBlocked
	TileActive
	TileNonActive
)

// String returns a human-readable name for the tile type.
func (t TileType) String() string {
	switch t {
	case TileNonBlocked:
		return "non-blocked"
	case TileBlocked:
		return "blocked"
	case TileActive:
		return "active"
	case TileNonActive:
		return "non-active"
	default:
		return "unknown"
	}
}
