package snake

import (
	"github.com/avolkov/gridsnake/internal/core"
)

// Heading is the head's movement direction.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingDown
	HeadingLeft
	HeadingUp
)

// Vector returns the unit displacement for the heading.
func (h Heading) Vector() core.Vec {
	switch h {
	case HeadingUp:
		return core.Vec{X: 0, Y: -1}
	case HeadingDown:
		return core.Vec{X: 0, Y: 1}
	case HeadingLeft:
		return core.Vec{X: -1, Y: 0}
	default:
		return core.Vec{X: 1, Y: 0}
	}
}

// Opposite returns the reversed heading.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	default:
		return HeadingLeft
	}
}

// String returns a human-readable name for the heading.
func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}

// Head is the player-controlled leading cell. Its position is in screen
// space and stays aligned to the cell size.
type Head struct {
	pos      core.Vec
	heading  Heading
	cellSize float64
	active   bool
}

// NewHead creates an active head at the given position facing right.
func NewHead(pos core.Vec, cellSize float64) *Head {
	return &Head{
		pos:      pos,
		heading:  HeadingRight,
		cellSize: cellSize,
		active:   true,
	}
}

// Pos returns the head's screen-space position.
func (h *Head) Pos() core.Vec {
	return h.pos
}

// Heading returns the current movement direction.
func (h *Head) Heading() Heading {
	return h.heading
}

// ApplyInput updates the heading from the frame's pressed directions.
// Directions are evaluated in fixed precedence (up, down, left, right);
// the first pressed direction that is not the exact opposite of the
// current heading wins. At most one heading change per call.
func (h *Head) ApplyInput(in core.InputFrame) {
	if !h.active {
		return
	}

	candidates := []struct {
		action  core.Action
		heading Heading
	}{
		{core.ActionUp, HeadingUp},
		{core.ActionDown, HeadingDown},
		{core.ActionLeft, HeadingLeft},
		{core.ActionRight, HeadingRight},
	}

	for _, c := range candidates {
		if !in.Has(c.action) {
			continue
		}
		if c.heading == h.heading.Opposite() {
			continue
		}
		h.heading = c.heading
		return
	}
}

// Advance translates the head by one cell along the current heading.
// There is no bounds checking here; blocked-tile handling happens in
// the simulation step before movement.
func (h *Head) Advance() {
	if !h.active {
		return
	}
	h.pos = h.pos.Add(h.heading.Vector().Scale(h.cellSize))
}

// ResetTo moves the head to the spawn position facing the default
// heading (right). The head stays active.
func (h *Head) ResetTo(spawn core.Vec) {
	h.pos = spawn
	h.heading = HeadingRight
}
