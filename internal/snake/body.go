package snake

import (
	"github.com/avolkov/gridsnake/internal/core"
)

// Body is the whole snake entity: the head plus the ordered segment
// chain, segment 0 nearest the head.
type Body struct {
	head     *Head
	segments []*Segment
}

// NewBody creates a snake with no segments, head at spawn facing right.
func NewBody(spawn core.Vec, cellSize float64) *Body {
	return &Body{
		head: NewHead(spawn, cellSize),
	}
}

// Head returns the snake's head.
func (b *Body) Head() *Head {
	return b.head
}

// Segments returns the ordered segment chain.
func (b *Body) Segments() []*Segment {
	return b.segments
}

// Len returns the total snake length including the head.
func (b *Body) Len() int {
	return len(b.segments) + 1
}

// Step advances the snake by one movement tick. The head moves first;
// each segment then takes the position the unit ahead of it held before
// this tick, threaded through a single rolling previous-position value
// so no segment ever reads a predecessor's already-updated position.
// It returns the trailing vacated position: the cell the last segment
// (or the head, if there are no segments) just left.
func (b *Body) Step() core.Vec {
	prev := b.head.Pos()
	b.head.Advance()

	for _, seg := range b.segments {
		old := seg.Pos()
		seg.AdvanceTo(prev)
		prev = old
	}
	return prev
}

// Grow appends a new segment at the given position. The orchestrator
// passes the trailing vacated position from the same tick, so the new
// segment lands exactly where the tail used to be.
func (b *Body) Grow(at core.Vec) {
	b.segments = append(b.segments, NewSegment(at))
}

// Reset clears the segment chain and returns the head to spawn with the
// default heading.
func (b *Body) Reset(spawn core.Vec) {
	b.segments = nil
	b.head.ResetTo(spawn)
}
