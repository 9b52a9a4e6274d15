package snake

import (
	"github.com/avolkov/gridsnake/internal/core"
)

// Segment is a single trailing body cell. It has no heading of its own:
// each tick it is told the position the unit ahead of it just vacated
// and moves there.
type Segment struct {
	pos    core.Vec
	active bool
}

// NewSegment creates an active segment at the given position.
func NewSegment(pos core.Vec) *Segment {
	return &Segment{pos: pos, active: true}
}

// Pos returns the segment's screen-space position.
func (s *Segment) Pos() core.Vec {
	return s.pos
}

// AdvanceTo moves the segment to the target position. The target is the
// prior position of the unit ahead, supplied by the orchestrator.
func (s *Segment) AdvanceTo(target core.Vec) {
	if !s.active {
		return
	}
	s.pos = target
}
