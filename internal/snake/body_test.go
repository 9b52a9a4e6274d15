package snake

import (
	"testing"

	"github.com/avolkov/gridsnake/internal/core"
)

func pressedFrame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestHeadReversalAlwaysRejected(t *testing.T) {
	tests := []struct {
		name     string
		heading  Heading
		opposite core.Action
	}{
		{"right rejects left", HeadingRight, core.ActionLeft},
		{"left rejects right", HeadingLeft, core.ActionRight},
		{"up rejects down", HeadingUp, core.ActionDown},
		{"down rejects up", HeadingDown, core.ActionUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHead(core.Vec{X: 150, Y: 150}, 25)
			h.heading = tc.heading

			h.ApplyInput(pressedFrame(tc.opposite))
			if h.Heading() != tc.heading {
				t.Errorf("Heading changed to %v, reversal must be rejected", h.Heading())
			}
		})
	}
}

func TestHeadInputPrecedence(t *testing.T) {
	// Up, down, left, right in that order; the first non-reversal wins.
	h := NewHead(core.Vec{X: 150, Y: 150}, 25)

	h.ApplyInput(pressedFrame(core.ActionUp, core.ActionLeft))
	if h.Heading() != HeadingUp {
		t.Errorf("Heading = %v, expected up (higher precedence)", h.Heading())
	}

	// With up now current, pressing down+right must pick right: down is
	// the rejected reversal and right is next in order.
	h.ApplyInput(pressedFrame(core.ActionDown, core.ActionRight))
	if h.Heading() != HeadingRight {
		t.Errorf("Heading = %v, expected right (down is a reversal)", h.Heading())
	}
}

func TestHeadAdvance(t *testing.T) {
	tests := []struct {
		name    string
		heading Heading
		want    core.Vec
	}{
		{"right", HeadingRight, core.Vec{X: 175, Y: 150}},
		{"left", HeadingLeft, core.Vec{X: 125, Y: 150}},
		{"up", HeadingUp, core.Vec{X: 150, Y: 125}},
		{"down", HeadingDown, core.Vec{X: 150, Y: 175}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHead(core.Vec{X: 150, Y: 150}, 25)
			h.heading = tc.heading

			h.Advance()
			if h.Pos() != tc.want {
				t.Errorf("Pos = %v, expected %v", h.Pos(), tc.want)
			}
		})
	}
}

func TestHeadInactiveIsNoOp(t *testing.T) {
	h := NewHead(core.Vec{X: 150, Y: 150}, 25)
	h.active = false

	h.ApplyInput(pressedFrame(core.ActionDown))
	if h.Heading() != HeadingRight {
		t.Error("Inactive head should ignore input")
	}

	h.Advance()
	if h.Pos() != (core.Vec{X: 150, Y: 150}) {
		t.Error("Inactive head should not move")
	}
}

func TestHeadResetTo(t *testing.T) {
	h := NewHead(core.Vec{X: 150, Y: 150}, 25)
	h.heading = HeadingUp
	h.Advance()

	h.ResetTo(core.Vec{X: 150, Y: 150})
	if h.Pos() != (core.Vec{X: 150, Y: 150}) {
		t.Errorf("Pos = %v, expected spawn", h.Pos())
	}
	if h.Heading() != HeadingRight {
		t.Errorf("Heading = %v, expected default right", h.Heading())
	}
}

func TestSegmentAdvanceTo(t *testing.T) {
	s := NewSegment(core.Vec{X: 100, Y: 100})

	s.AdvanceTo(core.Vec{X: 125, Y: 100})
	if s.Pos() != (core.Vec{X: 125, Y: 100}) {
		t.Errorf("Pos = %v, expected {125 100}", s.Pos())
	}

	s.active = false
	s.AdvanceTo(core.Vec{X: 0, Y: 0})
	if s.Pos() != (core.Vec{X: 125, Y: 100}) {
		t.Error("Inactive segment should not move")
	}
}

func TestBodyChainIntegrity(t *testing.T) {
	// After a step, segment i must occupy segment i-1's pre-step
	// position, and segment 0 the head's pre-step position.
	spawn := core.Vec{X: 150, Y: 150}
	b := NewBody(spawn, 25)
	b.Grow(core.Vec{X: 125, Y: 150})
	b.Grow(core.Vec{X: 100, Y: 150})

	headBefore := b.Head().Pos()
	seg0Before := b.segments[0].Pos()
	seg1Before := b.segments[1].Pos()

	vacated := b.Step()

	if b.Head().Pos() != (core.Vec{X: 175, Y: 150}) {
		t.Errorf("Head moved to %v, expected {175 150}", b.Head().Pos())
	}
	if b.segments[0].Pos() != headBefore {
		t.Errorf("Segment 0 at %v, expected head's old position %v", b.segments[0].Pos(), headBefore)
	}
	if b.segments[1].Pos() != seg0Before {
		t.Errorf("Segment 1 at %v, expected segment 0's old position %v", b.segments[1].Pos(), seg0Before)
	}
	if vacated != seg1Before {
		t.Errorf("Vacated = %v, expected last segment's old position %v", vacated, seg1Before)
	}
}

func TestBodyStepWithoutSegments(t *testing.T) {
	spawn := core.Vec{X: 150, Y: 150}
	b := NewBody(spawn, 25)

	vacated := b.Step()
	if vacated != spawn {
		t.Errorf("Vacated = %v, expected the head's pre-step position %v", vacated, spawn)
	}
}

func TestBodyGrowLandsOnVacatedCell(t *testing.T) {
	spawn := core.Vec{X: 150, Y: 150}
	b := NewBody(spawn, 25)

	vacated := b.Step()
	b.Grow(vacated)

	if b.Len() != 2 {
		t.Fatalf("Len = %d, expected 2", b.Len())
	}
	if b.segments[0].Pos() != spawn {
		t.Errorf("New segment at %v, expected vacated spawn cell %v", b.segments[0].Pos(), spawn)
	}
}

func TestBodyReset(t *testing.T) {
	spawn := core.Vec{X: 150, Y: 150}
	b := NewBody(spawn, 25)
	b.Grow(core.Vec{X: 125, Y: 150})
	b.Grow(core.Vec{X: 100, Y: 150})
	b.Head().ApplyInput(pressedFrame(core.ActionDown))
	b.Step()

	b.Reset(spawn)

	if b.Len() != 1 {
		t.Errorf("Len = %d after reset, expected 1", b.Len())
	}
	if b.Head().Pos() != spawn {
		t.Errorf("Head at %v after reset, expected spawn", b.Head().Pos())
	}
	if b.Head().Heading() != HeadingRight {
		t.Errorf("Heading = %v after reset, expected right", b.Head().Heading())
	}
}
