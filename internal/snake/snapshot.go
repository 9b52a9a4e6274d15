package snake

// Snapshot captures the observable game state for determinism testing
// and debugging.
type Snapshot struct {
	Frame       uint64
	Score       int
	Best        int
	Len         int // Snake length including the head
	HeadX       int // Head grid cell
	HeadY       int
	Heading     Heading
	GoalX       int // Active goal cell, -1/-1 when absent
	GoalY       int
	PendingGrow bool
	Paused      bool
	TooSmall    bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	hx, hy := g.grid.CellOf(g.body.Head().Pos())
	gx, gy := g.goalCell()

	return Snapshot{
		Frame:       g.frame,
		Score:       g.score,
		Best:        g.best,
		Len:         g.body.Len(),
		HeadX:       hx,
		HeadY:       hy,
		Heading:     g.body.Head().Heading(),
		GoalX:       gx,
		GoalY:       gy,
		PendingGrow: g.pendingGrow,
		Paused:      g.paused,
		TooSmall:    g.tooSmall,
	}
}

// goalCell scans for the active goal tile. Returns (-1, -1) when the
// grid has no active tile.
func (g *Game) goalCell() (int, int) {
	for y := 0; y < g.grid.Height(); y++ {
		for x := 0; x < g.grid.Width(); x++ {
			if g.grid.IsActive(x, y) {
				return x, y
			}
		}
	}
	return -1, -1
}
