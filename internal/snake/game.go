package snake

import (
	"math/rand"
	"time"

	"github.com/avolkov/gridsnake/internal/config"
	"github.com/avolkov/gridsnake/internal/core"
	"github.com/avolkov/gridsnake/internal/level"
)

// goalSampleAttempts bounds the rejection sampling for goal placement.
// On pathological, nearly-full maps the sampler falls back to a linear
// scan instead of looping without bound.
const goalSampleAttempts = 1000

// hudHeight is the number of screen rows reserved above the map.
const hudHeight = 2

// Package-level knobs set by the CLI before the game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the gameplay config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game is the per-frame orchestrator. It owns the grid and the snake
// body, applies input every frame, resolves collisions in fixed order
// and advances movement on a coarser wall-clock interval so the snake
// speed stays constant regardless of frame rate.
type Game struct {
	cfg config.GameConfig
	lvl *level.Level
	rng *rand.Rand

	grid  *Grid
	body  *Body
	spawn core.Vec

	frame uint64
	score int
	best  int

	// Movement is throttled to moveEvery; input and collision checks
	// run every frame. The accumulator is explicit game state, not an
	// ambient clock.
	frameDur    time.Duration
	moveEvery   time.Duration
	moveAccum   time.Duration
	pendingGrow bool

	paused   bool
	tooSmall bool

	screenW int
	screenH int
	offX    int
	offY    int
}

// New creates a game for the given parsed level. The level is loaded
// once at startup by the caller; a reset reuses it to rebuild the grid.
func New(lvl *level.Level) *Game {
	return &Game{lvl: lvl}
}

// ID returns the game identifier used for score storage.
func (g *Game) ID() string {
	return "gridsnake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Grid Snake"
}

// Reset initializes or restarts the whole game: fresh grid from the
// level data, snake at spawn, score cleared.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	config.ApplyPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.frame = 0
	g.score = 0
	g.best = 0
	g.paused = false
	g.pendingGrow = false
	g.moveAccum = 0
	g.moveEvery = time.Duration(cfg.Speed.MoveIntervalMS) * time.Millisecond

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.frameDur = time.Second / time.Duration(tickRate)

	g.grid = NewGrid(g.lvl, cfg.Grid.CellSize)
	g.spawn = core.Vec{
		X: float64(cfg.Spawn.X * cfg.Grid.CellSize),
		Y: float64(cfg.Spawn.Y * cfg.Grid.CellSize),
	}
	g.body = NewBody(g.spawn, float64(cfg.Grid.CellSize))

	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.layout()
}

// layout centers the map on screen and flags too-small terminals.
func (g *Game) layout() {
	requiredW := g.grid.Width()
	requiredH := g.grid.Height() + hudHeight
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.offX = (g.screenW - g.grid.Width()) / 2
	g.offY = hudHeight
}

// Step advances the simulation by one rendered frame: heading input,
// collision resolution in fixed order (blocked, active, self), then
// timer-gated movement and growth.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++
	var result core.StepResult

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		result.State = g.State()
		return result
	}

	if in.Has(core.ActionRestart) {
		ended := g.resetRun()
		result.RunEnded = ended > 0
		result.RunScore = ended
		result.State = g.State()
		return result
	}

	head := g.body.Head()
	head.ApplyInput(in)

	hx, hy := g.grid.CellOf(head.Pos())

	// Blocked tile wins over everything else; the reset aborts the
	// remaining checks so they never act on stale head coordinates.
	if g.grid.IsBlocked(hx, hy) {
		result.RunEnded = true
		result.RunScore = g.resetRun()
		result.State = g.State()
		return result
	}

	if g.grid.IsActive(hx, hy) {
		g.grid.Deactivate(hx, hy)
		gx, gy := g.pickGoalTile(hx, hy)
		g.grid.Activate(gx, gy)
		g.pendingGrow = true
		g.score++
		if g.score > g.best {
			g.best = g.score
		}
	}

	for _, seg := range g.body.Segments() {
		sx, sy := g.grid.CellOf(seg.Pos())
		if sx == hx && sy == hy {
			result.RunEnded = true
			result.RunScore = g.resetRun()
			result.State = g.State()
			return result
		}
	}

	g.moveAccum += g.frameDur
	if g.moveAccum >= g.moveEvery {
		g.moveAccum -= g.moveEvery
		vacated := g.body.Step()
		// The growth flag is consumed exactly once per movement tick.
		if g.pendingGrow {
			g.body.Grow(vacated)
			g.pendingGrow = false
		}
	}

	result.State = g.State()
	return result
}

// resetRun restores the spawn state after a collision (or a manual
// restart) and returns the score of the ended attempt. The grid keeps
// its current goal; only the snake and score reset.
func (g *Game) resetRun() int {
	ended := g.score
	g.body.Reset(g.spawn)
	g.score = 0
	g.pendingGrow = false
	return ended
}

// pickGoalTile chooses the next goal cell: uniform samples over the
// interior [1,w-1) x [1,h-1), rejecting the head's cell, any segment's
// cell and blocked tiles. After goalSampleAttempts rejections it scans
// for the first free interior cell instead.
func (g *Game) pickGoalTile(hx, hy int) (int, int) {
	w, h := g.grid.Width(), g.grid.Height()

	if w > 2 && h > 2 {
		for range goalSampleAttempts {
			gx := 1 + g.rng.Intn(w-2)
			gy := 1 + g.rng.Intn(h-2)
			if gx == hx && gy == hy {
				continue
			}
			if g.bodyOccupies(gx, gy) {
				continue
			}
			if g.grid.IsBlocked(gx, gy) {
				continue
			}
			return gx, gy
		}
	}

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if x == hx && y == hy {
				continue
			}
			if g.bodyOccupies(x, y) || g.grid.IsBlocked(x, y) {
				continue
			}
			return x, y
		}
	}

	// No valid cell on this map; the goal lands on the head's cell and
	// is consumed again next frame.
	return hx, hy
}

// bodyOccupies reports whether any segment sits on the given cell.
func (g *Game) bodyOccupies(x, y int) bool {
	for _, seg := range g.body.Segments() {
		sx, sy := g.grid.CellOf(seg.Pos())
		if sx == x && sy == y {
			return true
		}
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Paused: g.paused,
	}
}

// Best returns the highest score seen since the last full reset.
func (g *Game) Best() int {
	return g.best
}
