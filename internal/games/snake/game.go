// Package snake implements the Snake game for the 8x8 LED matrix.
//
// The engine is a discrete-tick state machine: Step applies the polled
// direction to the heading, advances the head one cell, handles food and
// self-collision, and freezes once the round ends. There is deliberately no
// wall check: the head may leave the grid, and renderers clip. There is also
// no blocking of 180° reversals; steering straight into the neck ends the
// round on the same tick via the ordinary self-collision check.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/registry"
)

// InitialLength is the snake's starting length.
const InitialLength = 3

// Game holds the authoritative board state for one round.
type Game struct {
	rng   *rand.Rand
	board int

	body    []core.Point // Head at index 0
	heading core.Direction
	food    core.Point
	score   int
	over    bool
}

// New creates a Snake game. Call Reset before the first Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a fresh round: three segments in the middle of the board
// heading up, score zero, one food item on a free cell.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board = cfg.BoardSize
	if g.board <= 0 {
		g.board = core.FrameSize
	}

	g.body = []core.Point{
		{X: 4, Y: 4}, // Head
		{X: 4, Y: 5},
		{X: 4, Y: 6},
	}
	g.heading = core.DirUp
	g.score = 0
	g.over = false
	g.spawnFood()
}

// Step advances the game by one tick. A real direction replaces the heading;
// DirNone keeps the previous one, so the snake never stops. Once the round
// is over the state is frozen and Step does nothing.
func (g *Game) Step(dir core.Direction) core.GameState {
	if g.over {
		return g.State()
	}

	if dir != core.DirNone {
		g.heading = dir
	}

	newHead := g.body[0].Move(g.heading)
	g.body = append([]core.Point{newHead}, g.body...)

	if newHead == g.food {
		// Grow by one cell: leave the tail in place.
		g.score++
		g.spawnFood()
	} else {
		g.body = g.body[:len(g.body)-1]
	}

	// Self-collision against the rest of the body. The colliding state is
	// kept so the final frame can still be rendered.
	for _, seg := range g.body[1:] {
		if seg == newHead {
			g.over = true
			break
		}
	}

	return g.State()
}

// spawnFood relocates the food by rejection sampling: draw a random in-bounds
// cell, redraw while it lands on the snake.
func (g *Game) spawnFood() {
	if len(g.body) >= g.board*g.board {
		// Board is full; park the food off-grid. Renderers clip it away.
		g.food = core.Point{X: -1, Y: -1}
		return
	}
	for {
		p := core.Point{X: g.rng.Intn(g.board), Y: g.rng.Intn(g.board)}
		if !g.isSnakeAt(p) {
			g.food = p
			return
		}
	}
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Render draws the body and the food as lit cells. Frame.Set clips
// coordinates outside the matrix, covering the off-grid head case.
func (g *Game) Render(dst *core.Frame) {
	for _, seg := range g.body {
		dst.Set(seg.X, seg.Y)
	}
	dst.Set(g.food.X, g.food.Y)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Over:  g.over,
	}
}
