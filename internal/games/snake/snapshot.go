package snake

import "github.com/vovakirdan/led-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Score   int
	Over    bool
	Len     int
	Head    core.Point
	Heading core.Direction
	Food    core.Point
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	var head core.Point
	if len(g.body) > 0 {
		head = g.body[0]
	}

	return Snapshot{
		Score:   g.score,
		Over:    g.over,
		Len:     len(g.body),
		Head:    head,
		Heading: g.heading,
		Food:    g.food,
	}
}

// Body returns a copy of the snake's segments, head first. Used by tests and
// diagnostics; gameplay code renders through Render instead.
func (g *Game) Body() []core.Point {
	out := make([]core.Point, len(g.body))
	copy(out, g.body)
	return out
}

// Food returns the current food position.
func (g *Game) Food() core.Point {
	return g.food
}
