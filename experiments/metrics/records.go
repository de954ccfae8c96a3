package metrics

import (
	"time"

	"connect4/solver"
)

// GameRecord summarizes one finished game.
type GameRecord struct {
	ID       int
	Red      string // configuration label of the red player
	Yellow   string // configuration label of the yellow player
	Winner   string // "red", "yellow", or "tie"
	Moves    int
	Duration time.Duration
}

// MoveRecord captures one placement together with the search counters the
// solver collected while choosing it. Non-solver players leave the embedded
// metric zeroed.
type MoveRecord struct {
	Game   int // GameRecord.ID
	Step   int
	Colour string
	Column int
	solver.SearchMetric
}
