package solver

import (
	"time"

	"golang.org/x/exp/rand"

	"connect4/game"
)

// Default search parameters. They are defaults on the Solver config rather
// than hardcoded literals so tests can run shallow, deterministic searches.
const (
	DefaultDepth       = 5
	DefaultScoreTwo    = 1.0
	DefaultScoreThree  = 5.0
	DefaultBlockWeight = 2.0 / 3.0
)

type Option func(s *Solver)

// WithDepth sets how many plies the minimax stage searches beyond the
// candidate move.
func WithDepth(depth int) Option {
	return func(s *Solver) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithScoring sets the bonuses for lines holding exactly two or exactly
// three of the mover's chips.
func WithScoring(two, three float64) Option {
	return func(s *Solver) {
		s.scoreTwo = two
		s.scoreThree = three
	}
}

// WithBlockWeight sets the weight of the prophylactic score relative to the
// attacking score. Values below 1 keep attacking moves prioritized.
func WithBlockWeight(weight float64) Option {
	return func(s *Solver) {
		if weight >= 0 {
			s.blockWeight = weight
		}
	}
}

// WithGoroutines evaluates root columns of the minimax stage concurrently.
// Each branch explores its own board copy, so sibling branches never share
// mutable state; pruning inside each branch is unaffected.
func WithGoroutines(goroutines int) Option {
	return func(s *Solver) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

// WithMetrics installs a collector counting nodes, leaves, and prunes of
// each minimax evaluation.
func WithMetrics() Option {
	return func(s *Solver) {
		s.metrics = NewCollector()
	}
}

// WithRand replaces the tie-break randomness source, for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *Solver) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// Solver selects a column for a colour on a board snapshot. It carries
// configuration only: every Solve call is a fresh, independent decision, and
// the board passed in is never mutated.
type Solver struct {
	depth       int
	scoreTwo    float64
	scoreThree  float64
	blockWeight float64
	goroutines  int
	metrics     Collector
	rng         *rand.Rand
}

func New(options ...Option) *Solver {
	s := &Solver{
		depth:       DefaultDepth,
		scoreTwo:    DefaultScoreTwo,
		scoreThree:  DefaultScoreThree,
		blockWeight: DefaultBlockWeight,
		goroutines:  1,
		metrics:     NewDummyCollector(),
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Solve returns the column to play for the player. The decision cascade runs
// in strict priority order, each stage short-circuiting the rest: immediate
// win, immediate block, minimax, line scoring, centrality, and finally a
// uniform random pick among whatever remains. The board must still be in
// play with at least one open column.
func (s *Solver) Solve(board *game.Board, player game.Colour) int {
	if col, ok := s.WinningMove(board, player); ok {
		return col
	}
	if col, ok := s.WinningMove(board, player.Opponent()); ok {
		return col
	}

	values := s.Minimax(board, player, s.depth)
	candidates := bestColumns(values, board, player)
	if len(candidates) == 1 {
		return candidates[0]
	}

	candidates = s.bestScoring(board, player, candidates)
	if len(candidates) == 1 {
		return candidates[0]
	}

	candidates = mostCentral(candidates)
	if len(candidates) == 1 {
		return candidates[0]
	}
	return candidates[s.rng.Intn(len(candidates))]
}

// WinningMove reports the lowest open column where the player wins with a
// single placement. The negative result is not an error; the cascade simply
// moves on to the next stage.
func (s *Solver) WinningMove(board *game.Board, player game.Colour) (col int, ok bool) {
	for col := 0; col < game.Columns; col++ {
		if !board.MoveAvailable(col) {
			continue
		}
		next := board.Copy()
		mustPlace(next, player, col)
		if next.Winner() == player {
			return col, true
		}
	}
	return 0, false
}

// SearchMetrics returns the counters of the most recent minimax evaluation.
// Zero values unless the Solver was built WithMetrics.
func (s *Solver) SearchMetrics() SearchMetric {
	return s.metrics.Complete()
}

// mustPlace is for placements already validated with MoveAvailable; a
// failure here is a programmer error, not a game condition.
func mustPlace(board *game.Board, colour game.Colour, col int) {
	if err := board.PlaceChip(colour, col); err != nil {
		panic(err)
	}
}
