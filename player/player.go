package player

import (
	"fmt"

	"golang.org/x/exp/rand"

	"connect4/game"
	"connect4/solver"
)

// Player produces the next move for a colour. Implementations must not
// mutate the board: the engine owns it and applies the chosen column itself.
type Player interface {
	// NextMove returns the column to play. The board is guaranteed to have
	// at least one open column.
	NextMove(board *game.Board, colour game.Colour) (int, error)
}

// SolverPlayer is the AI player: it forwards every decision to a Solver.
type SolverPlayer struct {
	solver *solver.Solver
}

func NewSolverPlayer(s *solver.Solver) *SolverPlayer {
	return &SolverPlayer{solver: s}
}

func (p *SolverPlayer) NextMove(board *game.Board, colour game.Colour) (int, error) {
	return p.solver.Solve(board, colour), nil
}

// SearchMetrics exposes the counters of the solver's latest minimax
// evaluation, for experiment records.
func (p *SolverPlayer) SearchMetrics() solver.SearchMetric {
	return p.solver.SearchMetrics()
}

// RandomPlayer picks uniformly among the open columns. It exists as a
// baseline opponent for experiments and tests.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) NextMove(board *game.Board, colour game.Colour) (int, error) {
	var open []int
	for col := 0; col < game.Columns; col++ {
		if board.MoveAvailable(col) {
			open = append(open, col)
		}
	}
	if len(open) == 0 {
		return 0, fmt.Errorf("no open columns to play")
	}
	return open[p.rng.Intn(len(open))], nil
}
