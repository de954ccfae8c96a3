package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"connect4/game"
	"connect4/player"
	"connect4/solver"
)

// stubPlayer always answers the same column, legality be damned.
type stubPlayer struct {
	col int
}

func (p stubPlayer) NextMove(board *game.Board, colour game.Colour) (int, error) {
	return p.col, nil
}

func TestRunRandomGameFinishes(t *testing.T) {
	e := New(player.NewRandomPlayer(1), player.NewRandomPlayer(2), WithGameID(7))

	winner, record, moves, err := e.Run()
	require.NoError(t, err)
	require.LessOrEqual(t, record.Moves, MaxMoves)
	require.Len(t, moves, record.Moves)
	require.Equal(t, 7, record.ID)

	if winner == game.Empty {
		require.Equal(t, "tie", record.Winner)
		require.Equal(t, MaxMoves, record.Moves)
	} else {
		require.Equal(t, winner.String(), record.Winner)
		require.False(t, e.Board().StillPlaying())
	}
}

func TestRunSolverBeatsRandom(t *testing.T) {
	// A modest search should not lose to uniform random play.
	ai := player.NewSolverPlayer(solver.New(
		solver.WithDepth(4),
		solver.WithMetrics(),
		solver.WithRand(rand.New(rand.NewSource(42))),
	))
	e := New(ai, player.NewRandomPlayer(3))

	winner, _, moves, err := e.Run()
	require.NoError(t, err)
	require.NotEqual(t, game.Yellow, winner, "random play should not beat the solver")

	// Solver moves carry search counters once the cascade reaches minimax.
	sawSearch := false
	for _, m := range moves {
		if m.Colour == game.Red.String() && m.Nodes > 0 {
			sawSearch = true
			break
		}
	}
	require.True(t, sawSearch, "solver moves should record search metrics")
}

func TestRunAbortsOnStubbornPlayer(t *testing.T) {
	// Both stubs hammer column 0; once it fills, the retry budget runs out.
	e := New(stubPlayer{col: 0}, stubPlayer{col: 0})

	winner, record, _, err := e.Run()
	require.ErrorIs(t, err, game.ErrIllegalMove)
	require.Equal(t, game.Empty, winner)
	require.Equal(t, game.Rows, record.Moves, "exactly one column's worth of chips was placed")
}

func TestRunDisplayRendersEachMove(t *testing.T) {
	var out strings.Builder
	e := New(stubPlayer{col: 2}, stubPlayer{col: 3}, WithDisplay(&out))

	_, record, _, err := e.Run()
	require.NoError(t, err)
	require.Positive(t, record.Moves)
	boards := strings.Count(out.String(), game.Empty.Glyph())
	require.Positive(t, boards, "display writer should receive board renders")
}
