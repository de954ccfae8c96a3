package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"connect4/game"
)

/**
Decision cascade spec (strict order, each stage short-circuits the rest):
1. immediate win           -> lowest winning column
2. immediate block         -> lowest column where the opponent would win
3. minimax                 -> candidate set of best-valued columns
4. attacking+blocking score -> narrowed candidate set
5. centrality              -> narrowed candidate set
6. uniform random          -> single column
The solver assumes at least one legal move exists; a finished or full board
is the caller's job to detect via StillPlaying.
*/

func TestWinningMove(t *testing.T) {
	t.Run("three in a row open on both ends", func(t *testing.T) {
		b := game.NewBoard()
		place(t, b, game.Red, 2, 3, 4)
		place(t, b, game.Yellow, 2, 3, 4)

		col, ok := New().WinningMove(b, game.Red)
		require.True(t, ok)
		require.Contains(t, []int{1, 5}, col, "either completing column wins")
		require.Equal(t, 1, col, "lowest winning column is preferred")
	})

	t.Run("no winning move on an empty board", func(t *testing.T) {
		_, ok := New().WinningMove(game.NewBoard(), game.Red)
		require.False(t, ok)
	})

	t.Run("winning column must be open", func(t *testing.T) {
		b := game.NewBoard()
		place(t, b, game.Yellow, 1, 1, 1)
		place(t, b, game.Red, 1, 1, 1)
		require.False(t, b.MoveAvailable(1))

		_, ok := New().WinningMove(b, game.Yellow)
		require.False(t, ok, "the completing column is full")
	})
}

func TestSolveTakesImmediateWin(t *testing.T) {
	b := game.NewBoard()
	place(t, b, game.Red, 0, 1, 2)
	place(t, b, game.Yellow, 0, 1, 2)

	col := New(WithDepth(1)).Solve(b, game.Red)
	require.Equal(t, 3, col)
}

func TestSolveBlocksImmediateLoss(t *testing.T) {
	b := game.NewBoard()
	place(t, b, game.Red, 4, 4, 4)
	place(t, b, game.Yellow, 0, 6)

	col := New(WithDepth(1)).Solve(b, game.Yellow)
	require.Equal(t, 4, col, "yellow must block red's vertical threat")
}

func TestSolveWinBeatsBlock(t *testing.T) {
	// Both sides threaten to win; taking the win outranks blocking.
	b := game.NewBoard()
	place(t, b, game.Red, 0, 0, 0)
	place(t, b, game.Yellow, 6, 6, 6)

	require.Equal(t, 6, New(WithDepth(1)).Solve(b, game.Yellow))
	require.Equal(t, 0, New(WithDepth(1)).Solve(b, game.Red))
}

func TestSolveAvoidsHandingImmediateWin(t *testing.T) {
	// Opening scenario: red has taken the centre. None of the columns the
	// search endorses for yellow may leave red a one-move win.
	b := game.NewBoard()
	place(t, b, game.Red, 3)

	s := New()
	values := s.Minimax(b, game.Yellow, DefaultDepth)
	candidates := bestColumns(values, b, game.Yellow)
	require.NotEmpty(t, candidates)
	for _, col := range candidates {
		next := b.Copy()
		require.NoError(t, next.PlaceChip(game.Yellow, col))
		_, ok := s.WinningMove(next, game.Red)
		require.False(t, ok, "candidate %d hands red an immediate win", col)
	}
}

func TestSolveCentralityTieBreak(t *testing.T) {
	// On an empty board at depth 1 every column values 0 and scores alike,
	// so the cascade falls through to centrality and must pick the centre.
	s := New(WithDepth(1), WithRand(rand.New(rand.NewSource(7))))
	col := s.Solve(game.NewBoard(), game.Red)
	require.Equal(t, 3, col)
}

func TestSolveReturnsOnlyOpenColumns(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	s := New(WithDepth(2), WithRand(rng))

	b := game.NewBoard()
	mover := game.Red
	for b.StillPlaying() {
		col := s.Solve(b, mover)
		require.True(t, b.MoveAvailable(col), "solver picked closed column %d", col)
		require.NoError(t, b.PlaceChip(mover, col))
		mover = mover.Opponent()
	}
	require.LessOrEqual(t, b.MovesMade(), game.Rows*game.Columns)
}

func TestSolveSelfPlayFinishes(t *testing.T) {
	// Two shallow solvers must drive any game to a win or a tie without the
	// board ever rejecting a move.
	red := New(WithDepth(2), WithRand(rand.New(rand.NewSource(1))))
	yellow := New(WithDepth(3), WithRand(rand.New(rand.NewSource(2))))

	b := game.NewBoard()
	mover := game.Red
	for b.StillPlaying() {
		var col int
		if mover == game.Red {
			col = red.Solve(b, mover)
		} else {
			col = yellow.Solve(b, mover)
		}
		require.NoError(t, b.PlaceChip(mover, col))
		mover = mover.Opponent()
	}

	if b.Winner() == game.Empty {
		require.Equal(t, game.Rows*game.Columns, b.MovesMade(), "a tie only happens on a full board")
	}
}
