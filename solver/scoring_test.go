package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"connect4/game"
)

/**
Scoring spec:
- a line with any opposing chip contributes nothing, even when mostly empty
  (deliberate simplification: only lines fully available to one colour count)
- exactly two own chips on a line earn ScoreTwo, exactly three ScoreThree
- combined tie-break score: attacking + prophylactic * blockWeight, weight < 1
- centrality: maximum at the centre column, decreasing outward
*/

func TestScore(t *testing.T) {
	t.Run("empty board scores zero", func(t *testing.T) {
		require.Zero(t, New().Score(game.NewBoard(), game.Red))
	})

	t.Run("adjacent pair scores the two-in-a-row bonus once", func(t *testing.T) {
		b := game.NewBoard()
		place(t, b, game.Red, 0, 1)

		// Only the bottom-row line starting at column 0 contains both chips.
		require.Equal(t, DefaultScoreTwo, New().Score(b, game.Red))
	})

	t.Run("triple scores three-in-a-row plus the trailing pair", func(t *testing.T) {
		b := game.NewBoard()
		place(t, b, game.Red, 0, 1, 2)

		// Columns 0-3 hold three red chips; columns 1-4 hold two.
		require.Equal(t, DefaultScoreThree+DefaultScoreTwo, New().Score(b, game.Red))
	})

	t.Run("an opposing chip disqualifies the whole line", func(t *testing.T) {
		b := game.NewBoard()
		place(t, b, game.Red, 0, 1)
		place(t, b, game.Yellow, 2)

		// Columns 0-3 now hold a yellow chip; no line has two free red chips.
		require.Zero(t, New().Score(b, game.Red))
	})

	t.Run("custom bonuses are honoured", func(t *testing.T) {
		b := game.NewBoard()
		place(t, b, game.Red, 0, 1, 2)

		s := New(WithScoring(2, 10))
		require.Equal(t, 12.0, s.Score(b, game.Red))
	})
}

func TestScoreMoves(t *testing.T) {
	b := game.NewBoard()
	place(t, b, game.Red, 0)
	for i := 0; i < game.Rows; i++ {
		colour := game.Red
		if i%2 == 1 {
			colour = game.Yellow
		}
		require.NoError(t, b.PlaceChip(colour, 6))
	}

	scores := New().ScoreMoves(b, game.Red)
	require.Len(t, scores, game.Columns)
	require.Zero(t, scores[6], "closed column stays unscored")
	require.Positive(t, scores[1], "placing next to the existing chip forms a pair")
}

func TestBestScoring(t *testing.T) {
	t.Run("attacking score separates candidates", func(t *testing.T) {
		b := game.NewBoard()
		place(t, b, game.Red, 0)

		// Column 1 joins the red chip for a pair; column 6 touches nothing.
		narrowed := New().bestScoring(b, game.Red, []int{1, 6})
		require.Equal(t, []int{1}, narrowed)
	})

	t.Run("blocking value counts, discounted below attacking", func(t *testing.T) {
		b := game.NewBoard()
		place(t, b, game.Yellow, 5, 6)

		// For red both candidates attack nothing, but taking column 4 denies
		// yellow the strong extension of its pair.
		narrowed := New().bestScoring(b, game.Red, []int{1, 4})
		require.Equal(t, []int{4}, narrowed)
	})

	t.Run("ties survive the stage", func(t *testing.T) {
		b := game.NewBoard()
		narrowed := New().bestScoring(b, game.Red, []int{2, 4})
		require.Equal(t, []int{2, 4}, narrowed)
	})
}

func TestMostCentral(t *testing.T) {
	require.Equal(t, []int{3}, mostCentral([]int{0, 3, 6}))
	require.Equal(t, []int{2, 4}, mostCentral([]int{0, 2, 4, 6}))
	require.Equal(t, []int{0}, mostCentral([]int{0}))
}
