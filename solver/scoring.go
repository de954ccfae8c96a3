package solver

import (
	"math"

	"connect4/game"
)

// Score rates a position for the player by scanning every winning line. A
// line holding any opposing chip is worthless no matter how empty it is:
// only lines still fully available to the player count. Two of the player's
// chips on a line earn the two-in-a-row bonus, three the larger
// three-in-a-row bonus.
func (s *Solver) Score(board *game.Board, player game.Colour) float64 {
	opponent := player.Opponent()
	total := 0.0
	for _, line := range game.WinningLines() {
		matching := 0
		blocked := false
		for _, cell := range line {
			switch board.ColourAt(cell.Row, cell.Col) {
			case opponent:
				blocked = true
			case player:
				matching++
			}
			if blocked {
				break
			}
		}
		if blocked {
			continue
		}
		switch matching {
		case 2:
			total += s.scoreTwo
		case 3:
			total += s.scoreThree
		}
	}
	return total
}

// ScoreMoves rates, per column, the position reached by placing the player's
// chip there. Closed columns stay at zero.
func (s *Solver) ScoreMoves(board *game.Board, player game.Colour) []float64 {
	scores := make([]float64, game.Columns)
	for col := 0; col < game.Columns; col++ {
		if !board.MoveAvailable(col) {
			continue
		}
		next := board.Copy()
		mustPlace(next, player, col)
		scores[col] = s.Score(next, player)
	}
	return scores
}

// bestScoring narrows minimax-tied candidates to those with the best
// combined score. The attacking component values the move to the player; the
// prophylactic component values the same column to the opponent, i.e. what
// they would gain by taking it first. Attacking is given priority through
// the sub-unity block weight.
func (s *Solver) bestScoring(board *game.Board, player game.Colour, candidates []int) []int {
	attacking := s.ScoreMoves(board, player)
	prophylactic := s.ScoreMoves(board, player.Opponent())

	best := math.Inf(-1)
	var narrowed []int
	for _, col := range candidates {
		combined := attacking[col] + prophylactic[col]*s.blockWeight
		switch {
		case combined > best:
			best = combined
			narrowed = append(narrowed[:0], col)
		case combined == best:
			narrowed = append(narrowed, col)
		}
	}
	return narrowed
}

// mostCentral keeps the candidates nearest the centre column; central
// squares sit on more winning lines than edge squares.
func mostCentral(candidates []int) []int {
	const centre = game.Columns / 2
	bestDistance := game.Columns
	var narrowed []int
	for _, col := range candidates {
		distance := col - centre
		if distance < 0 {
			distance = -distance
		}
		switch {
		case distance < bestDistance:
			bestDistance = distance
			narrowed = append(narrowed[:0], col)
		case distance == bestDistance:
			narrowed = append(narrowed, col)
		}
	}
	return narrowed
}
