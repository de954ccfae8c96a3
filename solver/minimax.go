package solver

import (
	"math"
	"sync"

	"connect4/game"
)

// playerSign maps a colour to its minimax sign: Red maximizes (+1), Yellow
// minimizes (-1). Every comparison and pruning threshold in the search rests
// on this mapping, so it stays an explicit function rather than an inlined
// conditional.
func playerSign(colour game.Colour) float64 {
	switch colour {
	case game.Red:
		return 1
	case game.Yellow:
		return -1
	}
	panic("no minimax sign for empty colour")
}

// Minimax values every column for the mover at the given depth. Values are
// reported in fixed orientation: positive favours Red and negative favours
// Yellow, regardless of who is choosing. A closed column is pinned to the
// mover's worst possible value so it can never be selected.
func (s *Solver) Minimax(board *game.Board, player game.Colour, depth int) []float64 {
	s.metrics.Start(depth)
	defer s.metrics.Stop()

	values := make([]float64, game.Columns)
	if s.goroutines > 1 {
		s.minimaxParallel(board, player, depth, values)
	} else {
		for col := 0; col < game.Columns; col++ {
			values[col] = s.valueColumn(board, player, col, depth)
		}
	}
	return values
}

// minimaxParallel fans the root columns out over a worker pool. The root
// stage values every column with no cross-column pruning, so evaluating
// siblings concurrently cannot change the result; each branch explores its
// own board copies.
func (s *Solver) minimaxParallel(board *game.Board, player game.Colour, depth int, values []float64) {
	cols := make(chan int, game.Columns)
	for col := 0; col < game.Columns; col++ {
		cols <- col
	}
	close(cols)

	var wg sync.WaitGroup
	for i := 0; i < s.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for col := range cols {
				values[col] = s.valueColumn(board, player, col, depth)
			}
		}()
	}
	wg.Wait()
}

func (s *Solver) valueColumn(board *game.Board, player game.Colour, col, depth int) float64 {
	if !board.MoveAvailable(col) {
		return math.Inf(-1) * playerSign(player)
	}
	next := board.Copy()
	mustPlace(next, player, col)
	if winner := next.Winner(); winner != game.Empty {
		s.metrics.AddLeaf()
		return playerSign(winner)
	}
	return s.search(next, player.Opponent(), depth)
}

// search runs the depth-first minimax recursion with the mover to place the
// next chip. A won line of play is worth the winner's sign, a draw or an
// exhausted depth is worth 0. As soon as a child reaches the mover's ideal
// value the remaining siblings are abandoned: no other child can do better.
func (s *Solver) search(board *game.Board, mover game.Colour, depth int) float64 {
	s.metrics.AddNode()

	sign := playerSign(mover)
	best := math.Inf(-1) * sign // worst case for the mover
	moved := false
	for col := 0; col < game.Columns; col++ {
		if !board.MoveAvailable(col) {
			continue
		}
		moved = true

		next := board.Copy()
		mustPlace(next, mover, col)

		var value float64
		switch winner := next.Winner(); {
		case winner != game.Empty:
			s.metrics.AddLeaf()
			value = playerSign(winner)
		case depth > 1:
			value = s.search(next, mover.Opponent(), depth-1)
		default:
			s.metrics.AddLeaf()
			value = 0
		}

		if value == sign {
			s.metrics.AddPrune()
			return value
		}
		if sign > 0 && value > best || sign < 0 && value < best {
			best = value
		}
	}
	if !moved {
		return 0 // no open column left: drawn position
	}
	return best
}

// bestColumns collects the open columns attaining the best minimax value for
// the player: the maximum for Red, the minimum for Yellow.
func bestColumns(values []float64, board *game.Board, player game.Colour) []int {
	sign := playerSign(player)
	best := math.Inf(-1)
	var cols []int
	for col, value := range values {
		if !board.MoveAvailable(col) {
			continue
		}
		oriented := value * sign
		switch {
		case oriented > best:
			best = oriented
			cols = append(cols[:0], col)
		case oriented == best:
			cols = append(cols, col)
		}
	}
	return cols
}
