package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIllegalMove reports a placement into a full or out-of-range column. The
// board is left untouched when it is returned.
var ErrIllegalMove = errors.New("illegal move")

// Board is the authoritative game state: the 6x7 grid, per-column stack
// heights, move count, last placement, and the winner once a line completes.
// Fixed-size arrays keep Copy a flat memcpy with no shared storage, which
// matters because the search clones the board at every node.
type Board struct {
	grid      [Rows][Columns]Colour
	heights   [Columns]int
	movesMade int
	lastMove  Coord
	winner    Colour
}

// NewBoard returns an empty board ready for the first move.
func NewBoard() *Board {
	return &Board{lastMove: Coord{Row: -1, Col: -1}}
}

// Copy returns an independent snapshot of the board.
func (b *Board) Copy() *Board {
	clone := *b
	return &clone
}

// MoveAvailable reports whether a chip can be dropped into the column.
// Out-of-range columns are simply unavailable.
func (b *Board) MoveAvailable(col int) bool {
	if col < 0 || col >= Columns {
		return false
	}
	return b.heights[col] < Rows
}

// PlaceChip drops a chip of the given colour into the column, occupying the
// lowest free row. It is the single mutation entry point: heights, the move
// count, the last move, and the winner are all updated here. A full or
// out-of-range column yields ErrIllegalMove without mutating anything.
func (b *Board) PlaceChip(colour Colour, col int) error {
	if colour == Empty {
		return fmt.Errorf("%w: cannot place an empty chip", ErrIllegalMove)
	}
	if col < 0 || col >= Columns {
		return fmt.Errorf("%w: column %d out of range", ErrIllegalMove, col)
	}
	row := Rows - b.heights[col] - 1
	if row < 0 {
		return fmt.Errorf("%w: column %d is full", ErrIllegalMove, col)
	}

	b.grid[row][col] = colour
	b.heights[col]++
	b.movesMade++
	b.lastMove = Coord{Row: row, Col: col}
	if b.winner == Empty { // first winner is sticky
		b.winner = b.CheckWinnerFromLastMove()
	}
	return nil
}

// CheckWinnerFromLastMove examines only the winning lines passing through
// the most recent placement and returns the winning colour, or Empty. This
// is the hot-path check: the search places thousands of chips and cannot
// afford a full-board scan after each one.
func (b *Board) CheckWinnerFromLastMove() Colour {
	if b.movesMade == 0 {
		return Empty
	}
	colour := b.grid[b.lastMove.Row][b.lastMove.Col]
	for _, rest := range LinesThrough(b.lastMove.Row, b.lastMove.Col) {
		if b.grid[rest[0].Row][rest[0].Col] == colour &&
			b.grid[rest[1].Row][rest[1].Col] == colour &&
			b.grid[rest[2].Row][rest[2].Col] == colour {
			return colour
		}
	}
	return Empty
}

// CheckWinnerFromBoard scans every winning line on the board and returns the
// colour of the first completed one, or Empty. Off the hot path; it exists
// to verify the incremental check against.
func (b *Board) CheckWinnerFromBoard() Colour {
	for _, line := range WinningLines() {
		first := b.grid[line[0].Row][line[0].Col]
		if first == Empty {
			continue
		}
		if b.grid[line[1].Row][line[1].Col] == first &&
			b.grid[line[2].Row][line[2].Col] == first &&
			b.grid[line[3].Row][line[3].Col] == first {
			return first
		}
	}
	return Empty
}

// StillPlaying reports whether the game is undecided: no winner yet and at
// least one empty cell. A full board with no winner is a tie.
func (b *Board) StillPlaying() bool {
	return b.winner == Empty && b.movesMade < Rows*Columns
}

// ColourAt returns the chip colour at a cell, or Empty.
func (b *Board) ColourAt(row, col int) Colour {
	return b.grid[row][col]
}

// Height returns the number of chips stacked in the column.
func (b *Board) Height(col int) int {
	return b.heights[col]
}

// MovesMade returns the number of placements so far.
func (b *Board) MovesMade() int {
	return b.movesMade
}

// Winner returns the winning colour, or Empty while the game is undecided.
func (b *Board) Winner() Colour {
	return b.winner
}

// LastMove returns the coordinates of the most recent placement. ok is false
// before any chip has been placed.
func (b *Board) LastMove() (coord Coord, ok bool) {
	if b.movesMade == 0 {
		return Coord{}, false
	}
	return b.lastMove, true
}

// String renders the board one glyph per cell, row-major from the top, each
// row newline-terminated.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			sb.WriteString(b.grid[row][col].Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
