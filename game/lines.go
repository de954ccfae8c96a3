package game

import "sync"

const (
	Rows    = 6
	Columns = 7
)

// Coord addresses a single cell. Row 0 is the top of the board, row 5 the
// bottom where chips come to rest.
type Coord struct {
	Row int
	Col int
}

// Line is one four-in-a-row run of cells: horizontal, vertical, or diagonal.
type Line [4]Coord

var (
	geometryOnce sync.Once
	winningLines []Line
	linesByCell  [Rows][Columns][][3]Coord
)

// WinningLines returns every four-in-a-row line on the 6x7 board: 69 in
// total. The slice is computed once per process, shared by every Board, and
// must not be modified.
func WinningLines() []Line {
	initGeometry()
	return winningLines
}

// LinesThrough returns, for one cell, the remainder of every winning line
// passing through it: the other three coordinates to compare against a chip
// placed there. At most 13 lines pass through any cell, so the incremental
// win check after a placement is a small constant amount of work.
func LinesThrough(row, col int) [][3]Coord {
	initGeometry()
	return linesByCell[row][col]
}

func initGeometry() {
	geometryOnce.Do(func() {
		winningLines = generateWinningLines()
		for row := 0; row < Rows; row++ {
			for col := 0; col < Columns; col++ {
				linesByCell[row][col] = linesThroughCell(winningLines, row, col)
			}
		}
	})
}

func generateWinningLines() []Line {
	var lines []Line

	// Horizontal runs
	for row := 0; row < Rows; row++ {
		for col := 0; col <= Columns-4; col++ {
			lines = append(lines, Line{
				{row, col}, {row, col + 1}, {row, col + 2}, {row, col + 3},
			})
		}
	}
	// Vertical runs
	for col := 0; col < Columns; col++ {
		for row := 0; row <= Rows-4; row++ {
			lines = append(lines, Line{
				{row, col}, {row + 1, col}, {row + 2, col}, {row + 3, col},
			})
		}
	}
	// Falling diagonals (down-right)
	for row := 0; row <= Rows-4; row++ {
		for col := 0; col <= Columns-4; col++ {
			lines = append(lines, Line{
				{row, col}, {row + 1, col + 1}, {row + 2, col + 2}, {row + 3, col + 3},
			})
		}
	}
	// Rising diagonals (up-right)
	for row := 3; row < Rows; row++ {
		for col := 0; col <= Columns-4; col++ {
			lines = append(lines, Line{
				{row, col}, {row - 1, col + 1}, {row - 2, col + 2}, {row - 3, col + 3},
			})
		}
	}
	return lines
}

// linesThroughCell filters the full line set down to the lines containing
// the cell, stripping the cell's own coordinate from each.
func linesThroughCell(lines []Line, row, col int) [][3]Coord {
	target := Coord{Row: row, Col: col}
	var through [][3]Coord
	for _, line := range lines {
		contained := false
		var rest [3]Coord
		n := 0
		for _, cell := range line {
			if cell == target {
				contained = true
				continue
			}
			if n < 3 {
				rest[n] = cell
				n++
			}
		}
		if contained {
			through = append(through, rest)
		}
	}
	return through
}
