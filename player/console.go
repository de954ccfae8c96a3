package player

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"connect4/game"
)

// ConsolePlayer prompts a human for a column on an interactive readline
// instance, re-prompting until the input parses and names an open column.
type ConsolePlayer struct {
	rl *readline.Instance
}

func NewConsolePlayer() (*ConsolePlayer, error) {
	rl, err := readline.New("> ")
	if err != nil {
		return nil, fmt.Errorf("failed to open console: %w", err)
	}
	return &ConsolePlayer{rl: rl}, nil
}

func (p *ConsolePlayer) NextMove(board *game.Board, colour game.Colour) (int, error) {
	p.rl.SetPrompt(fmt.Sprintf("column for %s [0-%d]: ", colour.Glyph(), game.Columns-1))
	for {
		line, err := p.rl.Readline()
		if err != nil { // io.EOF or interrupt: the human quit
			return 0, err
		}
		col, err := parseColumn(line, board)
		if err != nil {
			fmt.Println("Invalid move")
			continue
		}
		return col, nil
	}
}

func (p *ConsolePlayer) Close() error {
	return p.rl.Close()
}

// parseColumn validates a line of console input against the board: it must
// be an in-range column index with room left.
func parseColumn(line string, board *game.Board) (int, error) {
	col, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("not a column index: %q", line)
	}
	if !board.MoveAvailable(col) {
		return 0, fmt.Errorf("%w: column %d", game.ErrIllegalMove, col)
	}
	return col, nil
}
