package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/player"
	"connect4/solver"
)

// MaxMoves bounds a runaway game; a legal Connect Four game always ends
// within 42 placements.
const MaxMoves = game.Rows * game.Columns

// maxRetries bounds how often a player may answer with a closed column
// before the game is aborted. Interactive players re-prompt internally, so
// hitting the limit means a broken programmatic player.
const maxRetries = 3

type Option func(e *Engine)

// WithDisplay prints the board to w after every placement.
func WithDisplay(w io.Writer) Option {
	return func(e *Engine) {
		e.display = w
	}
}

// WithGameID tags the emitted records, for experiment runs collecting many
// games.
func WithGameID(id int) Option {
	return func(e *Engine) {
		e.gameID = id
	}
}

// WithLabels names the two player configurations in the game record.
func WithLabels(red, yellow string) Option {
	return func(e *Engine) {
		e.redLabel = red
		e.yellowLabel = yellow
	}
}

// Engine drives one game between two players on a fresh board. Red always
// moves first.
type Engine struct {
	board       *game.Board
	players     map[game.Colour]player.Player
	display     io.Writer
	gameID      int
	redLabel    string
	yellowLabel string
}

func New(red, yellow player.Player, options ...Option) *Engine {
	e := &Engine{
		board: game.NewBoard(),
		players: map[game.Colour]player.Player{
			game.Red:    red,
			game.Yellow: yellow,
		},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Board exposes the live board, e.g. for rendering between turns.
func (e *Engine) Board() *game.Board {
	return e.board
}

// searchMetricser is implemented by players that expose the solver's search
// counters for the move they just made.
type searchMetricser interface {
	SearchMetrics() solver.SearchMetric
}

// Run plays the game to completion and returns the winner (Empty for a tie)
// with the collected records. An error means a player gave up or kept
// producing illegal moves; the board is left at the failing position.
func (e *Engine) Run() (game.Colour, metrics.GameRecord, []metrics.MoveRecord, error) {
	start := time.Now()
	var moves []metrics.MoveRecord
	mover := game.Red

	for e.board.StillPlaying() && e.board.MovesMade() < MaxMoves {
		col, err := e.nextMove(mover)
		if err != nil {
			return game.Empty, e.gameRecord(start), moves, err
		}
		if err := e.board.PlaceChip(mover, col); err != nil {
			// nextMove validated the column; this is a programming error.
			panic(err)
		}
		log.Debug().
			Int("game", e.gameID).
			Stringer("colour", mover).
			Int("column", col).
			Msg("chip placed")

		record := metrics.MoveRecord{
			Game:   e.gameID,
			Step:   e.board.MovesMade(),
			Colour: mover.String(),
			Column: col,
		}
		if m, ok := e.players[mover].(searchMetricser); ok {
			record.SearchMetric = m.SearchMetrics()
		}
		moves = append(moves, record)

		if e.display != nil {
			fmt.Fprintln(e.display, e.board)
		}
		mover = mover.Opponent()
	}

	winner := e.board.Winner()
	log.Info().
		Int("game", e.gameID).
		Stringer("winner", winner).
		Int("moves", e.board.MovesMade()).
		Msg("game over")
	return winner, e.gameRecord(start), moves, nil
}

// nextMove asks the mover's player for a column, retrying a few times when
// the answer names a closed column.
func (e *Engine) nextMove(mover game.Colour) (int, error) {
	p := e.players[mover]
	for attempt := 0; attempt < maxRetries; attempt++ {
		col, err := p.NextMove(e.board, mover)
		if err != nil {
			return 0, fmt.Errorf("player %s: %w", mover, err)
		}
		if e.board.MoveAvailable(col) {
			return col, nil
		}
		log.Warn().
			Stringer("colour", mover).
			Int("column", col).
			Msg("player chose a closed column")
	}
	return 0, fmt.Errorf("player %s: %w after %d attempts", mover, game.ErrIllegalMove, maxRetries)
}

func (e *Engine) gameRecord(start time.Time) metrics.GameRecord {
	winner := "tie"
	if w := e.board.Winner(); w != game.Empty {
		winner = w.String()
	}
	return metrics.GameRecord{
		ID:       e.gameID,
		Red:      e.redLabel,
		Yellow:   e.yellowLabel,
		Winner:   winner,
		Moves:    e.board.MovesMade(),
		Duration: time.Since(start),
	}
}
