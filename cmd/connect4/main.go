// Interactive console game: a human against the solver, board printed after
// every placement.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"connect4/engine"
	"connect4/game"
	"connect4/player"
	"connect4/solver"
)

func main() {
	depth := flag.Int("depth", solver.DefaultDepth, "minimax search depth")
	goroutines := flag.Int("goroutines", 1, "parallel root branches of the search")
	colour := flag.String("colour", "red", "colour the human plays; red moves first")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	human, err := player.NewConsolePlayer()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open console")
	}
	defer human.Close()

	ai := player.NewSolverPlayer(solver.New(
		solver.WithDepth(*depth),
		solver.WithGoroutines(*goroutines),
	))

	var red, yellow player.Player
	switch *colour {
	case "red":
		red, yellow = human, ai
	case "yellow":
		red, yellow = ai, human
	default:
		log.Fatal().Str("colour", *colour).Msg("colour must be red or yellow")
	}

	e := engine.New(red, yellow, engine.WithDisplay(os.Stdout))
	fmt.Println(e.Board())

	winner, _, _, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	if winner == game.Empty {
		fmt.Println("Tie game!")
	} else {
		fmt.Printf("The winner is %s %s\n", winner, winner.Glyph())
	}
}
