// Self-play experiment driver: pits solver configurations against each
// other and writes game and move records as CSV.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"connect4/experiments"
)

func main() {
	games := flag.Int("games", 10, "games per ordered pairing")
	outDir := flag.String("out", "experiments/selfplay", "output directory for CSV records")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	configs := []experiments.Config{
		{Label: "depth3", Depth: 3},
		{Label: "depth5", Depth: 5},
		{Label: "depth5-parallel", Depth: 5, Goroutines: 4},
		{Label: "depth5-heavyblock", Depth: 5, BlockWeight: 0.9},
	}

	dir, err := experiments.Run(configs, *games, *outDir)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	fmt.Printf("records written to %s\n", dir)
}
