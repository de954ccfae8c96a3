// Package experiments pits solver configurations against each other in
// self-play and records the outcomes as CSV, to compare search depths, block
// weights, and parallelism settings.
package experiments

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/player"
	"connect4/solver"
)

// Config describes one solver entrant.
type Config struct {
	Label       string
	Depth       int
	Goroutines  int
	BlockWeight float64
}

func (c Config) options() []solver.Option {
	options := []solver.Option{solver.WithMetrics()}
	if c.Depth > 0 {
		options = append(options, solver.WithDepth(c.Depth))
	}
	if c.Goroutines > 0 {
		options = append(options, solver.WithGoroutines(c.Goroutines))
	}
	if c.BlockWeight > 0 {
		options = append(options, solver.WithBlockWeight(c.BlockWeight))
	}
	return options
}

// Run plays every ordered pairing of configs numGames times (each config
// takes red against each other config) with games running concurrently, and
// writes the records under outDir. Returns the directory of this run.
func Run(configs []Config, numGames int, outDir string) (string, error) {
	if len(configs) < 2 {
		return "", fmt.Errorf("need at least two configs, got %d", len(configs))
	}

	writer, err := metrics.NewWriter(outDir)
	if err != nil {
		return "", err
	}

	var mu sync.Mutex
	var games []metrics.GameRecord
	var moves []metrics.MoveRecord

	var g errgroup.Group
	id := 0
	for _, redCfg := range configs {
		redCfg := redCfg
		for _, yellowCfg := range configs {
			yellowCfg := yellowCfg
			if redCfg.Label == yellowCfg.Label {
				continue
			}
			for i := 0; i < numGames; i++ {
				id++
				gameID := id
				g.Go(func() error {
					// Each game gets fresh solvers: the metrics collector
					// inside a solver is per-search, not per-game.
					e := engine.New(
						player.NewSolverPlayer(solver.New(redCfg.options()...)),
						player.NewSolverPlayer(solver.New(yellowCfg.options()...)),
						engine.WithGameID(gameID),
						engine.WithLabels(redCfg.Label, yellowCfg.Label),
					)
					_, record, moveRecords, err := e.Run()
					if err != nil {
						return fmt.Errorf("game %d: %w", gameID, err)
					}
					mu.Lock()
					games = append(games, record)
					moves = append(moves, moveRecords...)
					mu.Unlock()
					return nil
				})
			}
		}
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	if err := writer.WriteGames(games); err != nil {
		return "", err
	}
	if err := writer.WriteMoves(moves); err != nil {
		return "", err
	}
	log.Info().
		Int("games", len(games)).
		Str("dir", writer.Dir()).
		Msg("experiment complete")
	return writer.Dir(), nil
}
