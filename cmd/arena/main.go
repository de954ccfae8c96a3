// Starts a match against the c4arena site AI in a browser session and
// captures a screenshot. Locators come from a YAML config file.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"connect4/arena"
)

func main() {
	configPath := flag.String("config", "resources/c4arena.yaml", "path to the arena locator config")
	timeout := flag.Duration("timeout", 60*time.Second, "overall browser session budget")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := arena.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load arena config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := arena.NewClient(cfg).Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("arena session failed")
	}
}
