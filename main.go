package main

import (
	"flag"
	"fmt"
	"os"

	"checkers/engine"
	"checkers/experiments"
	"checkers/experiments/metrics"
	"checkers/meta"
	"checkers/searcher"
	"checkers/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	setupPath := flag.String("config", "", "Experiment setup (YAML); plays a single game when empty")
	outDir := flag.String("out", "experiments", "Directory for experiment results")
	blackDepth := flag.Int("black", meta.DEFAULT_DEPTH, "Search depth of the black agent (0 plays randomly)")
	redDepth := flag.Int("red", meta.DEFAULT_DEPTH, "Search depth of the red agent (0 plays randomly)")
	seed := flag.Uint64("seed", 0, "Seed for move shuffling and random agents")
	verbose := flag.Bool("v", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *setupPath != "" {
		if err := runExperiment(*setupPath, *outDir); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	e := engine.NewLocalEngine(newAgent(*blackDepth, *seed), newAgent(*redDepth, *seed+1))
	winner, gameMetric, _ := e.Run()
	fmt.Print(e.Board)
	fmt.Printf("Winner: %s after %d moves in %s\n", winner, gameMetric.TotalMoves, gameMetric.Duration)
}

func newAgent(depth int, seed uint64) agent.Agent {
	if depth <= 0 {
		return agent.NewRandomAgent(seed)
	}
	return agent.NewSearchAgent(searcher.NewAlphaBeta(
		searcher.WithDepth(depth),
		searcher.WithSeed(seed),
		searcher.WithMetrics(),
	))
}

func runExperiment(path, outDir string) error {
	setup, err := experiments.LoadSetup(path)
	if err != nil {
		return err
	}
	writer, err := metrics.NewWriter(outDir, setup.Name)
	if err != nil {
		return err
	}

	records, err := experiments.Run(setup, writer)
	if err != nil {
		return err
	}
	for id, wins := range experiments.Summary(records) {
		if id == 0 {
			fmt.Printf("Draws: %d\n", wins)
			continue
		}
		fmt.Printf("Agent %d wins: %d\n", id, wins)
	}
	return nil
}
