package experiments

import (
	"fmt"
	"os"
	"sync"

	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/meta"
	"checkers/searcher"
	"checkers/searcher/agent"
	"checkers/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Setup describes an experiment: agent configurations and the matchups
// between them. The first agent of a matchup plays black.
type Setup struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"`    // Per matchup
	Parallel int                   `yaml:"parallel"` // Games played at once
	MaxTurns int                   `yaml:"maxTurns"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	Matchups [][]int               `yaml:"matchups"` // Pairs of AgentConfig.ID
}

func LoadSetup(path string) (Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Setup{}, fmt.Errorf("failed to read setup: %w", err)
	}
	return ParseSetup(data)
}

func ParseSetup(data []byte) (Setup, error) {
	setup := Setup{Name: "experiment", Games: 1, Parallel: 1}
	if err := yaml.Unmarshal(data, &setup); err != nil {
		return Setup{}, fmt.Errorf("failed to parse setup: %w", err)
	}
	return setup, setup.validate()
}

func (s Setup) validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", s.Games)
	}
	if s.Parallel <= 0 {
		return fmt.Errorf("parallel must be positive, got %d", s.Parallel)
	}
	ids := make([]int, 0, len(s.Agents))
	for _, a := range s.Agents {
		if a.ID <= 0 {
			return fmt.Errorf("agent ids must be positive, got %d", a.ID)
		}
		if utils.Contains(ids, a.ID) {
			return fmt.Errorf("duplicate agent id %d", a.ID)
		}
		if !a.Random && (a.Depth < 0 || a.Depth > meta.MAX_DEPTH) {
			return fmt.Errorf("agent %d depth must be within 0..%d, got %d", a.ID, meta.MAX_DEPTH, a.Depth)
		}
		ids = append(ids, a.ID)
	}
	for _, m := range s.Matchups {
		if len(m) != 2 {
			return fmt.Errorf("matchup %v must pair two agents", m)
		}
		if !utils.Contains(ids, m[0]) || !utils.Contains(ids, m[1]) {
			return fmt.Errorf("matchup %v references an unknown agent", m)
		}
	}
	return nil
}

func (s Setup) agent(id int) metrics.AgentConfig {
	for _, a := range s.Agents {
		if a.ID == id {
			return a
		}
	}
	panic(fmt.Sprintf("unknown agent %d", id))
}

// newAgent builds a fresh agent per game, since searchers are not safe for
// concurrent use.
func newAgent(config metrics.AgentConfig, game int) agent.Agent {
	seed := config.Seed + uint64(game)
	if config.Random {
		return agent.NewRandomAgent(seed)
	}
	return agent.NewSearchAgent(searcher.NewAlphaBeta(
		searcher.WithDepth(config.Depth),
		searcher.WithSeed(seed),
		searcher.WithMetrics(),
	))
}

// Run plays every matchup Games times and writes the records. Each game is
// single-threaded; up to Parallel games run at once.
func Run(setup Setup, writer *metrics.Writer) ([]metrics.GameRecord, error) {
	if err := setup.validate(); err != nil {
		return nil, err
	}

	total := len(setup.Matchups) * setup.Games
	gameRecords := make([]metrics.GameRecord, total)
	var moveRecords []metrics.MoveRecord
	var mu sync.Mutex

	log.Info().Msgf("starting %s experiment with %d games...", setup.Name, total)

	var g errgroup.Group
	g.SetLimit(setup.Parallel)
	for mi, matchup := range setup.Matchups {
		black, red := setup.agent(matchup[0]), setup.agent(matchup[1])
		for i := 0; i < setup.Games; i++ {
			id := mi*setup.Games + i + 1
			g.Go(func() error {
				e := engine.NewLocalEngine(newAgent(black, id), newAgent(red, id))
				if setup.MaxTurns > 0 {
					e.MaxTurns = setup.MaxTurns
				}
				winner, gameMetric, moveMetrics := e.Run()

				log.Info().Msgf("matchup %d of %d game %d of %d over! Winner: %s", mi+1, len(setup.Matchups), i+1, setup.Games, winner)

				gameRecords[id-1] = metrics.GameRecord{
					ID:         id,
					Agent1:     black.ID,
					Agent2:     red.ID,
					GameMetric: gameMetric,
				}
				mu.Lock()
				for _, m := range moveMetrics {
					moveRecords = append(moveRecords, metrics.MoveRecord{Game: id, MoveMetric: m})
				}
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if writer != nil {
		if err := writer.WriteAgentConfigs(setup.Agents); err != nil {
			return nil, err
		}
		if err := writer.WriteGameRecords(gameRecords); err != nil {
			return nil, err
		}
		if err := writer.WriteMoveRecords(moveRecords); err != nil {
			return nil, err
		}
		log.Info().Msgf("wrote %s results to %s", setup.Name, writer.Dir())
	}
	return gameRecords, nil
}

// Summary counts wins per agent ID; draws are keyed by 0.
func Summary(records []metrics.GameRecord) map[int]int {
	wins := make(map[int]int)
	for _, r := range records {
		switch r.Winner {
		case "black":
			wins[r.Agent1]++
		case "red":
			wins[r.Agent2]++
		default:
			wins[0]++
		}
	}
	return wins
}
