package experiments

import (
	"fmt"
	"kingdomino/engine"
	"kingdomino/experiments/metrics"
	"kingdomino/player"
	"kingdomino/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const NumGames = 30 // Per match up

var strategyConfigs = []metrics.AgentConfig{
	{ID: 1, Strategy: player.Greedy.String(), Goroutines: 1},
	{ID: 2, Strategy: player.Compact.String(), Goroutines: 1},
	{ID: 3, Strategy: player.Perimeter.String(), Goroutines: 1},
	{ID: 4, Strategy: player.Scorer.String(), Goroutines: 1},
}

var parallelConfigs = []metrics.AgentConfig{
	{ID: 1, Strategy: player.Greedy.String(), Goroutines: 1},
	{ID: 2, Strategy: player.Greedy.String(), Goroutines: 2},
	{ID: 3, Strategy: player.Greedy.String(), Goroutines: 4},
	{ID: 4, Strategy: player.Greedy.String(), Goroutines: 8},
}

// RunStrategyExperiment pairs every strategy against the random baseline and
// against each other.
func RunStrategyExperiment(dir string, seed uint64) error {
	baseline := metrics.AgentConfig{ID: 0, Strategy: player.Random.String(), Goroutines: 1}
	matchUps := [][]metrics.AgentConfig{}
	for i, config := range strategyConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
		for _, other := range strategyConfigs[i+1:] {
			matchUps = append(matchUps, []metrics.AgentConfig{config, other})
		}
	}

	return Run("strategies", append(strategyConfigs, baseline), matchUps, NumGames, seed, dir)
}

// RunThroughputExperiment measures how search time scales with goroutines.
// Each matchup uses the same config for every seat so games stay comparable.
func RunThroughputExperiment(dir string, seed uint64) error {
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range parallelConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config, config, config})
	}

	return Run("throughput", parallelConfigs, matchUps, 1, seed, dir)
}

// Run plays numGames games per matchup and stores configs, games and moves as
// CSV under dir. Game i of the experiment is seeded with seed+i.
func Run(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, numGames int, seed uint64, dir string) error {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between %+v...", mi+1, len(matchUps), matchup)

		for i := 0; i < numGames; i++ {
			count++
			result, err := runGame(matchup, seed+uint64(count))
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			record := metrics.GameRecord{
				ID:         count,
				Agents:     make([]int, len(matchup)),
				GameMetric: result.Game,
			}
			agents := make(map[string]int, len(matchup))
			for seat, config := range matchup {
				record.Agents[seat] = config.ID
				agents[result.Players[seat]] = config.ID
			}
			record.WinnerAgent = agents[result.Winner]
			gameRecords = append(gameRecords, record)

			for _, mm := range result.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					Agent:      agents[mm.Player],
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s %v", mi+1, len(matchUps), i+1, result.Winner, result.Scores)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err = writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err = writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err = writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// runGame seats one player per config, named after its seat and agent.
func runGame(configs []metrics.AgentConfig, seed uint64) (engine.Result, error) {
	players := make([]*player.Player, len(configs))
	for seat, config := range configs {
		p, err := NewPlayer(fmt.Sprintf("p%d-agent%d", seat+1, config.ID), config, seed+uint64(seat))
		if err != nil {
			return engine.Result{}, err
		}
		players[seat] = p
	}

	e, err := engine.NewLocal(players, engine.WithSeed(seed))
	if err != nil {
		return engine.Result{}, err
	}
	return e.Run()
}

// NewPlayer builds a player from an agent config. Searches are measured, and
// random strategies are seeded for reproducible games.
func NewPlayer(name string, config metrics.AgentConfig, seed uint64) (*player.Player, error) {
	strategy, err := player.ParseStrategy(config.Strategy)
	if err != nil {
		return nil, err
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if strategy == player.Random {
		options = append(options, searcher.WithRand(rand.New(rand.NewSource(seed))))
	}
	return player.NewPlayer(name, strategy, player.WithSearcher(searcher.New(options...))), nil
}
