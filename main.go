package main

import (
	"flag"
	"fmt"
	"kingdomino/agent"
	"kingdomino/config"
	"kingdomino/engine"
	"kingdomino/experiments"
	"kingdomino/experiments/metrics"
	"kingdomino/game"
	"kingdomino/player"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "", "path to a config file")
	serve := flag.Bool("serve", false, "run the advisor server regardless of the configured mode")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	if *serve {
		cfg.Mode = config.ModeServe
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	switch cfg.Mode {
	case config.ModeServe:
		err = runServer(cfg)
	case config.ModeStrategies:
		err = experiments.RunStrategyExperiment(cfg.OutputDir, seed)
	case config.ModeThroughput:
		err = experiments.RunThroughputExperiment(cfg.OutputDir, seed)
	default:
		err = runGame(cfg, seed)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.Mode)
	}
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
}

func runServer(cfg *config.Config) error {
	s := agent.NewServer(agent.WithGoroutines(cfg.Goroutines), agent.WithHalfExtent(cfg.HalfExtent))
	addr := ":" + cfg.ServerPort
	log.Info().Msgf("advisor listening on %s", addr)
	return http.ListenAndServe(addr, s)
}

// runGame plays a single game with one player per configured strategy and
// prints every kingdom.
func runGame(cfg *config.Config, seed uint64) error {
	players := make([]*player.Player, len(cfg.Strategies))
	for i, strategy := range cfg.Strategies {
		p, err := experiments.NewPlayer(fmt.Sprintf("p%d-%s", i+1, strategy), metrics.AgentConfig{
			ID:         i + 1,
			Strategy:   strategy,
			Goroutines: cfg.Goroutines,
		}, seed+uint64(i))
		if err != nil {
			return err
		}
		p.Board = game.NewBoard(game.WithHalfExtent(cfg.HalfExtent, cfg.HalfExtent))
		players[i] = p
	}

	options := []engine.Option{engine.WithSeed(seed)}
	if cfg.Bonuses {
		options = append(options, engine.WithBonuses())
	}
	e, err := engine.NewLocal(players, options...)
	if err != nil {
		return err
	}
	result, err := e.Run()
	if err != nil {
		return err
	}

	for _, p := range players {
		fmt.Println(p)
	}
	fmt.Printf("winner: %s %v\n", result.Winner, result.Scores)
	return nil
}
