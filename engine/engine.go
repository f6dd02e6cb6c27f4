package engine

import (
	"errors"
	"kingdomino/experiments/metrics"
)

var (
	ErrPlayerCount     = errors.New("a game needs between 2 and 4 players")
	ErrDuplicatePlayer = errors.New("player names must be unique")
)

type Engine interface {
	// Run plays a game until every reserved domino has been played
	Run() (Result, error)
}

// Result is the outcome of a game. Players and Scores follow the order the
// players were given to the engine, not the turn order.
type Result struct {
	Players []string
	Scores  []int
	Winner  string
	Game    metrics.GameMetric
	Moves   []metrics.MoveMetric
}
