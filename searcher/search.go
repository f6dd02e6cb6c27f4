package searcher

import (
	"fmt"
	"kingdomino/experiments/metrics"
	"kingdomino/game"
	"sort"
	"sync"

	"golang.org/x/exp/rand"
)

type Option func(s *Searcher)

// Searcher lays a domino at every legal placement of a board, each on its own
// copy, and ranks the outcomes.
type Searcher struct {
	goroutines int
	rng        *rand.Rand
	metrics    metrics.Collector
}

// WithGoroutines spreads candidate simulations over n workers.
func WithGoroutines(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.goroutines = n
		}
	}
}

// WithRand shuffles candidates before ranking, so equal keys are broken at
// random instead of by coordinate order.
func WithRand(r *rand.Rand) Option {
	return func(s *Searcher) {
		if r != nil {
			s.rng = r
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		goroutines: 1,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Simulate ranks every legal placement of d on board by evaluate, best first.
// Ties keep the candidate order: sorted by coordinates, or shuffled when a
// rng is configured. The board itself is never modified.
func (s *Searcher) Simulate(board *game.Board, d game.Domino, evaluate Evaluate) ([]Simulation, metrics.SearchMetric, error) {
	places, err := board.Places(d)
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}

	s.metrics.Start(s.goroutines, len(places))
	if s.rng != nil {
		s.rng.Shuffle(len(places), func(i, j int) {
			places[i], places[j] = places[j], places[i]
		})
	}

	simulations := make([]Simulation, len(places))
	if s.goroutines > 1 {
		s.iterate(board, d, places, evaluate, simulations)
	} else {
		for i, p := range places {
			simulations[i] = s.simulate(board, d, p, evaluate)
		}
	}

	sort.SliceStable(simulations, func(i, j int) bool {
		return simulations[i].Key.Compare(simulations[j].Key) < 0
	})
	return simulations, s.metrics.Complete(), nil
}

// Best returns the top ranked simulation.
func (s *Searcher) Best(board *game.Board, d game.Domino, evaluate Evaluate) (Simulation, error) {
	simulations, _, err := s.Simulate(board, d, evaluate)
	if err != nil {
		return Simulation{}, err
	}
	return simulations[0], nil
}

func (s *Searcher) iterate(board *game.Board, d game.Domino, places []game.Placement, evaluate Evaluate, out []Simulation) {
	task := make(chan int, len(places))
	for i := range places {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < s.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				out[i] = s.simulate(board, d, places[i], evaluate)
			}
		}()
	}

	wg.Wait()
}

func (s *Searcher) simulate(board *game.Board, d game.Domino, p game.Placement, evaluate Evaluate) Simulation {
	b := board.Copy()
	if err := b.PlaceDomino(p, d); err != nil {
		// Places only returns placements Place accepts
		panic(fmt.Sprintf("candidate %s rejected: %v", p, err))
	}
	s.metrics.AddSimulation()
	return Simulation{Placement: p, Key: evaluate(b), Score: b.Score()}
}
