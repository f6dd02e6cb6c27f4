package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines  int
	Duration    time.Duration
	Candidates  int
	Simulations int
}

type MoveMetric struct {
	Step      int
	Round     int
	Player    string
	DominoID  int
	Outcome   string // placed, passed or eliminated
	Score     int
	BoardHash uint64
	SearchMetric
}

type GameMetric struct {
	ID         string
	Players    []string
	Scores     []int
	Winner     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	Rounds     int
	TotalMoves int
}

type AgentConfig struct {
	ID         int
	Strategy   string
	Goroutines int
}

type Collector interface {
	Start(goroutines, candidates int)
	AddSimulation()
	Complete() SearchMetric
}

type collector struct {
	goroutines  int
	candidates  int
	startTime   time.Time
	simulations atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, candidates int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.candidates = candidates
	m.simulations.Store(0)
}

func (m *collector) AddSimulation() {
	m.simulations.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:  m.goroutines,
		Duration:    time.Since(m.startTime),
		Candidates:  m.candidates,
		Simulations: int(m.simulations.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, candidates int) {}
func (m *dummyCollector) AddSimulation()                   {}
func (m *dummyCollector) Complete() SearchMetric           { return SearchMetric{} }
