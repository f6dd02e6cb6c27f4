package searcher

import (
	"cmp"
	"kingdomino/game"
)

// Key ranks a simulated board. Keys compare element by element and lower is better.
type Key []int

func (k Key) Compare(other Key) int {
	for i := 0; i < min(len(k), len(other)); i++ {
		if c := cmp.Compare(k[i], other[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(k), len(other))
}

// Evaluate computes the key of a board on which a candidate was just laid.
type Evaluate func(b *game.Board) Key

// Simulation is the outcome of laying a domino at one candidate placement.
type Simulation struct {
	Placement game.Placement `json:"placement"`
	Key       Key            `json:"key"`
	Score     int            `json:"score"`
}
