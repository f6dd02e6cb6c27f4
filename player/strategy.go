package player

import (
	"fmt"
	"kingdomino/game"
	"kingdomino/searcher"
)

// Strategy decides how candidate boards are compared. Every key is ranked
// ascending, so region based strategies favour fewer, larger regions.
type Strategy int

const (
	Greedy    Strategy = iota // fewest regions
	Compact                   // fewest regions, then smallest bounding box
	Perimeter                 // fewest regions, then shortest bounding box perimeter
	Scorer                    // highest official score
	Random                    // any legal placement
)

var strategyNames = [...]string{
	Greedy:    "greedy",
	Compact:   "compact",
	Perimeter: "perimeter",
	Scorer:    "scorer",
	Random:    "random",
}

func (s Strategy) String() string {
	if s < Greedy || s > Random {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return Strategy(s), nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}

func (s Strategy) Evaluate() searcher.Evaluate {
	switch s {
	case Compact:
		return func(b *game.Board) searcher.Key {
			return searcher.Key{b.RegionCount(), b.Area()}
		}
	case Perimeter:
		return func(b *game.Board) searcher.Key {
			return searcher.Key{b.RegionCount(), b.Perimeter()}
		}
	case Scorer:
		return func(b *game.Board) searcher.Key {
			return searcher.Key{-b.Score()}
		}
	case Random:
		// every candidate ties, the searcher's shuffle decides
		return func(b *game.Board) searcher.Key {
			return searcher.Key{}
		}
	default:
		return func(b *game.Board) searcher.Key {
			return searcher.Key{b.RegionCount()}
		}
	}
}
