package player

import (
	"errors"
	"fmt"
	"kingdomino/experiments/metrics"
	"kingdomino/game"
	"kingdomino/searcher"
	"kingdomino/utils"
	"time"

	"golang.org/x/exp/rand"
)

type State int

const (
	AwaitingDomino State = iota
	Evaluating
	Placed
	Eliminated
)

func (s State) String() string {
	switch s {
	case AwaitingDomino:
		return "awaiting-domino"
	case Evaluating:
		return "evaluating"
	case Placed:
		return "placed"
	case Eliminated:
		return "eliminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	ErrEliminated = errors.New("player is eliminated")
	ErrEmptyShop  = errors.New("no domino left to pick")
)

type Option func(p *Player)

// WithSearcher replaces the default sequential searcher.
func WithSearcher(s *searcher.Searcher) Option {
	return func(p *Player) {
		if s != nil {
			p.searcher = s
		}
	}
}

func WithBoard(b *game.Board) Option {
	return func(p *Player) {
		if b != nil {
			p.Board = b
		}
	}
}

// Player owns a kingdom and greedily places every domino it receives at the
// placement its strategy ranks best.
type Player struct {
	Name       string
	Board      *game.Board
	Score      int
	LastDomino *game.Domino
	Moves      int

	strategy   Strategy
	searcher   *searcher.Searcher
	state      State
	lastSearch metrics.SearchMetric
}

func NewPlayer(name string, strategy Strategy, options ...Option) *Player {
	if name == "" {
		panic("player name must not be empty")
	}
	p := &Player{
		Name:     name,
		strategy: strategy,
		state:    AwaitingDomino,
	}
	for _, option := range options {
		option(p)
	}
	if p.Board == nil {
		p.Board = game.NewBoard()
	}
	if p.searcher == nil {
		options := []searcher.Option{searcher.WithMetrics()}
		if strategy == Random {
			seed := uint64(time.Now().UnixNano())
			options = append(options, searcher.WithRand(rand.New(rand.NewSource(seed))))
		}
		p.searcher = searcher.New(options...)
	}
	return p
}

func (p *Player) State() State {
	return p.state
}

func (p *Player) Strategy() Strategy {
	return p.strategy
}

// LastSearch reports the search behind the latest call to Play.
func (p *Player) LastSearch() metrics.SearchMetric {
	return p.lastSearch
}

// BestMove ranks the placements of d without touching the board.
func (p *Player) BestMove(d game.Domino) (searcher.Simulation, error) {
	if p.state == Eliminated {
		return searcher.Simulation{}, ErrEliminated
	}
	return p.searcher.Best(p.Board, d, p.strategy.Evaluate())
}

// Play places d at its best placement. A domino that fits nowhere, or whose
// tiles cannot be laid at all, is discarded and the turn passes; a kingdom
// without any free slot eliminates the player. These cases are reported
// through the returned error. A placed player is made ready first.
func (p *Player) Play(d game.Domino) error {
	if p.state == Eliminated {
		return ErrEliminated
	}
	p.Ready()

	p.state = Evaluating
	p.LastDomino = &d
	simulations, search, err := p.searcher.Simulate(p.Board, d, p.strategy.Evaluate())
	p.lastSearch = search
	switch {
	case errors.Is(err, game.ErrNoMorePlace):
		p.state = Eliminated
		return err
	case errors.Is(err, game.ErrDominoNotPlayable):
		p.state = AwaitingDomino
		return err
	case err != nil:
		p.state = AwaitingDomino
		return err
	}

	best := simulations[0]
	if err := p.Board.PlaceDomino(best.Placement, d); err != nil {
		panic(fmt.Sprintf("placement %v of %v was simulated but failed: %v", best.Placement, d, err))
	}
	p.Score = best.Score
	p.Moves++
	p.state = Placed
	return nil
}

// Ready returns a placed player to waiting for its next domino.
func (p *Player) Ready() {
	if p.state == Placed {
		p.state = AwaitingDomino
	}
}

type pick struct {
	domino   game.Domino
	key      searcher.Key
	playable bool
}

func (a pick) better(b pick) bool {
	if a.playable != b.playable {
		return a.playable
	}
	if a.playable {
		if c := a.key.Compare(b.key); c != 0 {
			return c < 0
		}
	}
	return a.domino.ID < b.domino.ID
}

// PickDomino chooses the domino of shop whose best placement ranks highest
// and returns it with the rest of the shop. Dominoes that fit nowhere, or
// that carry tiles no kingdom accepts, rank last; ties go to the lowest ID.
func (p *Player) PickDomino(shop []game.Domino) (game.Domino, []game.Domino, error) {
	if len(shop) == 0 {
		return game.Domino{}, shop, ErrEmptyShop
	}

	var best *pick
	for _, d := range shop {
		candidate := pick{domino: d}
		if p.state != Eliminated {
			s, err := p.BestMove(d)
			switch {
			case err == nil:
				candidate.key, candidate.playable = s.Key, true
			case errors.Is(err, game.ErrDominoNotPlayable), errors.Is(err, game.ErrNoMorePlace), errors.Is(err, game.ErrInvalidTile):
			default:
				return game.Domino{}, shop, err
			}
		}
		if best == nil || candidate.better(*best) {
			best = &candidate
		}
	}

	rest, _ := utils.Remove(shop, best.domino)
	return best.domino, rest, nil
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%s, %s) score=%d\n%s", p.Name, p.strategy, p.state, p.Score, p.Board)
}
