package engine

import (
	"cmp"
	"errors"
	"fmt"
	"kingdomino/experiments/metrics"
	"kingdomino/game"
	"kingdomino/meta"
	"kingdomino/player"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(e *Local)

// WithSeed makes the deck and the first turn order reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Local) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDeck plays with the given deck instead of drawing a fresh one.
func WithDeck(d *game.Deck) Option {
	return func(e *Local) {
		e.deck = d
	}
}

// WithBonuses adds the middle kingdom and harmony bonuses to final scores.
func WithBonuses() Option {
	return func(e *Local) {
		e.bonuses = true
	}
}

type reservation struct {
	player *player.Player
	domino game.Domino
}

// Local runs a whole game in process. Every round each player, ordered by the
// domino it reserved, picks a domino for the next round from a fresh shop and
// then plays the one it reserved.
type Local struct {
	players  []*player.Player
	rng      *rand.Rand
	deck     *game.Deck
	bonuses  bool
	reserved []reservation
	round    int
	step     int
	moves    []metrics.MoveMetric
}

var _ Engine = (*Local)(nil)

func NewLocal(players []*player.Player, options ...Option) (*Local, error) {
	if len(players) < meta.MIN_PLAYERS || len(players) > meta.MAX_PLAYERS {
		return nil, fmt.Errorf("%w: got %d", ErrPlayerCount, len(players))
	}
	names := make(map[string]bool, len(players))
	for _, p := range players {
		if names[p.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePlayer, p.Name)
		}
		names[p.Name] = true
	}

	e := &Local{players: slices.Clone(players)}
	for _, option := range options {
		option(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if e.deck == nil {
		deck, err := game.NewDeck(e.rng, meta.DOMINOES_PER_PLAYER*len(players))
		if err != nil {
			return nil, err
		}
		e.deck = deck
	}
	return e, nil
}

// Run executes the entire game loop until the deck can no longer fill a shop.
func (e *Local) Run() (Result, error) {
	start := time.Now()
	log.Info().Msgf("game starts with %d players and %d dominoes", len(e.players), e.deck.Remaining())

	if err := e.firstRound(); err != nil {
		return Result{}, err
	}
	for {
		last, err := e.nextRound()
		if err != nil {
			return Result{}, err
		}
		if last {
			break
		}
	}

	result := e.result(start)
	log.Info().Msgf("game %s over after %d rounds, winner %s with %v", result.Game.ID, e.round, result.Winner, result.Scores)
	return result, nil
}

// turnOrder shuffles the players for the first round. With two players each
// picks twice, the last to pick first picking again.
func (e *Local) turnOrder() []*player.Player {
	order := slices.Clone(e.players)
	e.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	if len(order) == 2 {
		return []*player.Player{order[0], order[1], order[1], order[0]}
	}
	return order
}

func (e *Local) drawShop(n int) ([]game.Domino, error) {
	shop, err := e.deck.DrawN(n)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(shop, func(a, b game.Domino) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return shop, nil
}

func (e *Local) firstRound() error {
	e.round = 1
	order := e.turnOrder()
	shop, err := e.drawShop(len(order))
	if err != nil {
		return fmt.Errorf("first round: %w", err)
	}
	for _, p := range order {
		if shop, err = e.pick(p, shop); err != nil {
			return err
		}
	}
	return nil
}

// nextRound reports whether it was the last one, which happens once the deck
// cannot fill a shop anymore. The last round only plays reservations.
func (e *Local) nextRound() (bool, error) {
	e.round++
	order := e.reserved
	e.reserved = nil
	slices.SortFunc(order, func(a, b reservation) int {
		return cmp.Compare(a.domino.ID, b.domino.ID)
	})

	shop, err := e.drawShop(len(order))
	last := errors.Is(err, game.ErrInsufficientSupply) || errors.Is(err, game.ErrDeckEmpty)
	if err != nil && !last {
		return false, err
	}
	if last {
		log.Debug().Msgf("round %d is the last, %d dominoes left unused", e.round, e.deck.Remaining())
	}

	for _, r := range order {
		if !last {
			if shop, err = e.pick(r.player, shop); err != nil {
				return false, err
			}
		}
		if err := e.play(r); err != nil {
			return false, err
		}
	}
	return last, nil
}

func (e *Local) pick(p *player.Player, shop []game.Domino) ([]game.Domino, error) {
	d, rest, err := p.PickDomino(shop)
	if err != nil {
		return nil, fmt.Errorf("player %s cannot pick: %w", p.Name, err)
	}
	e.reserved = append(e.reserved, reservation{player: p, domino: d})
	log.Debug().Msgf("round %d: %s reserves %v", e.round, p.Name, d)
	return rest, nil
}

func (e *Local) play(r reservation) error {
	e.step++
	p := r.player
	err := p.Play(r.domino)

	outcome := "placed"
	search := p.LastSearch()
	switch {
	case err == nil:
		p.Ready()
	case errors.Is(err, game.ErrDominoNotPlayable), errors.Is(err, game.ErrInvalidTile):
		outcome = "passed"
		log.Debug().Msgf("round %d: %s cannot place %v and discards it", e.round, p.Name, r.domino)
	case errors.Is(err, game.ErrNoMorePlace):
		outcome = "eliminated"
		log.Info().Msgf("round %d: %s has no free slot left", e.round, p.Name)
	case errors.Is(err, player.ErrEliminated):
		outcome = "eliminated"
		search = metrics.SearchMetric{}
	default:
		return fmt.Errorf("player %s cannot play %v: %w", p.Name, r.domino, err)
	}

	e.moves = append(e.moves, metrics.MoveMetric{
		Step:         e.step,
		Round:        e.round,
		Player:       p.Name,
		DominoID:     r.domino.ID,
		Outcome:      outcome,
		Score:        p.Score,
		BoardHash:    p.Board.Hash(),
		SearchMetric: search,
	})
	return nil
}

func (e *Local) result(start time.Time) Result {
	end := time.Now()
	result := Result{
		Players: make([]string, len(e.players)),
		Scores:  make([]int, len(e.players)),
		Winner:  winner(e.players, e.bonuses).Name,
		Moves:   e.moves,
	}
	for i, p := range e.players {
		result.Players[i] = p.Name
		result.Scores[i] = finalScore(p, e.bonuses)
	}
	result.Game = metrics.GameMetric{
		ID:         uuid.NewString(),
		Players:    result.Players,
		Scores:     result.Scores,
		Winner:     result.Winner,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		Rounds:     e.round,
		TotalMoves: len(e.moves),
	}
	return result
}

func finalScore(p *player.Player, bonuses bool) int {
	if bonuses {
		return p.Board.Score() + p.Board.Bonus()
	}
	return p.Board.Score()
}

// winner has the highest final score, then the largest region, then the most
// crowns. A full tie goes to the player listed first.
func winner(players []*player.Player, bonuses bool) *player.Player {
	rank := func(p *player.Player) [3]int {
		return [3]int{finalScore(p, bonuses), p.Board.LargestRegion(), p.Board.Crowns()}
	}
	best, bestRank := players[0], rank(players[0])
	for _, p := range players[1:] {
		r := rank(p)
		if slices.Compare(r[:], bestRank[:]) > 0 {
			best, bestRank = p, r
		}
	}
	return best
}
