package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Deck is the face-down draw pile. Dominoes are drawn from the top.
type Deck struct {
	dominoes []Domino
}

// NewDeck shuffles the catalog with r and keeps the first size dominoes.
func NewDeck(r *rand.Rand, size int) (*Deck, error) {
	if size < 0 || size > CatalogSize {
		return nil, fmt.Errorf("deck of %d dominoes: %w", size, ErrInsufficientSupply)
	}
	dominoes := Catalog()
	r.Shuffle(len(dominoes), func(i, j int) {
		dominoes[i], dominoes[j] = dominoes[j], dominoes[i]
	})
	return &Deck{dominoes: dominoes[:size]}, nil
}

// NewDeckOf builds a deck drawing dominoes in the given order.
func NewDeckOf(dominoes ...Domino) *Deck {
	cp := make([]Domino, len(dominoes))
	copy(cp, dominoes)
	return &Deck{dominoes: cp}
}

func (d *Deck) Remaining() int {
	return len(d.dominoes)
}

func (d *Deck) String() string {
	return fmt.Sprintf("Deck with %d dominoes", len(d.dominoes))
}

func (d *Deck) Draw() (Domino, error) {
	if len(d.dominoes) == 0 {
		return Domino{}, ErrDeckEmpty
	}
	domino := d.dominoes[0]
	d.dominoes = d.dominoes[1:]
	return domino, nil
}

// DrawN draws n dominoes at once, or none at all if fewer than n remain.
func (d *Deck) DrawN(n int) ([]Domino, error) {
	if n < 0 || n > len(d.dominoes) {
		return nil, fmt.Errorf("drawing %d of %d: %w", n, len(d.dominoes), ErrInsufficientSupply)
	}
	drawn := make([]Domino, n)
	copy(drawn, d.dominoes[:n])
	d.dominoes = d.dominoes[n:]
	return drawn, nil
}
