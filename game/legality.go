package game

import (
	"fmt"
	"slices"
)

// Places returns the frontier placements where d touches a matching terrain,
// sorted. ErrNoMorePlace means the board is full within its bounds,
// ErrDominoNotPlayable that only this domino cannot be laid. A domino Place
// would reject for its tiles fails with ErrInvalidTile.
func (b *Board) Places(d Domino) ([]Placement, error) {
	for _, t := range d.Tiles {
		if !t.placeable() {
			return nil, fmt.Errorf("domino %s: tile %s: %w", d, t, ErrInvalidTile)
		}
	}
	if len(b.placements) == 0 {
		return nil, ErrNoMorePlace
	}

	var places []Placement
	for p := range b.placements {
		if b.matches(p, d.Tiles) {
			places = append(places, p)
		}
	}
	if len(places) == 0 {
		return nil, ErrDominoNotPlayable
	}

	slices.SortFunc(places, comparePlacements)
	return places, nil
}

// CanPlay reports whether d has at least one legal placement.
func (b *Board) CanPlay(d Domino) bool {
	if !d.Tiles[0].placeable() || !d.Tiles[1].placeable() {
		return false
	}
	for p := range b.placements {
		if b.matches(p, d.Tiles) {
			return true
		}
	}
	return false
}
