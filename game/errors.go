package game

import "errors"

// Placement errors. The board is left untouched when Place returns one of them.
var (
	ErrInvalidTile      = errors.New("tile cannot be laid on a kingdom")
	ErrInvalidAdjacency = errors.New("domino halves are not orthogonally adjacent")
	ErrCellOccupied     = errors.New("cell already occupied")
	ErrOutOfBounds      = errors.New("cell outside the playable region")
	ErrNotConnected     = errors.New("placement not connected to a matching terrain")
)

// Per-domino errors raised while looking for a position.
var (
	ErrDominoNotPlayable = errors.New("no legal position for this domino")
	ErrNoMorePlace       = errors.New("no free position left on the board")
)

// Deck errors.
var (
	ErrDeckEmpty          = errors.New("deck is empty")
	ErrInsufficientSupply = errors.New("deck does not hold enough dominoes")
)
