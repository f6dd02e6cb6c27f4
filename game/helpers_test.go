package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func pl(x1, y1, x2, y2 int) Placement {
	return Placement{First: Coordinate{X: x1, Y: y1}, Second: Coordinate{X: x2, Y: y2}}
}

func tiles(t1 Terrain, c1 int, t2 Terrain, c2 int) [2]Tile {
	return [2]Tile{{Terrain: t1, Crowns: c1}, {Terrain: t2, Crowns: c2}}
}

// mustPlace lays a sequence of placements and fails the test on the first error.
func mustPlace(t *testing.T, b *Board, moves ...struct {
	p     Placement
	tiles [2]Tile
}) {
	t.Helper()
	for i, m := range moves {
		require.NoError(t, b.Place(m.p, m.tiles), "move %d (%s) should be legal", i, m.p)
	}
}

type move = struct {
	p     Placement
	tiles [2]Tile
}

// fullBoard returns a 3x3 kingdom with no free cell left.
func fullBoard(t *testing.T) *Board {
	t.Helper()
	b := NewBoard(WithHalfExtent(3, 3))
	mustPlace(t, b,
		move{pl(1, 0, 2, 0), tiles(Field, 0, Field, 0)},
		move{pl(0, 1, 0, 2), tiles(Field, 0, Field, 0)},
		move{pl(1, 1, 2, 1), tiles(Field, 0, Field, 0)},
		move{pl(1, 2, 2, 2), tiles(Field, 0, Field, 0)},
	)
	return b
}

// walledCapital returns a board whose capital is surrounded by fields.
func walledCapital(t *testing.T) *Board {
	t.Helper()
	b := NewBoard()
	mustPlace(t, b,
		move{pl(1, 0, 2, 0), tiles(Field, 0, Field, 0)},
		move{pl(0, 1, 0, 2), tiles(Field, 0, Field, 0)},
		move{pl(-1, 0, -2, 0), tiles(Field, 0, Field, 0)},
		move{pl(0, -1, 0, -2), tiles(Field, 0, Field, 0)},
	)
	return b
}
