package searcher

import (
	"kingdomino/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func placement(x1, y1, x2, y2 int) game.Placement {
	return game.Placement{First: game.Coordinate{X: x1, Y: y1}, Second: game.Coordinate{X: x2, Y: y2}}
}

func domino(id int) game.Domino {
	d, ok := game.DominoByID(id)
	if !ok {
		panic("unknown domino")
	}
	return d
}

// byScore prefers the highest official score.
func byScore(b *game.Board) Key {
	return Key{-b.Score()}
}

func constant(b *game.Board) Key {
	return Key{0}
}

func TestKeyCompare(t *testing.T) {
	require.Negative(t, Key{1, 9}.Compare(Key{2, 0}))
	require.Positive(t, Key{2, 1}.Compare(Key{2, 0}))
	require.Zero(t, Key{3, 4}.Compare(Key{3, 4}))
	require.Negative(t, Key{3}.Compare(Key{3, 0}), "Shorter prefix should rank first")
}

func TestSimulate(t *testing.T) {
	t.Run("ranks placements by key", func(t *testing.T) {
		board := game.NewBoard()
		require.NoError(t, board.PlaceDomino(placement(1, 0, 2, 0), domino(48))) // mine 3, field

		simulations, _, err := New().Simulate(board, domino(46), byScore) // mine 2, swamp

		require.NoError(t, err)
		best := simulations[0]
		require.Equal(t, 10, best.Score, "Mine half next to the 3 crown mine: 2 tiles x 5 crowns")
		for i := 1; i < len(simulations); i++ {
			require.LessOrEqual(t, simulations[i-1].Key.Compare(simulations[i].Key), 0,
				"Simulations should be sorted by key")
		}
	})

	t.Run("ties keep coordinate order", func(t *testing.T) {
		board := game.NewBoard()
		d := domino(1)
		places, err := board.Places(d)
		require.NoError(t, err)

		simulations, _, err := New().Simulate(board, d, constant)

		require.NoError(t, err)
		require.Len(t, simulations, len(places))
		for i, s := range simulations {
			require.Equal(t, places[i], s.Placement)
		}
	})

	t.Run("seeded shuffle is reproducible", func(t *testing.T) {
		board := game.NewBoard()
		d := domino(13)

		first, _, err := New(WithRand(rand.New(rand.NewSource(3)))).Simulate(board, d, constant)
		require.NoError(t, err)
		second, _, err := New(WithRand(rand.New(rand.NewSource(3)))).Simulate(board, d, constant)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("parallel and sequential agree", func(t *testing.T) {
		board := game.NewBoard()
		require.NoError(t, board.PlaceDomino(placement(0, 1, 0, 2), domino(19)))
		d := domino(24)

		sequential, _, err := New().Simulate(board, d, byScore)
		require.NoError(t, err)
		parallel, _, err := New(WithGoroutines(4)).Simulate(board, d, byScore)
		require.NoError(t, err)

		require.Equal(t, sequential, parallel)
	})

	t.Run("board is left untouched", func(t *testing.T) {
		board := game.NewBoard()
		hash := board.Hash()

		_, _, err := New(WithGoroutines(3)).Simulate(board, domino(30), byScore)

		require.NoError(t, err)
		require.Equal(t, hash, board.Hash())
		require.Equal(t, 1, board.Len())
	})

	t.Run("collects metrics", func(t *testing.T) {
		board := game.NewBoard()

		_, metric, err := New(WithGoroutines(2), WithMetrics()).Simulate(board, domino(5), constant)

		require.NoError(t, err)
		require.Equal(t, 2, metric.Goroutines)
		require.Equal(t, 24, metric.Candidates)
		require.Equal(t, 24, metric.Simulations)
	})

	t.Run("full board", func(t *testing.T) {
		board := game.NewBoard(game.WithHalfExtent(2, 2))
		require.NoError(t, board.PlaceDomino(placement(1, 0, 1, 1), domino(1)))
		require.Empty(t, board.FrontierPlacements(), "A 2x2 kingdom has one cell left, too small for a domino")

		_, _, err := New().Simulate(board, domino(3), constant)

		require.ErrorIs(t, err, game.ErrNoMorePlace)
	})

	t.Run("unplayable domino", func(t *testing.T) {
		board := game.NewBoard()
		for _, p := range []game.Placement{
			placement(1, 0, 2, 0), placement(0, 1, 0, 2), placement(-1, 0, -2, 0), placement(0, -1, 0, -2),
		} {
			require.NoError(t, board.PlaceDomino(p, domino(1)))
		}

		_, err := New().Best(board, domino(7), constant) // lake, lake

		require.ErrorIs(t, err, game.ErrDominoNotPlayable)
	})
}
