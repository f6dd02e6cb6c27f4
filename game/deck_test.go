package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewDeck(t *testing.T) {
	t.Run("full shuffled deck", func(t *testing.T) {
		d, err := NewDeck(rand.New(rand.NewSource(7)), CatalogSize)
		require.NoError(t, err)
		require.Equal(t, CatalogSize, d.Remaining())

		seen := map[int]bool{}
		for d.Remaining() > 0 {
			domino, err := d.Draw()
			require.NoError(t, err)
			require.False(t, seen[domino.ID], "Domino %d drawn twice", domino.ID)
			seen[domino.ID] = true
		}
		require.Len(t, seen, CatalogSize)
	})

	t.Run("same seed, same order", func(t *testing.T) {
		d1, err := NewDeck(rand.New(rand.NewSource(42)), 24)
		require.NoError(t, err)
		d2, err := NewDeck(rand.New(rand.NewSource(42)), 24)
		require.NoError(t, err)

		all1, err := d1.DrawN(24)
		require.NoError(t, err)
		all2, err := d2.DrawN(24)
		require.NoError(t, err)
		require.Equal(t, all1, all2)
	})

	t.Run("more than the box holds", func(t *testing.T) {
		_, err := NewDeck(rand.New(rand.NewSource(1)), CatalogSize+1)

		require.ErrorIs(t, err, ErrInsufficientSupply)
	})
}

func TestDeckDraw(t *testing.T) {
	t.Run("draws from the top", func(t *testing.T) {
		catalog := Catalog()
		d := NewDeckOf(catalog[3], catalog[0])

		first, err := d.Draw()
		require.NoError(t, err)
		require.Equal(t, 4, first.ID)
		require.Equal(t, 1, d.Remaining())
	})

	t.Run("empty deck", func(t *testing.T) {
		d := NewDeckOf()

		_, err := d.Draw()

		require.ErrorIs(t, err, ErrDeckEmpty)
	})
}

func TestDeckDrawN(t *testing.T) {
	t.Run("not enough dominoes left", func(t *testing.T) {
		d := NewDeckOf(Catalog()[:3]...)

		drawn, err := d.DrawN(5)

		require.ErrorIs(t, err, ErrInsufficientSupply)
		require.Nil(t, drawn)
		require.Equal(t, 3, d.Remaining(), "Failed draw should not consume dominoes")
	})

	t.Run("exact supply", func(t *testing.T) {
		d := NewDeckOf(Catalog()[:3]...)

		drawn, err := d.DrawN(3)

		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3}, []int{drawn[0].ID, drawn[1].ID, drawn[2].ID})
		require.Zero(t, d.Remaining())
	})

	t.Run("negative count", func(t *testing.T) {
		d := NewDeckOf(Catalog()[:3]...)

		_, err := d.DrawN(-1)

		require.ErrorIs(t, err, ErrInsufficientSupply)
		require.Equal(t, 3, d.Remaining())
	})
}
