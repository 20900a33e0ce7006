package suitdraw

import (
	"errors"
	"pokerdeck/pkg/deck"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stacked returns a deck that draws the cards in the order given
func stacked(t *testing.T, cards string) *deck.Deck {
	t.Helper()

	c := deck.CardsFromString(cards)
	d, err := deck.NewFromCards(c)
	require.NoError(t, err)
	for d.Size() > 0 {
		_, _ = d.Draw()
	}

	for i := len(c) - 1; i >= 0; i-- {
		require.True(t, d.Add(c[i]))
	}

	return d
}

func TestRun(t *testing.T) {
	d := stacked(t, "Kc,2c,As,3c,10h,4d,5s")

	res, err := Run(d)
	require.NoError(t, err)
	assert.Equal(t, "As,4d,10h,2c,3c,Kc", res.Cards.String())
	assert.Len(t, res.Logs, 7)
	assert.Equal(t, "saw all suits after 6 cards", res.Logs[6].Message)
	assert.Equal(t, 1, d.Size())
}

func TestRun_fullDeck(t *testing.T) {
	d := deck.New()
	d.Shuffle()

	res, err := Run(d)
	require.NoError(t, err)
	assert.True(t, len(res.Cards) >= 4)
	assert.True(t, len(res.Cards) <= 40)
	assert.Equal(t, deck.Suits(), res.Cards.Suits())
	assert.True(t, sort.IsSorted(res.Cards))
	assert.Equal(t, 52-len(res.Cards), d.Size())

	// the last card drawn is the only one of its suit
	last := res.Logs[len(res.Logs)-2].Cards[0]
	count := 0
	for _, card := range res.Cards {
		if card.SuitValue() == last.SuitValue() {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRun_missingSuit(t *testing.T) {
	d := stacked(t, "Kc,As,10h")

	res, err := Run(d)
	assert.True(t, errors.Is(err, deck.ErrEmptyDeck))
	assert.Equal(t, "As,10h,Kc", res.Cards.String())
}

func TestDrawSorted(t *testing.T) {
	d := deck.New()
	d.Shuffle()

	res, err := DrawSorted(d, 10)
	require.NoError(t, err)
	assert.Len(t, res.Cards, 10)
	assert.Len(t, res.Logs, 10)
	assert.True(t, sort.IsSorted(res.Cards))
	assert.Equal(t, 42, d.Size())

	seen := make(map[deck.Card]bool)
	for _, card := range res.Cards {
		assert.False(t, seen[card])
		assert.False(t, d.Contains(card))
		seen[card] = true
	}
}

func TestDrawSorted_emptyDeck(t *testing.T) {
	d := stacked(t, "Kc,As")

	res, err := DrawSorted(d, 3)
	assert.True(t, errors.Is(err, deck.ErrEmptyDeck))
	assert.Equal(t, "As,Kc", res.Cards.String())
}
