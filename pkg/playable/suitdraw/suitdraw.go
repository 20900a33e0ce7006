// Package suitdraw draws cards until every suit has shown up
package suitdraw

import (
	"fmt"
	"pokerdeck/pkg/deck"
	"pokerdeck/pkg/playable"
	"sort"

	"github.com/sirupsen/logrus"
)

// Result is the outcome of a draw
type Result struct {
	// Cards are the drawn cards, sorted
	Cards deck.Hand
	Logs  []*playable.LogMessage
}

// Run draws from the deck until all four suits are seen, then sorts the drawn cards
// The deck is used as-is; shuffle it first for a random draw. If the deck
// runs out first, the wrapped deck.ErrEmptyDeck is returned with the cards
// drawn so far.
func Run(d *deck.Deck) (*Result, error) {
	want := len(deck.Suits())
	seen := make(map[deck.Suit]bool, want)
	res := &Result{
		Cards: make(deck.Hand, 0, want),
	}

	for len(seen) < want {
		card, err := d.Draw()
		if err != nil {
			sort.Sort(res.Cards)
			return res, fmt.Errorf("drew %d cards and saw %d suits: %w", len(res.Cards), len(seen), err)
		}

		res.Cards.AddCard(card)
		res.Logs = append(res.Logs, playable.CardLogMessage(0, []deck.Card{card}, "drew %s", card))

		if !seen[card.SuitValue()] {
			seen[card.SuitValue()] = true
			logrus.WithFields(logrus.Fields{
				"card":  deck.CardToString(card),
				"suits": len(seen),
			}).Debug("new suit")
		}
	}

	sort.Sort(res.Cards)
	res.Logs = append(res.Logs, playable.SimpleLogMessage(0, "saw all suits after %d cards", len(res.Cards)))

	return res, nil
}

// DrawSorted draws count cards from the deck and returns them sorted
// If the deck runs out first, the wrapped deck.ErrEmptyDeck is returned with the cards drawn so far.
func DrawSorted(d *deck.Deck, count int) (*Result, error) {
	res := &Result{
		Cards: make(deck.Hand, 0, count),
	}

	for len(res.Cards) < count {
		card, err := d.Draw()
		if err != nil {
			sort.Sort(res.Cards)
			return res, fmt.Errorf("drew %d of %d cards: %w", len(res.Cards), count, err)
		}

		res.Cards.AddCard(card)
		res.Logs = append(res.Logs, playable.CardLogMessage(0, []deck.Card{card}, "drew %s", card))
	}

	sort.Sort(res.Cards)
	return res, nil
}
