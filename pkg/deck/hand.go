package deck

import "strings"

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	return h[i].Less(h[j])
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Suits returns the distinct suits in the hand, in sort order
func (h Hand) Suits() []Suit {
	var seen [Clubs + 1]bool
	for _, c := range h {
		seen[c.suit] = true
	}

	suits := make([]Suit, 0, len(seen))
	for _, suit := range Suits() {
		if seen[suit] {
			suits = append(suits, suit)
		}
	}

	return suits
}

// LastCard returns the last card in the hand and false if the hand is empty
func (h Hand) LastCard() (Card, bool) {
	n := len(h)
	if n == 0 {
		return Card{}, false
	}

	return h[n-1], true
}

// Display returns the cards with their suit glyphs, separated by spaces
func (h Hand) Display() string {
	c := make([]string, len(h))
	for i, card := range h {
		c[i] = card.String()
	}

	return strings.Join(c, " ")
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
