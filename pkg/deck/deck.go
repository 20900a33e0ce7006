package deck

import (
	"pokerdeck/internal/rng"
	"sort"

	"github.com/sirupsen/logrus"
)

// Deck represents a playing deck
// A Deck is a fixed set of eligible cards plus the stack of cards that can
// still be drawn. The top of the deck is the end of the stack.
//
// A Deck is not safe for concurrent use.
type Deck struct {
	cardSet map[Card]struct{}
	cards   Hand
	rng     rng.Generator
}

// New returns a new deck with all 52 cards
// The order of the cards is unspecified. Call Shuffle() for a random order.
func New() *Deck {
	cardSet := make(map[Card]struct{}, len(Suits())*len(Ranks()))
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cardSet[Card{suit: suit, rank: rank}] = struct{}{}
		}
	}

	return newDeck(cardSet)
}

// NewShuffled returns a full deck shuffled with gen
// The cards are sorted before the shuffle, so a seeded generator always
// produces the same order.
func NewShuffled(gen rng.Generator) *Deck {
	d := New()
	d.SetGenerator(gen)
	d.Sort()
	d.Shuffle()

	return d
}

// NewFromCards returns a new deck limited to the specified cards
// Duplicate cards are only added once. ErrEmptyInput is returned if no cards
// are specified, and ErrInvalidArgument if any card is not a valid card.
func NewFromCards(cards []Card) (*Deck, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyInput
	}

	cardSet := make(map[Card]struct{}, len(cards))
	for _, card := range cards {
		if !card.IsValid() {
			return nil, ErrInvalidArgument
		}

		cardSet[card] = struct{}{}
	}

	return newDeck(cardSet), nil
}

func newDeck(cardSet map[Card]struct{}) *Deck {
	d := &Deck{
		cardSet: cardSet,
		rng:     rng.Crypto{},
	}

	d.Reset()
	return d
}

// SetGenerator will replace the random number generator used by Shuffle()
// This is normally only used by tests to get a repeatable shuffle.
func (d *Deck) SetGenerator(gen rng.Generator) {
	d.rng = gen
}

// Reset puts every card from the card set back into the deck
// The resulting order is unspecified and must not be relied on.
func (d *Deck) Reset() {
	cards := make(Hand, 0, len(d.cardSet))
	for card := range d.cardSet {
		cards = append(cards, card)
	}

	d.cards = cards
	logrus.WithField("cards", len(cards)).Debug("deck reset")
}

// Size returns the number of cards left in the deck
func (d *Deck) Size() int {
	return len(d.cards)
}

// CardSetSize returns the number of cards the deck holds after a Reset()
func (d *Deck) CardSetSize() int {
	return len(d.cardSet)
}

// Contains returns true if the card can currently be drawn
func (d *Deck) Contains(card Card) bool {
	return d.cards.HasCard(card)
}

// Cards returns a copy of the cards left in the deck. The last card is the top of the deck.
func (d *Deck) Cards() Hand {
	return d.cards.Clone()
}

// Draw will draw the card on top of the deck
// If there are no more cards, ErrEmptyDeck is returned along with a zero card.
func (d *Deck) Draw() (Card, error) {
	card, ok := d.cards.LastCard()
	if !ok {
		return Card{}, ErrEmptyDeck
	}

	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Add will put a card back on top of the deck
// The card is only added if it belongs to the deck's card set and it's not
// already in the deck. Returns true if the card was added.
func (d *Deck) Add(card Card) bool {
	if _, ok := d.cardSet[card]; !ok {
		return false
	}

	if d.cards.HasCard(card) {
		return false
	}

	d.cards.AddCard(card)
	return true
}

// Sort puts the cards left in the deck in order, with the highest card on top
func (d *Deck) Sort() {
	sort.Sort(d.cards)
}

// Shuffle will shuffle the cards left in the deck
func (d *Deck) Shuffle() {
	for j := len(d.cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}

	logrus.WithField("cards", len(d.cards)).Debug("deck shuffled")
}
