package deck

import (
	"fmt"
	"regexp"
	"strings"
)

// Suit represents a card suit
// The declaration order is the sort order.
type Suit int

// suit constants
const (
	Spades Suit = iota + 1
	Diamonds
	Hearts
	Clubs
)

var suitNames = [...]string{
	Spades:   "Spades",
	Diamonds: "Diamonds",
	Hearts:   "Hearts",
	Clubs:    "Clubs",
}

var suitSymbols = [...]string{
	Spades:   "♠",
	Diamonds: "♦",
	Hearts:   "♥",
	Clubs:    "♣",
}

var suitInitials = [...]string{
	Spades:   "s",
	Diamonds: "d",
	Hearts:   "h",
	Clubs:    "c",
}

// Suits returns every suit in sort order
func Suits() []Suit {
	return []Suit{Spades, Diamonds, Hearts, Clubs}
}

// IsValid returns true if the suit is one of the four known suits
func (s Suit) IsValid() bool {
	return s >= Spades && s <= Clubs
}

func (s Suit) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}

	return suitNames[s]
}

// Symbol returns the glyph for the suit
func (s Suit) Symbol() string {
	if !s.IsValid() {
		return "?"
	}

	return suitSymbols[s]
}

// ParseSuit returns the suit for the name (i.e., "Spades")
// The match is case-sensitive.
func ParseSuit(name string) (Suit, error) {
	for _, suit := range Suits() {
		if suitNames[suit] == name {
			return suit, nil
		}
	}

	return 0, &InvalidValueError{Field: "suit", Value: name}
}

// Rank represents a card rank
// The declaration order is the sort order, so an ace is high.
type Rank int

// rank constants
const (
	Two Rank = iota + 1
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankLabels = [...]string{
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

// Ranks returns every rank in sort order
func Ranks() []Rank {
	ranks := make([]Rank, 0, Ace)
	for r := Two; r <= Ace; r++ {
		ranks = append(ranks, r)
	}

	return ranks
}

// IsValid returns true if the rank is one of the thirteen known ranks
func (r Rank) IsValid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) String() string {
	if !r.IsValid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}

	return rankLabels[r]
}

// ParseRank returns the rank for the label (i.e., "10" or "Q")
// The match is case-sensitive.
func ParseRank(label string) (Rank, error) {
	for _, rank := range Ranks() {
		if rankLabels[rank] == label {
			return rank, nil
		}
	}

	return 0, &InvalidValueError{Field: "rank", Value: label}
}

// Card is an individual playing card
// Cards are values; the zero Card is not a valid card.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard returns the card for the suit name and rank label
// An *InvalidValueError is returned if either is unknown.
func NewCard(suit, rank string) (Card, error) {
	s, err := ParseSuit(suit)
	if err != nil {
		return Card{}, err
	}

	r, err := ParseRank(rank)
	if err != nil {
		return Card{}, err
	}

	return Card{suit: s, rank: r}, nil
}

// MustCard is like NewCard, but panics on an invalid suit or rank
func MustCard(suit, rank string) Card {
	card, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}

	return card
}

// CardOf returns the card for an enumerated suit and rank
func CardOf(suit Suit, rank Rank) (Card, error) {
	if !suit.IsValid() {
		return Card{}, &InvalidValueError{Field: "suit", Value: suit.String()}
	}

	if !rank.IsValid() {
		return Card{}, &InvalidValueError{Field: "rank", Value: rank.String()}
	}

	return Card{suit: suit, rank: rank}, nil
}

// Suit returns the suit name, i.e., "Spades"
func (c Card) Suit() string {
	return c.suit.String()
}

// Rank returns the rank label, i.e., "A"
func (c Card) Rank() string {
	return c.rank.String()
}

// SuitValue returns the enumerated suit
func (c Card) SuitValue() Suit {
	return c.suit
}

// RankValue returns the enumerated rank
func (c Card) RankValue() Rank {
	return c.rank
}

// IsValid returns false for cards that weren't built from a known suit and rank
func (c Card) IsValid() bool {
	return c.suit.IsValid() && c.rank.IsValid()
}

// Compare orders cards by suit, then by rank
// It returns -1 if c sorts before other, 1 if after, and 0 if they are equal.
func (c Card) Compare(other Card) int {
	switch {
	case c.suit < other.suit:
		return -1
	case c.suit > other.suit:
		return 1
	case c.rank < other.rank:
		return -1
	case c.rank > other.rank:
		return 1
	default:
		return 0
	}
}

// Less returns true if c sorts before other
func (c Card) Less(other Card) bool {
	return c.Compare(other) < 0
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(other Card) bool {
	return c.Compare(other) == 0
}

// Hash returns a stable hash of the card
// Equal cards always have the same hash, and no two valid cards collide.
func (c Card) Hash() uint64 {
	return uint64(c.suit)*uint64(Ace+1) + uint64(c.rank)
}

func (c Card) String() string {
	return fmt.Sprintf("%s%-2s", c.suit.Symbol(), c.rank.String())
}

var cardRx = regexp.MustCompile(`(?i)^(10|[2-9jqka])([sdhc])\z`)

// ParseCard returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is 2-10, J, Q, K or A and suit in [sdhc]
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, fmt.Errorf("could not parse card: %q", s)
	}

	rank, err := ParseRank(strings.ToUpper(match[1]))
	if err != nil {
		return Card{}, fmt.Errorf("could not parse card %q: %w", s, err)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "s":
		suit = Spades
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "c":
		suit = Clubs
	default:
		// should never be hit due to the regexp
		return Card{}, fmt.Errorf("could not parse card %q: unknown suit", s)
	}

	return Card{suit: suit, rank: rank}, nil
}

// CardFromString is like ParseCard, but panics if the string can't be parsed
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}

	return card
}

// MarshalText encodes the card in the <rank><suit> format, i.e., "10d"
// The zero card encodes as an empty string.
func (c Card) MarshalText() ([]byte, error) {
	return []byte(CardToString(c)), nil
}

// UnmarshalText decodes a card in the <rank><suit> format
// An empty string decodes as the zero card.
func (c *Card) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = Card{}
		return nil
	}

	card, err := ParseCard(string(text))
	if err != nil {
		return err
	}

	*c = card
	return nil
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Spades) to a string (As)
func CardToString(card Card) string {
	if !card.IsValid() {
		return ""
	}

	return card.rank.String() + suitInitials[card.suit]
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,As,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
