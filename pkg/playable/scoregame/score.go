package scoregame

import "pokerdeck/pkg/deck"

var suitScores = map[deck.Suit]int{
	deck.Spades:   1,
	deck.Diamonds: 2,
	deck.Hearts:   3,
	deck.Clubs:    4,
}

// SuitScore returns the score for the suit: Spades = 1, Diamonds = 2, Hearts = 3, Clubs = 4
func SuitScore(suit deck.Suit) int {
	return suitScores[suit]
}

// RankScore returns the score for the rank
// Numbered cards score their value, an ace is 1 and J, Q, K are 11, 12, 13.
func RankScore(rank deck.Rank) int {
	switch {
	case rank == deck.Ace:
		return 1
	case rank.IsValid():
		// Two is the first rank
		return int(rank-deck.Two) + 2
	default:
		return 0
	}
}

// CardScore is the suit score multiplied by the rank score
func CardScore(card deck.Card) int {
	return SuitScore(card.SuitValue()) * RankScore(card.RankValue())
}

// HandScore is the sum of the card scores
func HandScore(hand deck.Hand) int {
	score := 0
	for _, card := range hand {
		score += CardScore(card)
	}

	return score
}
