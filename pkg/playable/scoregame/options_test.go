package scoregame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Validate(t *testing.T) {
	a := assert.New(t)

	a.NoError(DefaultOptions().Validate(52))
	a.NoError(Options{Players: 4, CardsPerPlayer: 13}.Validate(52))

	a.Equal(PlayerCountError{Min: 1, Got: 0}, Options{Players: 0, CardsPerPlayer: 3}.Validate(52))
	a.EqualError(Options{Players: 0, CardsPerPlayer: 3}.Validate(52), "expected at least 1 players, got 0")
	a.Equal(ErrNoCardsPerPlayer, Options{Players: 2, CardsPerPlayer: 0}.Validate(52))
	a.EqualError(Options{Players: 5, CardsPerPlayer: 11}.Validate(52), "need 55 cards to deal, deck has 52")
}
