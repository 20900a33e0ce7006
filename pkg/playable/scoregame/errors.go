package scoregame

import (
	"errors"
	"fmt"
)

// ErrNoCardsPerPlayer is returned when the game would deal nothing
var ErrNoCardsPerPlayer = errors.New("each player needs at least one card")

// ErrAlreadyDealt is returned when Deal() is called more than once
var ErrAlreadyDealt = errors.New("cards have already been dealt")

// ErrNotDealt is returned when the result is requested before the deal
var ErrNotDealt = errors.New("cards have not been dealt")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError struct {
	Min int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected at least %d players, got %d", p.Min, p.Got)
}

// NotEnoughCardsError is returned when the deck can't cover the deal
type NotEnoughCardsError struct {
	Need int
	Have int
}

func (n NotEnoughCardsError) Error() string {
	return fmt.Sprintf("need %d cards to deal, deck has %d", n.Need, n.Have)
}
