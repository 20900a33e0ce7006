package deck

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is matched by an *InvalidValueError
var ErrInvalidValue = errors.New("invalid card value")

// ErrInvalidArgument is returned when a deck is built from something other than valid cards
var ErrInvalidArgument = errors.New("input is not a sequence of cards")

// ErrEmptyInput is returned when a deck is built from an empty slice of cards
var ErrEmptyInput = errors.New("input is an empty sequence")

// ErrEmptyDeck is an error when Draw() is attempted and there are no more cards
var ErrEmptyDeck = errors.New("card deck is empty")

// InvalidValueError is returned when a card is built from an unknown suit or rank
type InvalidValueError struct {
	// Field is either "suit" or "rank"
	Field string
	Value string
}

func (i *InvalidValueError) Error() string {
	return fmt.Sprintf("unknown %s: %s", i.Field, i.Value)
}

// Is allows errors.Is(err, ErrInvalidValue)
func (i *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
