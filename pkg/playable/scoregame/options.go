package scoregame

// MinPlayers is the minimum number of players in a game
const MinPlayers = 1

// Options are the options for a scoring game
type Options struct {
	Players        int `yaml:"players" envconfig:"players"`
	CardsPerPlayer int `yaml:"cardsPerPlayer" envconfig:"cards_per_player"`
}

// DefaultOptions returns the default options: two players with three cards each
func DefaultOptions() Options {
	return Options{
		Players:        2,
		CardsPerPlayer: 3,
	}
}

// Validate checks the options against the number of cards available
func (o Options) Validate(cardsAvailable int) error {
	if o.Players < MinPlayers {
		return PlayerCountError{Min: MinPlayers, Got: o.Players}
	}

	if o.CardsPerPlayer < 1 {
		return ErrNoCardsPerPlayer
	}

	if need := o.Players * o.CardsPerPlayer; need > cardsAvailable {
		return NotEnoughCardsError{Need: need, Have: cardsAvailable}
	}

	return nil
}
