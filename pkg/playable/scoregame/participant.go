package scoregame

import (
	"pokerdeck/internal/util"
	"pokerdeck/pkg/deck"
	"pokerdeck/pkg/playable"
)

// Seat is a player who sits down at a game
type Seat struct {
	ID   int64
	Name string
}

// GetPlayerID returns the player ID
func (s Seat) GetPlayerID() int64 {
	return s.ID
}

// GetName returns the player's display name
func (s Seat) GetName() string {
	return s.Name
}

// NamedSeats returns a seat for each name, numbered from 1
func NamedSeats(names []string) []playable.Player {
	seats := make([]playable.Player, len(names))
	for i, name := range names {
		seats[i] = Seat{ID: int64(i + 1), Name: name}
	}

	return seats
}

// RandomSeats returns n seats, numbered from 1, with random names
func RandomSeats(n int) []playable.Player {
	if n <= 0 {
		return nil
	}

	names := make([]string, n)
	for i := range names {
		names[i] = util.GetRandomName()
	}

	return NamedSeats(names)
}

// Participant is a player in the game
type Participant struct {
	player playable.Player
	hand   deck.Hand
}

// GetPlayerID returns the player ID
func (p *Participant) GetPlayerID() int64 {
	return p.player.GetPlayerID()
}

// GetName returns the player's display name
func (p *Participant) GetName() string {
	return p.player.GetName()
}

// Player returns the seated player
func (p *Participant) Player() playable.Player {
	return p.player
}

// Hand returns a copy of the participant's cards in the order they were dealt
func (p *Participant) Hand() deck.Hand {
	return p.hand.Clone()
}

// Score returns the score of the participant's hand
func (p *Participant) Score() int {
	return HandScore(p.hand)
}
