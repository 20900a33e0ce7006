package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var adjectives = []string{
	"Lucky", "Unlucky", "Bluffing", "Stone-Faced", "Shuffling", "Sly", "Bold", "Patient", "Wild", "Silent",
	"Grinning", "Sleepy", "Reckless", "Careful", "Cunning", "Jolly", "Grumpy", "Sharp", "Dealing", "Daring",
}

var characters = []string{
	"Dealer", "Gambler", "Shark", "Fish", "Ace", "Joker", "Knave", "Duke", "Baron", "Riverboat",
	"Hustler", "Cowboy", "Magician", "Banker", "Croupier", "Sheriff", "Stranger", "Kid",
}

// GetRandomName returns a random player name by combining an adjective with a character
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	charactersIndex := random.Intn(len(characters))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], characters[charactersIndex])
}
