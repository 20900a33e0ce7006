// Package scoregame is a simple card game where players are dealt cards and the highest total card score wins
package scoregame

import (
	"pokerdeck/pkg/deck"
	"pokerdeck/pkg/playable"

	"github.com/sirupsen/logrus"
)

// Game is a game where each player is dealt cards and the highest score wins
type Game struct {
	deck         *deck.Deck
	options      Options
	participants []*Participant
	dealt        bool
	result       *Result
	logs         []*playable.LogMessage
}

// NewGame returns a new game for the seated players
// opts.Players is replaced by the number of players. The deck is used as-is;
// shuffle it first for a random deal.
func NewGame(d *deck.Deck, players []playable.Player, opts Options) (*Game, error) {
	opts.Players = len(players)
	if err := opts.Validate(d.Size()); err != nil {
		return nil, err
	}

	participants := make([]*Participant, len(players))
	for i, player := range players {
		participants[i] = &Participant{player: player}
	}

	return &Game{
		deck:         d,
		options:      opts,
		participants: participants,
	}, nil
}

// Participants returns the participants in seat order
func (g *Game) Participants() []*Participant {
	return g.participants
}

// Logs returns the game log
func (g *Game) Logs() []*playable.LogMessage {
	return g.logs
}

// Deal deals one card at a time to each participant in turn until every
// participant has Options.CardsPerPlayer cards
// If the deck runs out, no one is dealt anything, the drawn cards go back on
// the deck and Deal can be called again.
func (g *Game) Deal() error {
	if g.dealt {
		return ErrAlreadyDealt
	}

	// hands are only handed out once the whole deal succeeds
	hands := make([]deck.Hand, len(g.participants))
	drawn := make([]deck.Card, 0, len(g.participants)*g.options.CardsPerPlayer)
	for i := 0; i < g.options.CardsPerPlayer; i++ {
		for j := range g.participants {
			card, err := g.deck.Draw()
			if err != nil {
				// put the cards back in the order they came off the deck
				for k := len(drawn) - 1; k >= 0; k-- {
					g.deck.Add(drawn[k])
				}

				return err
			}

			drawn = append(drawn, card)
			hands[j].AddCard(card)
		}
	}

	for i, p := range g.participants {
		p.hand = hands[i]
	}

	g.dealt = true
	for _, p := range g.participants {
		g.logs = append(g.logs, playable.CardLogMessage(p.GetPlayerID(), p.Hand(), "%s was dealt %d cards", p.GetName(), len(p.hand)))
		logrus.WithFields(logrus.Fields{
			"player": p.GetPlayerID(),
			"hand":   p.hand.String(),
		}).Debug("dealt hand")
	}

	return nil
}

// PlayerScore is the score of an individual participant
type PlayerScore struct {
	Participant *Participant
	Hand        deck.Hand
	Score       int
}

// Result is the outcome of the game
type Result struct {
	Scores    []PlayerScore
	HighScore int
	// Winners are all participants sharing the high score
	Winners []*Participant
}

// Result scores the hands and returns the winners
func (g *Game) Result() (*Result, error) {
	if !g.dealt {
		return nil, ErrNotDealt
	}

	if g.result != nil {
		return g.result, nil
	}

	res := &Result{
		Scores: make([]PlayerScore, 0, len(g.participants)),
	}

	for _, p := range g.participants {
		score := p.Score()
		res.Scores = append(res.Scores, PlayerScore{
			Participant: p,
			Hand:        p.Hand(),
			Score:       score,
		})

		if score > res.HighScore {
			res.HighScore = score
			res.Winners = []*Participant{p}
		} else if score == res.HighScore {
			res.Winners = append(res.Winners, p)
		}
	}

	for _, w := range res.Winners {
		g.logs = append(g.logs, playable.SimpleLogMessage(w.GetPlayerID(), "%s won with %d", w.GetName(), res.HighScore))
	}

	g.result = res
	return res, nil
}
