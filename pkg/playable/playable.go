package playable

import (
	"fmt"
	"pokerdeck/pkg/deck"
	"time"

	"github.com/google/uuid"
)

// LogMessage is the format a game should send log messages in
// If PlayerIDs is empty, assume it's a general statement, otherwise the message will be shown like "{player} drew X"
type LogMessage struct {
	UUID      string      `json:"uuid"`
	PlayerIDs []int64     `json:"playerIds"`
	Cards     []deck.Card `json:"cards"`
	Message   string      `json:"message"`
	Time      time.Time   `json:"time"`
}

func (l *LogMessage) String() string {
	if len(l.Cards) == 0 {
		return l.Message
	}

	return fmt.Sprintf("%s [%s]", l.Message, deck.CardsToString(l.Cards))
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(playerID int64, format string, a ...interface{}) *LogMessage {
	var playerIDs []int64
	if playerID > 0 {
		playerIDs = []int64{playerID}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// CardLogMessage returns a new LogMessage about the specified cards
func CardLogMessage(playerID int64, cards []deck.Card, format string, a ...interface{}) *LogMessage {
	lm := SimpleLogMessage(playerID, format, a...)
	lm.Cards = cards
	return lm
}
