package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const logLimit = 50
const chatLimit = 50

// LogEntry is a human-readable game event
type LogEntry struct {
	UUID    string    `json:"uuid"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// ChatMessage is a single chat line
type ChatMessage struct {
	UUID    string    `json:"uuid"`
	Sender  string    `json:"sender"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

func (g *Game) addLog(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	g.logger.Debug(msg)

	g.log = append(g.log, &LogEntry{
		UUID:    uuid.New().String(),
		Message: msg,
		Time:    time.Now(),
	})

	if n := len(g.log); n > logLimit {
		g.log = g.log[n-logLimit:]
	}
}

// AddChatMessage appends a message to the bounded chat log.
// The oldest message is dropped once the cap is reached.
func (g *Game) AddChatMessage(sender, message string) {
	g.chat = append(g.chat, &ChatMessage{
		UUID:    uuid.New().String(),
		Sender:  sender,
		Message: message,
		Time:    time.Now(),
	})

	if n := len(g.chat); n > chatLimit {
		g.chat = g.chat[n-chatLimit:]
	}
}
