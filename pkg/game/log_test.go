package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGame_addLog_bounded(t *testing.T) {
	g := newTestGame(t, 0)

	for i := 0; i < 60; i++ {
		g.addLog("event %d", i)
	}

	assert.Equal(t, logLimit, len(g.log))
	assert.Equal(t, "event 59", g.log[len(g.log)-1].Message)
	assert.NotEmpty(t, g.log[0].UUID)
}

func TestGame_AddChatMessage_bounded(t *testing.T) {
	g := newTestGame(t, 0)

	for i := 0; i < 75; i++ {
		g.AddChatMessage("alice", fmt.Sprintf("message %d", i))
	}

	assert.Equal(t, chatLimit, len(g.chat))
	assert.Equal(t, "message 74", g.chat[len(g.chat)-1].Message)
	assert.Equal(t, "message 25", g.chat[0].Message)
}
