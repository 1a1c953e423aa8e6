package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "LOBBY", PhaseLobby.String())
	assert.Equal(t, "DEALING", PhaseDealing.String())
	assert.Equal(t, "BIDDING", PhaseBidding.String())
	assert.Equal(t, "PLAYING", PhasePlaying.String())
	assert.Equal(t, "TRICK_WON", PhaseTrickWon.String())
	assert.Equal(t, "SCORING", PhaseScoring.String())
	assert.Equal(t, "GAME_OVER", PhaseGameOver.String())

	assert.Panics(t, func() {
		_ = Phase(99).String()
	})
}

func TestPhase_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(PhaseTrickWon)
	assert.NoError(t, err)
	assert.Equal(t, `"TRICK_WON"`, string(b))
}
