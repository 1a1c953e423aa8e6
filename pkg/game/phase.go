package game

import (
	"encoding/json"
	"fmt"
)

// Phase is the lifecycle phase of a game
type Phase int

// game phases
const (
	PhaseLobby Phase = iota
	PhaseDealing
	PhaseBidding
	PhasePlaying
	PhaseTrickWon
	PhaseScoring
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseLobby:
		return "LOBBY"
	case PhaseDealing:
		return "DEALING"
	case PhaseBidding:
		return "BIDDING"
	case PhasePlaying:
		return "PLAYING"
	case PhaseTrickWon:
		return "TRICK_WON"
	case PhaseScoring:
		return "SCORING"
	case PhaseGameOver:
		return "GAME_OVER"
	}

	panic(fmt.Sprintf("unknown phase: %d", int(p)))
}

// MarshalJSON encodes the phase by name
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}
