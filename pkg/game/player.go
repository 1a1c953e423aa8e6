package game

import (
	"judgement-server/pkg/deck"
)

// Player is a seat at the table.
// Seats are assigned in join order and are never vacated; a departing
// player is only marked disconnected so all seat math stays stable.
type Player struct {
	Seat      int
	SessionID string
	Name      string

	hand       deck.Hand
	bid        *int
	tricksWon  int
	totalScore int
	connected  bool
}

func newPlayer(seat int, sessionID, name string) *Player {
	return &Player{
		Seat:      seat,
		SessionID: sessionID,
		Name:      name,
		hand:      make(deck.Hand, 0),
		connected: true,
	}
}

// Hand returns a shallow clone of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// Bid returns the player's bid for the current round, or nil if not yet placed
func (p *Player) Bid() *int {
	return p.bid
}

// TricksWon returns the number of tricks won this round
func (p *Player) TricksWon() int {
	return p.tricksWon
}

// TotalScore returns the player's cumulative score
func (p *Player) TotalScore() int {
	return p.totalScore
}

// Connected returns whether the player's connection is live
func (p *Player) Connected() bool {
	return p.connected
}

// newRound resets the per-round state
func (p *Player) newRound() {
	p.hand = make(deck.Hand, 0)
	p.bid = nil
	p.tricksWon = 0
}
