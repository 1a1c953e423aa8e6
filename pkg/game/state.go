package game

import (
	"time"

	"judgement-server/pkg/deck"
)

// NoSeat is the seat value in a State for a viewer who is not seated
const NoSeat = -1

// SeatState is the publicly visible state of a seat.
// Hand is only populated on the viewer's own seat; every other viewer
// sees just the card count.
type SeatState struct {
	Seat       int       `json:"seat"`
	Name       string    `json:"name"`
	Bid        *int      `json:"bid"`
	TricksWon  int       `json:"tricksWon"`
	TotalScore int       `json:"totalScore"`
	Connected  bool      `json:"connected"`
	CardCount  int       `json:"cardCount"`
	Hand       deck.Hand `json:"hand,omitempty"`
}

// State is the read-only snapshot produced for a single viewer
type State struct {
	RoomID       string         `json:"roomId"`
	Round        int            `json:"round"`
	DealerSeat   int            `json:"dealerSeat"`
	CurrentTurn  int            `json:"currentTurn"`
	Seats        []*SeatState   `json:"seats"`
	Trick        []*PlayedCard  `json:"trick"`
	TrumpSuit    deck.Suit      `json:"trumpSuit"`
	Phase        Phase          `json:"phase"`
	LeadSuit     deck.Suit      `json:"leadSuit,omitempty"`
	Log          []*LogEntry    `json:"log"`
	Chat         []*ChatMessage `json:"chat"`
	TurnDeadline *time.Time     `json:"turnDeadline,omitempty"`
	MySeat       int            `json:"mySeat"`
}

// StateForSession returns the snapshot for the given viewer.
// Other seats' hands are never included; hiding them is a confidentiality
// requirement, not an optimization.
func (g *Game) StateForSession(sessionID string) *State {
	mySeat := NoSeat
	if player := g.playerBySession(sessionID); player != nil {
		mySeat = player.Seat
	}

	seats := make([]*SeatState, len(g.players))
	for i, p := range g.players {
		seat := &SeatState{
			Seat:       p.Seat,
			Name:       p.Name,
			Bid:        p.bid,
			TricksWon:  p.tricksWon,
			TotalScore: p.totalScore,
			Connected:  p.connected,
			CardCount:  len(p.hand),
		}

		if p.Seat == mySeat {
			seat.Hand = p.hand.Clone()
		}

		seats[i] = seat
	}

	trick := make([]*PlayedCard, len(g.trick))
	copy(trick, g.trick)

	log := make([]*LogEntry, len(g.log))
	copy(log, g.log)

	chat := make([]*ChatMessage, len(g.chat))
	copy(chat, g.chat)

	return &State{
		RoomID:       g.roomID,
		Round:        g.round,
		DealerSeat:   g.dealer,
		CurrentTurn:  g.currentTurn,
		Seats:        seats,
		Trick:        trick,
		TrumpSuit:    TrumpSuit,
		Phase:        g.phase,
		LeadSuit:     g.leadSuit,
		Log:          log,
		Chat:         chat,
		TurnDeadline: g.turnDeadline,
		MySeat:       mySeat,
	}
}
