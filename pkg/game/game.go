package game

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"judgement-server/internal/rng"
	"judgement-server/pkg/deck"
)

// TrumpSuit is fixed for the life of every game
const TrumpSuit = deck.Hearts

const numSeats = deck.Seats
const maxRound = deck.MaxRound

// Options controls the pacing of a game
type Options struct {
	// TurnDuration is how long a player has to bid or play before the
	// engine moves on their behalf
	TurnDuration time.Duration

	// TrickDelay is the pause after a trick resolves before play continues
	TrickDelay time.Duration

	// ScoringDelay is the pause after scoring before the next round is dealt
	ScoringDelay time.Duration
}

// DefaultOptions returns the standard pacing
func DefaultOptions() Options {
	return Options{
		TurnDuration: 30 * time.Second,
		TrickDelay:   3 * time.Second,
		ScoringDelay: 10 * time.Second,
	}
}

// PlayedCard is a card on the table along with the seat that played it
type PlayedCard struct {
	Seat int        `json:"seat"`
	Card *deck.Card `json:"card"`
}

// Game is the authoritative state machine for a single room.
// Methods are not safe for concurrent use; the caller must serialize all
// operations for a room, including Tick.
type Game struct {
	roomID      string
	opts        Options
	round       int
	dealer      int
	currentTurn int
	players     []*Player
	trick       []*PlayedCard
	leadSuit    deck.Suit // "" until the first card of a trick
	phase       Phase
	log         []*LogEntry
	chat        []*ChatMessage

	// deadlines for the time-driven transitions, checked by Tick.
	// a nil deadline is a disarmed timer.
	turnDeadline   *time.Time
	continueAfter  *time.Time
	nextRoundAfter *time.Time

	logger logrus.FieldLogger
}

// New returns a game in the lobby phase with a randomly chosen dealer seat
func New(logger logrus.FieldLogger, roomID string, gen rng.Generator, opts Options) *Game {
	g := &Game{
		roomID:  roomID,
		opts:    opts,
		round:   1,
		dealer:  gen.Intn(numSeats),
		players: make([]*Player, 0, numSeats),
		trick:   make([]*PlayedCard, 0, numSeats),
		phase:   PhaseLobby,
		log:     make([]*LogEntry, 0),
		chat:    make([]*ChatMessage, 0),
		logger:  logger.WithField("room", roomID),
	}

	g.addLog("Lobby created.")
	return g
}

// RoomID returns the room code the game belongs to
func (g *Game) RoomID() string {
	return g.roomID
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// Round returns the current round number
func (g *Game) Round() int {
	return g.round
}

// AddPlayer seats a player at the next free seat in join order
func (g *Game) AddPlayer(sessionID, name string) (*Player, error) {
	if g.phase != PhaseLobby {
		return nil, ErrGameAlreadyStarted
	}

	if len(g.players) >= numSeats {
		return nil, ErrGameFull
	}

	player := newPlayer(len(g.players), sessionID, name)
	g.players = append(g.players, player)
	g.addLog("%s joined the game.", name)

	return player, nil
}

// RemovePlayer marks the owning seat disconnected.
// The seat itself is never vacated. Unknown sessions are a no-op.
func (g *Game) RemovePlayer(sessionID string) {
	player := g.playerBySession(sessionID)
	if player == nil {
		return
	}

	player.connected = false
	g.addLog("%s disconnected.", player.Name)
}

// CurrentPlayer returns the player whose bid or play is awaited, or nil
// when the phase has no active turn
func (g *Game) CurrentPlayer() *Player {
	if g.phase != PhaseBidding && g.phase != PhasePlaying {
		return nil
	}

	return g.players[g.currentTurn]
}

// ConnectedCount returns the number of seats with a live connection
func (g *Game) ConnectedCount() int {
	count := 0
	for _, p := range g.players {
		if p.connected {
			count++
		}
	}

	return count
}

// StartGame begins the first round.
// All four seats must be filled. Any seated player may start the game.
func (g *Game) StartGame() error {
	if g.phase != PhaseLobby {
		return ErrGameAlreadyStarted
	}

	if len(g.players) != numSeats {
		return ErrNotEnoughPlayers
	}

	g.phase = PhaseDealing
	g.startRound()
	return nil
}

// startRound deals the round's cards and opens the bidding
func (g *Game) startRound() {
	if g.round > maxRound {
		g.phase = PhaseGameOver
		g.addLog("Game over!")
		return
	}

	d := deck.New()
	d.Shuffle()

	for _, p := range g.players {
		p.newRound()
	}

	g.trick = make([]*PlayedCard, 0, numSeats)
	g.leadSuit = ""

	g.addLog("Round %d: dealing %d cards.", g.round, g.round)

	hands := d.Deal(g.round, g.dealer)
	for seat, hand := range hands {
		g.players[seat].hand = hand
	}

	g.phase = PhaseBidding
	g.currentTurn = (g.dealer + 1) % numSeats
	g.armTurnTimer()
	g.addLog("%s starts the bidding.", g.players[g.currentTurn].Name)
}

// PlaceBid records the bid for the current round.
// The dealer bids last and is subject to the hook rule: their bid may not
// bring the total bids to exactly the round's hand size.
func (g *Game) PlaceBid(sessionID string, bid int) error {
	if g.phase != PhaseBidding {
		return ErrNotBidding
	}

	player := g.playerBySession(sessionID)
	if player == nil {
		return ErrPlayerNotSeated
	}

	if player.Seat != g.currentTurn {
		return ErrIsNotPlayersTurn
	}

	if bid < 0 || bid > g.round {
		return ErrInvalidBid
	}

	isDealer := player.Seat == g.dealer
	if isDealer && g.bidSum()+bid == g.round {
		return ErrHookRule
	}

	player.bid = &bid
	g.addLog("%s bids %d.", player.Name, bid)
	g.turnDeadline = nil

	if isDealer {
		g.phase = PhasePlaying
		g.currentTurn = (g.dealer + 1) % numSeats
		g.addLog("Bidding complete. Play starts.")
	} else {
		g.currentTurn = (g.currentTurn + 1) % numSeats
	}

	g.armTurnTimer()
	return nil
}

// PlayCard plays the identified card from the player's hand.
// A player holding the lead suit must follow it.
func (g *Game) PlayCard(sessionID, cardID string) error {
	if g.phase != PhasePlaying {
		return ErrNotPlaying
	}

	player := g.playerBySession(sessionID)
	if player == nil {
		return ErrPlayerNotSeated
	}

	if player.Seat != g.currentTurn {
		return ErrIsNotPlayersTurn
	}

	card := player.hand.CardByID(cardID)
	if card == nil {
		return ErrCardNotInHand
	}

	if g.leadSuit != "" && card.Suit != g.leadSuit && player.hand.HasSuit(g.leadSuit) {
		return ErrMustFollowSuit
	}

	player.hand.Discard(card)
	g.trick = append(g.trick, &PlayedCard{Seat: player.Seat, Card: card})

	if g.leadSuit == "" {
		g.leadSuit = card.Suit
	}

	g.addLog("%s plays %s.", player.Name, card)
	g.turnDeadline = nil

	if len(g.trick) == numSeats {
		g.resolveTrick()
	} else {
		g.currentTurn = (g.currentTurn + 1) % numSeats
		g.armTurnTimer()
	}

	return nil
}

// resolveTrick determines the winner of a completed trick.
// A trump beats any non-trump; among trumps the higher rank wins; among
// lead-suit cards the higher rank wins; everything else never takes the
// trick. The winner leads the next trick.
func (g *Game) resolveTrick() {
	if len(g.trick) != numSeats {
		panic(fmt.Sprintf("resolving a trick with %d plays", len(g.trick)))
	}

	winner := 0
	winning := g.trick[0].Card

	for i := 1; i < len(g.trick); i++ {
		card := g.trick[i].Card

		switch {
		case card.Suit == TrumpSuit && winning.Suit != TrumpSuit:
			winner, winning = i, card
		case card.Suit == TrumpSuit && winning.Suit == TrumpSuit && card.Rank > winning.Rank:
			winner, winning = i, card
		case card.Suit == g.leadSuit && winning.Suit == g.leadSuit && card.Rank > winning.Rank:
			winner, winning = i, card
		}
	}

	winnerSeat := g.trick[winner].Seat
	g.players[winnerSeat].tricksWon++
	g.addLog("%s wins the trick!", g.players[winnerSeat].Name)

	g.currentTurn = winnerSeat
	g.phase = PhaseTrickWon

	after := time.Now().Add(g.opts.TrickDelay)
	g.continueAfter = &after
}

// ContinueAfterTrick clears a resolved trick and resumes play, or scores
// the round when the hands are empty. Outside TRICK_WON it is a no-op.
func (g *Game) ContinueAfterTrick() {
	if g.phase != PhaseTrickWon {
		return
	}

	g.trick = make([]*PlayedCard, 0, numSeats)
	g.leadSuit = ""
	g.continueAfter = nil

	if len(g.players[0].hand) == 0 {
		g.endRound()
	} else {
		g.phase = PhasePlaying
		g.armTurnTimer()
	}
}

// endRound applies scoring, rotates the dealer, and either queues the next
// round, ends the game, or forces a round-13 replay on a tied final score.
func (g *Game) endRound() {
	g.phase = PhaseScoring
	g.addLog("Round complete. Scoring...")

	for _, p := range g.players {
		if p.bid == nil {
			panic(fmt.Sprintf("scoring seat %d with no bid", p.Seat))
		}

		bid, won := *p.bid, p.tricksWon
		points := 0
		if bid == won {
			points = (bid+1)*10 + bid
		}

		p.totalScore += points
		g.addLog("%s: bid %d, won %d -> +%d pts (total: %d)", p.Name, bid, won, points, p.totalScore)
	}

	g.round++
	g.dealer = (g.dealer - 1 + numSeats) % numSeats

	if g.round > maxRound {
		maxScore := g.players[0].totalScore
		for _, p := range g.players[1:] {
			if p.totalScore > maxScore {
				maxScore = p.totalScore
			}
		}

		winners := make([]*Player, 0, numSeats)
		for _, p := range g.players {
			if p.totalScore == maxScore {
				winners = append(winners, p)
			}
		}

		if len(winners) == 1 {
			g.phase = PhaseGameOver
			g.addLog("Game over! Winner: %s", winners[0].Name)
			return
		}

		g.round = maxRound
		g.addLog("Tie detected. Replaying round %d.", maxRound)
	}

	after := time.Now().Add(g.opts.ScoringDelay)
	g.nextRoundAfter = &after
}

// bidSum returns the sum of all bids placed so far this round
func (g *Game) bidSum() int {
	sum := 0
	for _, p := range g.players {
		if p.bid != nil {
			sum += *p.bid
		}
	}

	return sum
}

func (g *Game) armTurnTimer() {
	deadline := time.Now().Add(g.opts.TurnDuration)
	g.turnDeadline = &deadline
}

func (g *Game) playerBySession(sessionID string) *Player {
	for _, p := range g.players {
		if p.SessionID == sessionID {
			return p
		}
	}

	return nil
}
