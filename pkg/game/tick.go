package game

import (
	"time"

	"judgement-server/pkg/deck"
)

// Interval determines how often Tick() should be called
func (g *Game) Interval() time.Duration {
	return time.Second
}

// Tick evaluates the time-driven transitions: turn timeouts, the pause
// after a resolved trick, and the pause between scoring and the next deal.
// It returns true if state changed and clients should be updated.
//
// Tick must be called from the same serialized context as every other
// mutation; a deadline cleared by a valid move can then never fire.
func (g *Game) Tick() (bool, error) {
	now := time.Now()

	if g.turnDeadline != nil && now.After(*g.turnDeadline) {
		g.handleTurnTimeout()
		return true, nil
	}

	if g.continueAfter != nil && now.After(*g.continueAfter) {
		g.ContinueAfterTrick()
		return true, nil
	}

	if g.nextRoundAfter != nil && now.After(*g.nextRoundAfter) {
		g.nextRoundAfter = nil
		g.startRound()
		return true, nil
	}

	return false, nil
}

// handleTurnTimeout moves on the current player's behalf: a zero bid
// during bidding (one for the dealer when zero would trip the hook rule),
// or the first legal card during play. The synthetic move goes through the
// normal PlaceBid/PlayCard paths.
func (g *Game) handleTurnTimeout() {
	player := g.players[g.currentTurn]
	g.addLog("%s timed out!", player.Name)

	switch g.phase {
	case PhaseBidding:
		bid := 0
		if g.currentTurn == g.dealer && g.bidSum() == g.round {
			bid = 1
		}

		if err := g.PlaceBid(player.SessionID, bid); err != nil {
			g.logger.WithError(err).Error("could not place bid on timeout")
		}
	case PhasePlaying:
		card := g.firstLegalCard(player)
		if card == nil {
			// a player whose turn it is always has at least one card
			panic("no legal card to play on timeout")
		}

		if err := g.PlayCard(player.SessionID, card.ID()); err != nil {
			g.logger.WithError(err).Error("could not play card on timeout")
		}
	default:
		// deadline armed in a phase without turns; drop it
		g.turnDeadline = nil
	}
}

// firstLegalCard returns the first card in hand that satisfies the
// must-follow-suit rule, or the first card when the player cannot follow
func (g *Game) firstLegalCard(player *Player) *deck.Card {
	if g.leadSuit != "" && player.hand.HasSuit(g.leadSuit) {
		for _, c := range player.hand {
			if c.Suit == g.leadSuit {
				return c
			}
		}
	}

	if len(player.hand) == 0 {
		return nil
	}

	return player.hand[0]
}
