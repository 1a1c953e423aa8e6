// Package bot fills empty seats with a heuristic player. It only reads
// the per-viewer snapshot and calls the engine's public operations, the
// same surface a human client uses.
package bot

import (
	"sort"

	"judgement-server/pkg/deck"
	"judgement-server/pkg/game"
)

// Bid returns the bid for the viewer's seat: one trick for every ace or
// king, plus one for each high trump (jack or queen of the trump suit).
// When the bot deals, the bid is nudged away from a hook-rule violation.
func Bid(state *game.State) int {
	hand := state.Seats[state.MySeat].Hand

	bid := 0
	for _, card := range hand {
		if card.Rank >= deck.King {
			bid++
		} else if card.Suit == state.TrumpSuit && card.Rank >= deck.Jack {
			bid++
		}
	}

	if state.DealerSeat == state.MySeat {
		sum := 0
		for _, seat := range state.Seats {
			if seat.Bid != nil {
				sum += *seat.Bid
			}
		}

		if forbidden := state.Round - sum; bid == forbidden {
			if bid > 0 {
				bid--
			} else {
				bid++
			}
		}
	}

	return bid
}

// ChooseCard returns the id of the card to play. Under bid it tries to
// take the trick; at or over bid it sheds the most dangerous card it can.
func ChooseCard(state *game.State) string {
	me := state.Seats[state.MySeat]
	valid := validCards(me.Hand, state.LeadSuit)

	if len(valid) == 1 {
		return valid[0].ID()
	}

	needsToWin := me.Bid != nil && me.TricksWon < *me.Bid

	if state.LeadSuit == "" {
		return lead(valid, state.TrumpSuit, needsToWin).ID()
	}

	return follow(valid, state, needsToWin).ID()
}

func lead(valid deck.Hand, trump deck.Suit, needsToWin bool) *deck.Card {
	if needsToWin {
		if card := first(valid, func(c *deck.Card) bool { return c.Rank >= deck.King }); card != nil {
			return card
		}

		if card := first(valid, func(c *deck.Card) bool { return c.Suit == trump && c.Rank >= deck.Jack }); card != nil {
			return card
		}
	}

	return lowest(valid)
}

func follow(valid deck.Hand, state *game.State, needsToWin bool) *deck.Card {
	onSuit := filter(valid, func(c *deck.Card) bool { return c.Suit == state.LeadSuit })
	trumps := filter(valid, func(c *deck.Card) bool { return c.Suit == state.TrumpSuit })

	if needsToWin {
		if len(onSuit) > 0 {
			return highest(onSuit)
		}

		if len(trumps) > 0 {
			return lowest(trumps)
		}

		return lowest(valid)
	}

	if len(onSuit) > 0 {
		return lowest(onSuit)
	}

	// slough the highest trash card
	offTrump := filter(valid, func(c *deck.Card) bool { return c.Suit != state.TrumpSuit })
	if len(offTrump) > 0 {
		return highest(offTrump)
	}

	return lowest(valid)
}

// validCards returns the playable subset of the hand: the lead suit when
// it can be followed, otherwise everything
func validCards(hand deck.Hand, leadSuit deck.Suit) deck.Hand {
	if leadSuit == "" {
		return hand
	}

	onSuit := filter(hand, func(c *deck.Card) bool { return c.Suit == leadSuit })
	if len(onSuit) > 0 {
		return onSuit
	}

	return hand
}

func filter(hand deck.Hand, keep func(*deck.Card) bool) deck.Hand {
	out := make(deck.Hand, 0, len(hand))
	for _, c := range hand {
		if keep(c) {
			out = append(out, c)
		}
	}

	return out
}

func first(hand deck.Hand, match func(*deck.Card) bool) *deck.Card {
	for _, c := range hand {
		if match(c) {
			return c
		}
	}

	return nil
}

func lowest(hand deck.Hand) *deck.Card {
	return byRank(hand)[0]
}

func highest(hand deck.Hand) *deck.Card {
	sorted := byRank(hand)
	return sorted[len(sorted)-1]
}

func byRank(hand deck.Hand) deck.Hand {
	sorted := hand.Clone()
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Rank < sorted[j].Rank
	})

	return sorted
}
