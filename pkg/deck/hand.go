package deck

import (
	"sort"
	"strings"
)

// Hand represents a collection of cards
type Hand []*Card

func (h Hand) Len() int {
	return len(h)
}

// Less orders by suit (clubs, diamonds, hearts, spades), then by descending rank
func (h Hand) Less(i, j int) bool {
	if cmp := strings.Compare(string(h[i].Suit), string(h[j].Suit)); cmp != 0 {
		return cmp < 0
	}

	return h[i].Rank > h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// Sort will sort the hand in place.
// The order is purely a presentation concern.
func (h Hand) Sort() {
	sort.Sort(h)
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// HasSuit returns true if the hand contains at least one card of the suit
func (h Hand) HasSuit(suit Suit) bool {
	for _, c := range h {
		if c.Suit == suit {
			return true
		}
	}

	return false
}

// CardByID returns the card with the given identifier, or nil
func (h Hand) CardByID(id string) *Card {
	for _, c := range h {
		if c.ID() == id {
			return c
		}
	}

	return nil
}

// Discard removes the specified card from the hand.
// Returns true if the card was found.
func (h *Hand) Discard(card *Card) bool {
	newHand := make([]*Card, 0, len(*h))
	found := false
	for _, c := range *h {
		if !found && c.Equal(card) {
			found = true
		} else {
			newHand = append(newHand, c)
		}
	}

	*h = newHand
	return found
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

func (h Hand) String() string {
	ids := make([]string, len(h))
	for i, c := range h {
		ids[i] = c.ID()
	}

	return strings.Join(ids, ",")
}
