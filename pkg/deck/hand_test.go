package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_Sort(t *testing.T) {
	h := Hand(CardsFromString("2h,14c,5s,13h,3c"))
	h.Sort()

	assert.Equal(t, "14c,3c,13h,2h,5s", h.String())
}

func TestHand_HasSuit(t *testing.T) {
	h := Hand(CardsFromString("2h,14c"))
	assert.True(t, h.HasSuit(Hearts))
	assert.True(t, h.HasSuit(Clubs))
	assert.False(t, h.HasSuit(Spades))
	assert.False(t, h.HasSuit(Diamonds))
}

func TestHand_CardByID(t *testing.T) {
	h := Hand(CardsFromString("2h,14c"))
	assert.Equal(t, &Card{Rank: 2, Suit: Hearts}, h.CardByID("2h"))
	assert.Nil(t, h.CardByID("3h"))
}

func TestHand_Discard(t *testing.T) {
	h := Hand(CardsFromString("2h,14c,5s"))

	assert.True(t, h.Discard(&Card{Rank: Ace, Suit: Clubs}))
	assert.Equal(t, "2h,5s", h.String())

	assert.False(t, h.Discard(&Card{Rank: Ace, Suit: Clubs}))
	assert.Equal(t, "2h,5s", h.String())
}

func TestHand_Clone(t *testing.T) {
	h := Hand(CardsFromString("2h,14c"))
	clone := h.Clone()

	assert.Equal(t, h, clone)

	clone.Discard(&Card{Rank: 2, Suit: Hearts})
	assert.Equal(t, 2, len(h))
	assert.Equal(t, 1, len(clone))
}
