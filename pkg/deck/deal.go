package deck

import "fmt"

// Seats is the number of seats a deal covers
const Seats = 4

// MaxRound is the largest hand size a 52-card deck can cover for four seats
const MaxRound = 13

// Deal assigns {round} cards to each of the four seats, one card per seat
// per lap, starting at the seat immediately after the dealer and consuming
// the deck front to back. Each returned hand is sorted.
//
// A round outside [1,13] is a caller bug, not an input error.
func (d *Deck) Deal(round, dealerSeat int) [Seats]Hand {
	if round < 1 || round > MaxRound {
		panic(fmt.Sprintf("invalid round: %d", round))
	}

	if !d.CanDraw(round * Seats) {
		panic(fmt.Sprintf("deck has %d cards, need %d", d.CardsLeft(), round*Seats))
	}

	var hands [Seats]Hand
	for i := 0; i < Seats; i++ {
		hands[i] = make(Hand, 0, round)
	}

	start := (dealerSeat + 1) % Seats
	for lap := 0; lap < round; lap++ {
		for p := 0; p < Seats; p++ {
			seat := (start + p) % Seats
			card, err := d.Draw()
			if err != nil {
				panic(err)
			}

			hands[seat].AddCard(card)
		}
	}

	for i := 0; i < Seats; i++ {
		hands[i].Sort()
	}

	return hands
}
