package game

import "errors"

// ErrGameFull is an error when a fifth player tries to take a seat
var ErrGameFull = errors.New("all seats are taken")

// ErrGameAlreadyStarted is an error when a lobby-only action arrives after the game began
var ErrGameAlreadyStarted = errors.New("the game has already started")

// ErrNotEnoughPlayers is an error when the game starts with fewer than four seats filled
var ErrNotEnoughPlayers = errors.New("four seated players are required")

// ErrPlayerNotSeated is an error when the session does not map to a seat
var ErrPlayerNotSeated = errors.New("player is not seated at this game")

// ErrIsNotPlayersTurn is returned when it's not the player's turn
var ErrIsNotPlayersTurn = errors.New("not player's turn")

// ErrNotBidding is an error when a bid arrives outside the bidding phase
var ErrNotBidding = errors.New("bidding is not in progress")

// ErrNotPlaying is an error when a card is played outside the playing phase
var ErrNotPlaying = errors.New("card play is not in progress")

// ErrInvalidBid is an error when the bid is outside the round's legal range
var ErrInvalidBid = errors.New("bid must be between 0 and the round's hand size")

// ErrHookRule is an error when the dealer's bid would make total bids equal the hand size
var ErrHookRule = errors.New("dealer cannot bid so the total equals the hand size")

// ErrCardNotInHand happens when the player tries to play a card they don't have
var ErrCardNotInHand = errors.New("card is not in player's hand")

// ErrMustFollowSuit happens when a player holds the lead suit and plays a different one
var ErrMustFollowSuit = errors.New("player must follow the lead suit")
