package util

import (
	"fmt"
	"math/rand"
)

var adjectives = []string{
	"Bold", "Brave", "Calm", "Clever", "Crafty", "Daring", "Eager", "Fancy",
	"Gutsy", "Jolly", "Keen", "Lucky", "Mellow", "Nimble", "Plucky", "Quiet",
	"Sly", "Snappy", "Steady", "Swift", "Tricky", "Witty",
}

var cardWords = []string{
	"Ace", "King", "Queen", "Jack", "Joker", "Dealer", "Bidder", "Trump",
	"Heart", "Spade", "Club", "Diamond", "Shuffler", "Cutter", "Kibitzer",
}

// GetRandomName returns a random display name for a player who joined without one
func GetRandomName() string {
	return fmt.Sprintf("%s %s", adjectives[rand.Intn(len(adjectives))], cardWords[rand.Intn(len(cardWords))])
}
