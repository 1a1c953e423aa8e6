package rng

// Generator is a source of random numbers the engine can depend on,
// letting tests substitute a fixed sequence
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
