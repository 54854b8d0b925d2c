package ports

// Entropy is the randomness source behind coin casting. *math/rand.Rand
// satisfies it; tests inject scripted sequences.
type Entropy interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}
