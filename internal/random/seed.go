// Package random provides seed generation for coin casting.
//
// Seeds come from crypto/rand unless the caller pins one, in which case a
// coin cast can be replayed exactly.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// SeedSource records where a seed came from.
type SeedSource string

const (
	SeedSourceSystem SeedSource = "system"
	SeedSourcePinned SeedSource = "pinned"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ResolveSeed returns the pinned seed when one is given, otherwise a fresh
// one from generate.
func ResolveSeed(pinned *int64, generate func() (int64, error)) (int64, SeedSource, error) {
	if pinned != nil {
		return *pinned, SeedSourcePinned, nil
	}
	if generate == nil {
		generate = NewSeed
	}
	seed, err := generate()
	if err != nil {
		return 0, "", err
	}
	return seed, SeedSourceSystem, nil
}

// NewEntropy returns a pseudo-random source for the given seed. The source
// is not safe for concurrent use.
func NewEntropy(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
