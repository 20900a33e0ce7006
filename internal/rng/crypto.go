package rng

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Crypto is the default Generator, backed by crypto/rand
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
// It panics if n <= 0, the same as math/rand.
func (c Crypto) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("invalid argument to Intn: %d", n))
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
