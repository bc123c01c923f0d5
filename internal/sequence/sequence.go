package sequence

import (
	"crypto/rand"
	"math/big"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/gridlight/simonsays/internal/sequence Generator

// Generator produces tile index sequences for the memory game
type Generator interface {
	// Generate returns a sequence of the given length, each element drawn
	// uniformly from [0, gridSize*gridSize). Repeats are allowed.
	Generate(gridSize, steps int) []int
}

// CryptoGenerator implements Generator using crypto/rand so clients
// cannot predict the issued sequence. There is no seeding contract;
// reproducibility across calls is not supported.
type CryptoGenerator struct{}

// New creates a new sequence generator
func New() *CryptoGenerator {
	return &CryptoGenerator{}
}

// Generate returns a uniformly random tile sequence
func (g *CryptoGenerator) Generate(gridSize, steps int) []int {
	tiles := big.NewInt(int64(gridSize * gridSize))

	seq := make([]int, steps)
	for i := range seq {
		n, err := rand.Int(rand.Reader, tiles)
		if err != nil {
			// crypto/rand only fails if the platform entropy source is
			// broken, at which point the process cannot issue fair rounds.
			panic(err)
		}
		seq[i] = int(n.Int64())
	}

	return seq
}
