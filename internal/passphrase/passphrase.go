// Package passphrase builds passphrases by sampling words from a dictionary.
package passphrase

import (
	crand "crypto/rand"
	"math/rand/v2"
	"strings"

	"github.com/zorak1103/wordpass/internal/dictionary"
	apperrors "github.com/zorak1103/wordpass/internal/errors"
)

// Defaults used when nothing overrides them.
const (
	DefaultCount     = 3
	DefaultSeparator = "-"
)

// Config is the fully resolved input of a single generation.
type Config struct {
	Dictionary string // newline-delimited word list
	Separator  string
	Count      int
}

// Generator draws passphrases from a random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator using r. A nil r selects a ChaCha8
// generator seeded from crypto/rand.
func NewGenerator(r *rand.Rand) *Generator {
	if r == nil {
		var seed [32]byte
		_, _ = crand.Read(seed[:]) // never returns an error
		r = rand.New(rand.NewChaCha8(seed))
	}
	return &Generator{rng: r}
}

// Generate selects cfg.Count distinct lines of cfg.Dictionary and joins
// them with cfg.Separator.
func (g *Generator) Generate(cfg Config) (string, error) {
	words, err := Sample(g.rng, dictionary.Lines(cfg.Dictionary), cfg.Count)
	if err != nil {
		return "", err
	}
	return strings.Join(words, cfg.Separator), nil
}

// Sample returns n elements of words chosen uniformly without replacement,
// in random order. words is not modified.
func Sample(r *rand.Rand, words []string, n int) ([]string, error) {
	if n < 0 || n > len(words) {
		return nil, &apperrors.SampleError{Requested: n, Available: len(words)}
	}

	pool := make([]string, len(words))
	copy(pool, words)

	// Partial Fisher-Yates: pool[:i] holds the picks so far.
	for i := 0; i < n; i++ {
		j := i + r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:n], nil
}
