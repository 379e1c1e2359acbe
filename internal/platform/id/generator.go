// Package id issues opaque identifiers used to correlate requests and logs.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	defaultSize = 16
	maxAccepted = 64
)

type Generator interface {
	NewID() (string, error)
}

// RandomGenerator returns size random bytes hex encoded.
type RandomGenerator struct {
	size int
}

func NewRandomGenerator(size int) *RandomGenerator {
	if size <= 0 {
		size = defaultSize
	}
	return &RandomGenerator{size: size}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, g.size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// Accept reports whether an id supplied by a caller can be reused as is.
// Only letters, digits, '-' and '_' up to 64 characters are kept.
func Accept(v string) bool {
	if v == "" || len(v) > maxAccepted {
		return false
	}
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
