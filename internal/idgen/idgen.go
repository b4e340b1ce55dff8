package idgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Alphabet is the character set for short identifiers
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// Length is the fixed short identifier length
	Length = 8
)

// Generator produces random short identifiers
type Generator struct{}

// NewGenerator creates a new Generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns a new random identifier of Length characters drawn
// uniformly from Alphabet. Each call draws fresh randomness; uniqueness
// is enforced by the caller against the store.
func (g *Generator) Generate() (string, error) {
	buf := make([]byte, Length)
	alphabetLen := big.NewInt(int64(len(Alphabet)))

	for i := 0; i < Length; i++ {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to draw randomness: %w", err)
		}
		buf[i] = Alphabet[n.Int64()]
	}

	return string(buf), nil
}

// IsValid checks if a string is a well-formed identifier
func (g *Generator) IsValid(s string) bool {
	if len(s) != Length {
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune(Alphabet, c) {
			return false
		}
	}
	return true
}

// MaxCapacity returns the size of the identifier space
func (g *Generator) MaxCapacity() uint64 {
	capacity := uint64(1)
	for i := 0; i < Length; i++ {
		capacity *= uint64(len(Alphabet))
	}
	return capacity
}
