package id

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// Generator mints opaque IDs for resources exposed through the API.
type Generator interface {
	NewID() (string, error)
}

var idEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// RandomGenerator produces 26-character lowercase base32 IDs from 16 random
// bytes. The alphabet keeps IDs readable in URL paths and log lines.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return strings.ToLower(idEncoding.EncodeToString(buf)), nil
}
