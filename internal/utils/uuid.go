// Package utils provides general-purpose helper utilities used by the
// modelconfig commands.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for command runs. Every log entry of
// one invocation carries the same run identifier.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random UUIDv4
// if the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
