package utils

import "github.com/google/uuid"

// UUIDGenerator produces opaque identifiers for secret records. Preferring
// v7 keeps storage locality (time-ordered), falling back to v4 when the
// clock source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
