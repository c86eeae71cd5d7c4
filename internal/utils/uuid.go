package utils

import "github.com/google/uuid"

// UUIDGenerator produces the identifiers used to trace requests
// through logs and across the client/server boundary.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 string, falling back to a
// random UUIDv4 if the system clock refuses to cooperate.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
