package utils

import "github.com/google/uuid"

// OperationIDGenerator issues correlation identifiers for client operations.
// Identifiers are UUIDv7, so they sort by creation time in log files.
type OperationIDGenerator struct{}

func NewOperationIDGenerator() *OperationIDGenerator {
	return &OperationIDGenerator{}
}

// Generate returns a new UUIDv7, or a random UUIDv4 if the clock source
// fails.
func (g *OperationIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
