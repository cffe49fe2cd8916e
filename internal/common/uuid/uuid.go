package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/speedmeet/internal/common/uuid Generator

// Generator hands out identifiers for participants and session plans
type Generator interface {
	NewUUID() string
}

// RandomGenerator issues random (version 4) UUIDs
type RandomGenerator struct{}

// New returns a random UUID generator
func New() *RandomGenerator {
	return &RandomGenerator{}
}

// NewUUID returns a new random UUID string
func (g *RandomGenerator) NewUUID() string {
	return uuid.NewString()
}
