package participant

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/speedmeet/internal/repositories/participant Repository

import (
	"context"

	"github.com/KirkDiggler/speedmeet/internal/models"
)

// Repository defines the interface for roster persistence
type Repository interface {
	// SaveParticipant creates or replaces a participant
	SaveParticipant(ctx context.Context, input *SaveParticipantInput) error

	// SaveParticipants creates or replaces a batch in a single transaction
	SaveParticipants(ctx context.Context, input *SaveParticipantsInput) error

	// GetParticipant retrieves a participant by ID
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// ListParticipants returns the roster in registration order
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)

	// DeleteParticipant removes a participant from the roster
	DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) error

	// ClearParticipants empties the roster
	ClearParticipants(ctx context.Context, input *ClearParticipantsInput) error
}
