package participant

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/speedmeet/internal/services/participant Service

import "context"

// Service manages the roster of people attending the event
type Service interface {
	// AddParticipant registers one person, active by default
	AddParticipant(ctx context.Context, input *AddParticipantInput) (*AddParticipantOutput, error)

	// ImportParticipants registers a batch of people, all or nothing
	ImportParticipants(ctx context.Context, input *ImportParticipantsInput) (*ImportParticipantsOutput, error)

	// ListParticipants returns the roster in registration order
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)

	// SetParticipantActive includes or excludes someone from the next generation
	SetParticipantActive(ctx context.Context, input *SetParticipantActiveInput) (*SetParticipantActiveOutput, error)

	// RemoveParticipant deletes someone from the roster
	RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*RemoveParticipantOutput, error)

	// ClearParticipants empties the roster
	ClearParticipants(ctx context.Context, input *ClearParticipantsInput) (*ClearParticipantsOutput, error)
}
