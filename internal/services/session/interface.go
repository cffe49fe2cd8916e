package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/speedmeet/internal/services/session Service

import "context"

// Service generates session plans and answers questions about the current one
type Service interface {
	// GenerateSession seats the active roster and makes the result the current session
	GenerateSession(ctx context.Context, input *GenerateSessionInput) (*GenerateSessionOutput, error)

	// PreviewSession schedules placeholder participants without touching the current session
	PreviewSession(ctx context.Context, input *PreviewSessionInput) (*PreviewSessionOutput, error)

	// GetCurrentSession returns the current plan
	GetCurrentSession(ctx context.Context, input *GetCurrentSessionInput) (*GetCurrentSessionOutput, error)

	// ClearCurrentSession ends the current session
	ClearCurrentSession(ctx context.Context, input *ClearCurrentSessionInput) (*ClearCurrentSessionOutput, error)

	// GetItinerary returns one participant's tables, looked up by display name
	GetItinerary(ctx context.Context, input *GetItineraryInput) (*GetItineraryOutput, error)

	// GetTableRotations returns who sits at a table in every round
	GetTableRotations(ctx context.Context, input *GetTableRotationsInput) (*GetTableRotationsOutput, error)
}
