package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/speedmeet/internal/services/messaging Service

import "context"

// Service renders the French user-facing texts of the API
type Service interface {
	// GetSessionGeneratedMessage returns the confirmation shown after a generation
	GetSessionGeneratedMessage(ctx context.Context, input *GetSessionGeneratedMessageInput) (*GetSessionGeneratedMessageOutput, error)

	// GetItineraryText renders an itinerary as plain text, one line per rotation
	GetItineraryText(ctx context.Context, input *GetItineraryTextInput) (*GetItineraryTextOutput, error)

	// GetErrorMessage returns the detail text for an error kind
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
