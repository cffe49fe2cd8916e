package messaging

import (
	"github.com/KirkDiggler/speedmeet/internal/models"
)

// ErrorType identifies which detail text to render
type ErrorType string

const (
	// ErrorTypeNoActiveSession is used before any plan was generated
	ErrorTypeNoActiveSession ErrorType = "no_active_session"

	// ErrorTypeParticipantNotFound is used when a name is absent from the plan
	ErrorTypeParticipantNotFound ErrorType = "participant_not_found"

	// ErrorTypeTableNotFound is used when a table ID is outside the plan
	ErrorTypeTableNotFound ErrorType = "table_not_found"

	// ErrorTypeEmptyRoster is used when generating without active participants
	ErrorTypeEmptyRoster ErrorType = "empty_roster"

	// ErrorTypeInvalidConfiguration is used for bad generation parameters
	ErrorTypeInvalidConfiguration ErrorType = "invalid_configuration"

	// ErrorTypeInvalidParticipant is used for incomplete roster entries
	ErrorTypeInvalidParticipant ErrorType = "invalid_participant"

	// ErrorTypeRateLimited is used when a client polls too often
	ErrorTypeRateLimited ErrorType = "rate_limited"

	// ErrorTypeInternal is the fallback
	ErrorTypeInternal ErrorType = "internal"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct{}

// GetSessionGeneratedMessageInput contains parameters for the generation message
type GetSessionGeneratedMessageInput struct {
	Metadata models.PlanMetadata
}

// GetSessionGeneratedMessageOutput contains the generation message
type GetSessionGeneratedMessageOutput struct {
	Message string
}

// GetItineraryTextInput contains the itinerary to render
type GetItineraryTextInput struct {
	Itinerary *models.Itinerary
}

// GetItineraryTextOutput contains the rendered itinerary
type GetItineraryTextOutput struct {
	Text string
}

// GetErrorMessageInput contains parameters for an error detail
type GetErrorMessageInput struct {
	ErrorType ErrorType

	// Subject is the name or ID the failing request was about (optional)
	Subject string
}

// GetErrorMessageOutput contains the error detail
type GetErrorMessageOutput struct {
	Detail string
}
