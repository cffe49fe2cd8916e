package participant

import (
	"github.com/KirkDiggler/speedmeet/internal/common/clock"
	"github.com/KirkDiggler/speedmeet/internal/common/uuid"
	"github.com/KirkDiggler/speedmeet/internal/models"
	participantRepo "github.com/KirkDiggler/speedmeet/internal/repositories/participant"
)

// Config holds the participant service dependencies
type Config struct {
	Repository    participantRepo.Repository
	Clock         clock.Clock
	UUIDGenerator uuid.Generator
}

// AddParticipantInput contains parameters for registering someone
type AddParticipantInput struct {
	FirstName string
	LastName  string
	Email     string
	Company   string
}

// AddParticipantOutput contains the registered participant
type AddParticipantOutput struct {
	Participant *models.Participant
}

// ImportParticipantsInput contains a batch of rows to register
type ImportParticipantsInput struct {
	Rows []*AddParticipantInput
}

// ImportParticipantsOutput contains the registered participants in batch order
type ImportParticipantsOutput struct {
	Participants []*models.Participant
}

// ListParticipantsInput contains parameters for listing the roster
type ListParticipantsInput struct {
	ActiveOnly bool
}

// ListParticipantsOutput contains the roster
type ListParticipantsOutput struct {
	Participants []*models.Participant
}

// SetParticipantActiveInput contains parameters for toggling a participant
type SetParticipantActiveInput struct {
	ParticipantID string
	Active        bool
}

// SetParticipantActiveOutput contains the updated participant
type SetParticipantActiveOutput struct {
	Participant *models.Participant
}

// RemoveParticipantInput contains parameters for removing a participant
type RemoveParticipantInput struct {
	ParticipantID string
}

// RemoveParticipantOutput is empty
type RemoveParticipantOutput struct{}

// ClearParticipantsInput is empty
type ClearParticipantsInput struct{}

// ClearParticipantsOutput is empty
type ClearParticipantsOutput struct{}
