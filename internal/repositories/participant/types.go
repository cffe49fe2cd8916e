package participant

import "github.com/KirkDiggler/speedmeet/internal/models"

// SaveParticipantInput contains parameters for saving a participant
type SaveParticipantInput struct {
	Participant *models.Participant
}

// SaveParticipantsInput contains a batch to save atomically
type SaveParticipantsInput struct {
	Participants []*models.Participant
}

// GetParticipantInput contains parameters for retrieving a participant
type GetParticipantInput struct {
	ParticipantID string
}

// ListParticipantsInput contains parameters for listing the roster
type ListParticipantsInput struct {
	// ActiveOnly skips participants that are not marked active
	ActiveOnly bool
}

// ListParticipantsOutput contains the roster in registration order
type ListParticipantsOutput struct {
	Participants []*models.Participant
}

// DeleteParticipantInput contains parameters for removing a participant
type DeleteParticipantInput struct {
	ParticipantID string
}

// ClearParticipantsInput contains parameters for emptying the roster
type ClearParticipantsInput struct {
}
