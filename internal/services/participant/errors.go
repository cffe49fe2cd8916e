package participant

// ParticipantError is a custom error type for roster errors
type ParticipantError string

// Error implements the error interface
func (e ParticipantError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidParticipant  ParticipantError = "invalid participant"
	ErrParticipantNotFound ParticipantError = "participant not found"
	ErrNilConfig           ParticipantError = "config cannot be nil"
	ErrNilRepository       ParticipantError = "participant repository cannot be nil"
	ErrNilClock            ParticipantError = "clock cannot be nil"
	ErrNilUUIDGenerator    ParticipantError = "UUID generator cannot be nil"
)
