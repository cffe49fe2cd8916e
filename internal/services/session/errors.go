package session

// SessionError is a custom error type for session service errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig           SessionError = "config cannot be nil"
	ErrNilParticipantRepo  SessionError = "participant repository cannot be nil"
	ErrNilPlanRepo         SessionError = "plan repository cannot be nil"
	ErrNilScheduler        SessionError = "scheduler cannot be nil"
	ErrNilMessagingService SessionError = "messaging service cannot be nil"
	ErrNilPublisher        SessionError = "event publisher cannot be nil"
	ErrNilClock            SessionError = "clock cannot be nil"
	ErrNilUUIDGenerator    SessionError = "UUID generator cannot be nil"
)
