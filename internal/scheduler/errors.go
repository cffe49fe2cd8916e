package scheduler

// SchedulerError is a custom error type for scheduling errors
type SchedulerError string

// Error implements the error interface
func (e SchedulerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidConfiguration SchedulerError = "invalid configuration"
	ErrEmptyRoster          SchedulerError = "no active participants to seat"
	ErrInvalidPlan          SchedulerError = "invalid session plan"
)
