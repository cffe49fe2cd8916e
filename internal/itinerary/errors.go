package itinerary

// ItineraryError is a custom error type for itinerary lookups
type ItineraryError string

// Error implements the error interface
func (e ItineraryError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrNoActiveSession means no plan has been generated yet. Callers should wait and retry.
	ErrNoActiveSession ItineraryError = "no active session"

	// ErrNotFound means the plan has no matching participant or table
	ErrNotFound ItineraryError = "not found in the current session"
)
