package models

import (
	"time"
)

// Participant represents a guest registered for the event
type Participant struct {
	// ID is the opaque, stable identifier of the participant
	ID string

	// FirstName is the given name as entered at registration
	FirstName string

	// LastName is the family name, stored upper-cased
	LastName string

	// Name is the display name used on table sheets and for itinerary lookups
	Name string

	// Email is the optional contact address
	Email string

	// Company is the optional organisation the participant represents
	Company string

	// Active indicates the participant will be seated by the next generation
	Active bool

	// CreatedAt is when the participant joined the roster
	CreatedAt time.Time

	// UpdatedAt is when the participant was last modified
	UpdatedAt time.Time
}
