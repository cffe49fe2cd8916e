package models

// Itinerary is a participant's personal list of table assignments
type Itinerary struct {
	// ParticipantID is the identifier of the participant
	ParticipantID string

	// Participant is the display name of the participant
	Participant string

	// Entries holds one assignment per round, in round order
	Entries []ItineraryEntry
}

// ItineraryEntry is the table a participant sits at during a round
type ItineraryEntry struct {
	Round     int
	TableID   int
	TableName string
}
