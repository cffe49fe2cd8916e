package models

import (
	"time"
)

// SessionPlan is the full seating plan produced by one generation
type SessionPlan struct {
	// ID is the unique identifier of this plan
	ID string

	// CreatedAt is when the plan was generated
	CreatedAt time.Time

	// Metadata summarises the configuration the plan was built from
	Metadata PlanMetadata

	// Rounds holds every round in order, starting at round 1
	Rounds []*Round
}

// PlanMetadata describes the shape of a session plan
type PlanMetadata struct {
	TotalParticipants      int
	TotalTables            int
	TotalRounds            int
	ParticipantsPerTable   int
	MinutesPerRound        int
	SessionDurationMinutes int

	// RepeatedPairs counts pairs seated together again after their first meeting
	RepeatedPairs int
}

// Round is one synchronized seating period
type Round struct {
	// Number is the 1-based round index
	Number int

	// Tables lists every table of the round, including empty ones
	Tables []*Table
}

// Table is a table's seating for a single round
type Table struct {
	// ID is the 1-based table number
	ID int

	// Name is the human readable label shown to participants
	Name string

	// Capacity is the number of seats available at this table
	Capacity int

	// Members lists the participants seated at the table, in seating order
	Members []Member
}

// Member is a participant seated at a table
type Member struct {
	ParticipantID string
	Name          string
}

// MemberNames returns the display names of the table members in seating order
func (t *Table) MemberNames() []string {
	names := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		names = append(names, m.Name)
	}
	return names
}

// TableRotation lists who sits at one table in each round
type TableRotation struct {
	TableID   int
	TableName string
	Rounds    []TableRound
}

// TableRound is the membership of a table for a given round
type TableRound struct {
	Round   int
	Members []Member
}
