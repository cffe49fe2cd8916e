package itinerary

import (
	"github.com/KirkDiggler/speedmeet/internal/models"
)

// Resolve returns the table assignments of the participant whose display name
// matches participantName. If two participants share a name, the first one seated
// in round 1 wins.
func Resolve(plan *models.SessionPlan, participantName string) (*models.Itinerary, error) {
	if plan == nil {
		return nil, ErrNoActiveSession
	}

	key := NormalizeName(participantName)
	if key == "" {
		return nil, ErrNotFound
	}

	for _, round := range plan.Rounds {
		for _, table := range round.Tables {
			for _, m := range table.Members {
				if NormalizeName(m.Name) == key {
					return ResolveByID(plan, m.ParticipantID)
				}
			}
		}
	}

	return nil, ErrNotFound
}

// ResolveByID returns the table assignments of a participant, one entry per round
func ResolveByID(plan *models.SessionPlan, participantID string) (*models.Itinerary, error) {
	if plan == nil {
		return nil, ErrNoActiveSession
	}

	result := &models.Itinerary{
		ParticipantID: participantID,
		Entries:       make([]models.ItineraryEntry, 0, len(plan.Rounds)),
	}

	for _, round := range plan.Rounds {
		table, member, ok := seatOf(round, participantID)
		if !ok {
			continue
		}
		if result.Participant == "" {
			result.Participant = member.Name
		}
		result.Entries = append(result.Entries, models.ItineraryEntry{
			Round:     round.Number,
			TableID:   table.ID,
			TableName: table.Name,
		})
	}

	if len(result.Entries) == 0 {
		return nil, ErrNotFound
	}

	return result, nil
}

// TableRotations lists who sits at a table in every round
func TableRotations(plan *models.SessionPlan, tableID int) (*models.TableRotation, error) {
	if plan == nil {
		return nil, ErrNoActiveSession
	}

	if tableID < 1 || tableID > plan.Metadata.TotalTables {
		return nil, ErrNotFound
	}

	rotation := &models.TableRotation{
		TableID: tableID,
		Rounds:  make([]models.TableRound, 0, len(plan.Rounds)),
	}

	for _, round := range plan.Rounds {
		for _, table := range round.Tables {
			if table.ID != tableID {
				continue
			}
			rotation.TableName = table.Name
			rotation.Rounds = append(rotation.Rounds, models.TableRound{
				Round:   round.Number,
				Members: append([]models.Member(nil), table.Members...),
			})
		}
	}

	return rotation, nil
}

func seatOf(round *models.Round, participantID string) (*models.Table, models.Member, bool) {
	for _, table := range round.Tables {
		for _, m := range table.Members {
			if m.ParticipantID == participantID {
				return table, m, true
			}
		}
	}
	return nil, models.Member{}, false
}
