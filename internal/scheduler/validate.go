package scheduler

import (
	"fmt"

	"github.com/KirkDiggler/speedmeet/internal/models"
)

// ValidatePlan checks that a plan seats every participant exactly once per round,
// that no table exceeds ceil(participants/tables), and that the metadata matches
// the rounds.
func ValidatePlan(plan *models.SessionPlan) error {
	if plan == nil {
		return fmt.Errorf("%w: plan is nil", ErrInvalidPlan)
	}

	meta := plan.Metadata
	if meta.TotalTables < 1 {
		return fmt.Errorf("%w: plan has %d tables", ErrInvalidPlan, meta.TotalTables)
	}
	if len(plan.Rounds) != meta.TotalRounds {
		return fmt.Errorf("%w: expected %d rounds, got %d", ErrInvalidPlan, meta.TotalRounds, len(plan.Rounds))
	}

	maxSeats := ceilDiv(meta.TotalParticipants, meta.TotalTables)

	var roster map[string]bool
	for i, round := range plan.Rounds {
		if round == nil {
			return fmt.Errorf("%w: round %d is missing", ErrInvalidPlan, i+1)
		}
		if round.Number != i+1 {
			return fmt.Errorf("%w: round at position %d is numbered %d", ErrInvalidPlan, i+1, round.Number)
		}
		if len(round.Tables) != meta.TotalTables {
			return fmt.Errorf("%w: round %d has %d tables, expected %d", ErrInvalidPlan, round.Number, len(round.Tables), meta.TotalTables)
		}

		seen := make(map[string]bool, meta.TotalParticipants)
		for _, table := range round.Tables {
			if len(table.Members) > maxSeats {
				return fmt.Errorf("%w: round %d table %d seats %d, limit is %d",
					ErrInvalidPlan, round.Number, table.ID, len(table.Members), maxSeats)
			}
			for _, m := range table.Members {
				if seen[m.ParticipantID] {
					return fmt.Errorf("%w: participant %s seated twice in round %d", ErrInvalidPlan, m.ParticipantID, round.Number)
				}
				seen[m.ParticipantID] = true
			}
		}

		if len(seen) != meta.TotalParticipants {
			return fmt.Errorf("%w: round %d seats %d participants, expected %d",
				ErrInvalidPlan, round.Number, len(seen), meta.TotalParticipants)
		}

		if roster == nil {
			roster = seen
			continue
		}
		for id := range seen {
			if !roster[id] {
				return fmt.Errorf("%w: participant %s appears in round %d but not in round 1", ErrInvalidPlan, id, round.Number)
			}
		}
	}

	return nil
}

// CountRepeatedPairs returns how many times a pair is seated together again after
// an earlier round already sat them at the same table
func CountRepeatedPairs(plan *models.SessionPlan) int {
	if plan == nil {
		return 0
	}

	history := NewPairingHistory()
	repeats := 0

	for _, round := range plan.Rounds {
		if round == nil {
			continue
		}

		seating := make([][]int, 0, len(round.Tables))
		for _, table := range round.Tables {
			members := make([]int, 0, len(table.Members))
			for _, m := range table.Members {
				members = append(members, history.intern(m.ParticipantID))
			}
			for i := 0; i < len(members); i++ {
				for j := i + 1; j < len(members); j++ {
					if history.meetings(members[i], members[j]) > 0 {
						repeats++
					}
				}
			}
			seating = append(seating, members)
		}

		history.recordSeating(seating)
	}

	return repeats
}
