package scheduler

import (
	"fmt"

	"github.com/KirkDiggler/speedmeet/internal/models"
)

const (
	// DefaultMaxImprovePasses bounds the swaps applied after each greedy round
	DefaultMaxImprovePasses = 64

	// DefaultMaxSwapEvaluations bounds the swaps priced per round
	DefaultMaxSwapEvaluations = 1_000_000

	// DefaultMaxRounds is the longest plan a generation may request
	DefaultMaxRounds = 100

	// DefaultMaxParticipants is the largest roster a generation may seat
	DefaultMaxParticipants = 2000
)

// Config holds configuration for the rotation scheduler. Zero values mean the defaults.
type Config struct {
	// MaxImprovePasses is the number of swaps the improvement pass may apply per round
	MaxImprovePasses int

	// MaxSwapEvaluations is the number of candidate swaps the improvement pass may
	// price per round. A pass that would exceed it is not started.
	MaxSwapEvaluations int

	// MaxRounds rejects longer plans as an invalid configuration
	MaxRounds int

	// MaxParticipants rejects larger active rosters as an invalid configuration
	MaxParticipants int

	// DisableImprove leaves rounds exactly as the greedy fill produced them
	DisableImprove bool

	// TableName formats the label of a table from its 1-based number
	TableName func(id int) string
}

// Scheduler builds rotation plans that keep participants from meeting twice
type Scheduler struct {
	maxImprovePasses   int
	maxSwapEvaluations int
	maxRounds          int
	maxParticipants    int
	improve            bool
	tableName          func(id int) string
}

// New creates a new scheduler. A nil config yields the defaults.
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	if cfg.MaxImprovePasses < 0 || cfg.MaxSwapEvaluations < 0 || cfg.MaxRounds < 0 || cfg.MaxParticipants < 0 {
		return nil, fmt.Errorf("%w: scheduler limits cannot be negative", ErrInvalidConfiguration)
	}

	tableName := cfg.TableName
	if tableName == nil {
		tableName = DefaultTableName
	}

	return &Scheduler{
		maxImprovePasses:   orDefault(cfg.MaxImprovePasses, DefaultMaxImprovePasses),
		maxSwapEvaluations: orDefault(cfg.MaxSwapEvaluations, DefaultMaxSwapEvaluations),
		maxRounds:          orDefault(cfg.MaxRounds, DefaultMaxRounds),
		maxParticipants:    orDefault(cfg.MaxParticipants, DefaultMaxParticipants),
		improve:            !cfg.DisableImprove,
		tableName:          tableName,
	}, nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// MaxRounds is the longest plan this scheduler accepts
func (s *Scheduler) MaxRounds() int {
	return s.maxRounds
}

// DefaultTableName labels tables "Table 1", "Table 2", ...
func DefaultTableName(id int) string {
	return fmt.Sprintf("Table %d", id)
}

var defaultScheduler = &Scheduler{
	maxImprovePasses:   DefaultMaxImprovePasses,
	maxSwapEvaluations: DefaultMaxSwapEvaluations,
	maxRounds:          DefaultMaxRounds,
	maxParticipants:    DefaultMaxParticipants,
	improve:            true,
	tableName:          DefaultTableName,
}

// Generate builds a plan with the default scheduler configuration
func Generate(participants []*models.Participant, tableCount, roundCount int) (*models.SessionPlan, error) {
	return defaultScheduler.Generate(participants, tableCount, roundCount)
}

// Generate seats the active participants at tableCount tables for roundCount rounds.
//
// Round 1 fills tables in roster order. Every later round is filled seat by seat with
// the candidate that adds the fewest repeat pairings, then polished by swapping
// participants between tables while that lowers the round's repeats. The result never
// depends on anything but the inputs, and pairing conflicts only degrade the plan.
func (s *Scheduler) Generate(participants []*models.Participant, tableCount, roundCount int) (*models.SessionPlan, error) {
	if tableCount < 1 || tableCount > s.maxParticipants {
		return nil, fmt.Errorf("%w: table count must be between 1 and %d, got %d",
			ErrInvalidConfiguration, s.maxParticipants, tableCount)
	}
	if roundCount < 1 || roundCount > s.maxRounds {
		return nil, fmt.Errorf("%w: round count must be between 1 and %d, got %d",
			ErrInvalidConfiguration, s.maxRounds, roundCount)
	}

	roster, err := activeRoster(participants)
	if err != nil {
		return nil, err
	}
	if len(roster) > s.maxParticipants {
		return nil, fmt.Errorf("%w: %d active participants, limit is %d",
			ErrInvalidConfiguration, len(roster), s.maxParticipants)
	}

	capacities := tableCapacities(len(roster), tableCount)
	history := newRosterHistory(rosterIDs(roster))

	plan := &models.SessionPlan{
		Metadata: models.PlanMetadata{
			TotalParticipants:    len(roster),
			TotalTables:          tableCount,
			TotalRounds:          roundCount,
			ParticipantsPerTable: ceilDiv(len(roster), tableCount),
		},
		Rounds: make([]*models.Round, 0, roundCount),
	}

	for number := 1; number <= roundCount; number++ {
		var seating [][]int
		if number == 1 {
			seating = seedRound(capacities)
		} else {
			seating = greedyRound(roster, capacities, history)
			if s.improve {
				s.improveRound(roster, seating, history)
			}
		}

		history.recordSeating(seating)

		plan.Rounds = append(plan.Rounds, s.buildRound(number, roster, capacities, seating))
	}

	plan.Metadata.RepeatedPairs = CountRepeatedPairs(plan)

	return plan, nil
}

// activeRoster drops nil and inactive entries and rejects duplicate IDs
func activeRoster(participants []*models.Participant) ([]*models.Participant, error) {
	roster := make([]*models.Participant, 0, len(participants))
	seen := make(map[string]bool, len(participants))

	for _, p := range participants {
		if p == nil || !p.Active {
			continue
		}
		if p.ID == "" {
			return nil, fmt.Errorf("%w: participant %q has no id", ErrInvalidConfiguration, p.Name)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: duplicate participant id %s", ErrInvalidConfiguration, p.ID)
		}
		seen[p.ID] = true
		roster = append(roster, p)
	}

	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}

	return roster, nil
}

// tableCapacities spreads n seats over t tables. The first n mod t tables get one
// extra seat, so no table holds more than ceil(n/t) and surplus tables get zero.
func tableCapacities(n, t int) []int {
	base := n / t
	extra := n % t

	capacities := make([]int, t)
	for i := range capacities {
		capacities[i] = base
		if i < extra {
			capacities[i]++
		}
	}
	return capacities
}

// seedRound fills tables in roster order
func seedRound(capacities []int) [][]int {
	seating := make([][]int, len(capacities))
	next := 0
	for t, capacity := range capacities {
		members := make([]int, 0, capacity)
		for i := 0; i < capacity; i++ {
			members = append(members, next)
			next++
		}
		seating[t] = members
	}
	return seating
}

// buildRound converts index seating into the plan representation
func (s *Scheduler) buildRound(number int, roster []*models.Participant, capacities []int, seating [][]int) *models.Round {
	round := &models.Round{
		Number: number,
		Tables: make([]*models.Table, 0, len(seating)),
	}

	for t, members := range seating {
		table := &models.Table{
			ID:       t + 1,
			Name:     s.tableName(t + 1),
			Capacity: capacities[t],
			Members:  make([]models.Member, 0, len(members)),
		}
		for _, idx := range members {
			table.Members = append(table.Members, models.Member{
				ParticipantID: roster[idx].ID,
				Name:          roster[idx].Name,
			})
		}
		round.Tables = append(round.Tables, table)
	}

	return round
}

func rosterIDs(roster []*models.Participant) []string {
	ids := make([]string, 0, len(roster))
	for _, p := range roster {
		ids = append(ids, p.ID)
	}
	return ids
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
