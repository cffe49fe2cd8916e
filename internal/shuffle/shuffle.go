package shuffle

import (
	"math/rand"

	"github.com/KirkDiggler/speedmeet/internal/models"
)

// Shuffler permutes rosters reproducibly
type Shuffler struct {
	random *rand.Rand
}

// Config for the shuffler
type Config struct {
	// Seed fixes the permutation; the same seed always yields the same order
	Seed int64
}

// New creates a new shuffler
func New(cfg *Config) *Shuffler {
	var seed int64
	if cfg != nil {
		seed = cfg.Seed
	}

	return &Shuffler{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Participants returns a permuted copy of the roster, leaving the input untouched
func (s *Shuffler) Participants(participants []*models.Participant) []*models.Participant {
	out := append([]*models.Participant(nil), participants...)
	s.random.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
