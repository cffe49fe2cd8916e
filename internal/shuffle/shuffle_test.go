package shuffle

import (
	"fmt"
	"testing"

	"github.com/KirkDiggler/speedmeet/internal/models"
	"github.com/stretchr/testify/assert"
)

func participants(n int) []*models.Participant {
	out := make([]*models.Participant, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &models.Participant{ID: fmt.Sprintf("p%02d", i)})
	}
	return out
}

func ids(in []*models.Participant) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		out = append(out, p.ID)
	}
	return out
}

func TestSameSeedSameOrder(t *testing.T) {
	roster := participants(20)

	first := New(&Config{Seed: 42}).Participants(roster)
	second := New(&Config{Seed: 42}).Participants(roster)

	assert.Equal(t, ids(first), ids(second))
	assert.ElementsMatch(t, ids(roster), ids(first))
}

func TestInputIsNotModified(t *testing.T) {
	roster := participants(10)
	before := ids(roster)

	New(&Config{Seed: 7}).Participants(roster)

	assert.Equal(t, before, ids(roster))
}

func TestDifferentSeedsDiffer(t *testing.T) {
	roster := participants(20)

	a := New(&Config{Seed: 1}).Participants(roster)
	b := New(&Config{Seed: 2}).Participants(roster)

	assert.NotEqual(t, ids(a), ids(b))
}
