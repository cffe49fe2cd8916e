package scheduler

// PairingHistory tracks which participants already shared a table.
// It is scratch state for a single generation and is never persisted.
//
// IDs are interned to dense indices so the scheduler can read meeting counts by
// roster position without hashing.
type PairingHistory struct {
	index  map[string]int
	counts [][]int32
	pairs  int
}

// NewPairingHistory creates an empty pairing history
func NewPairingHistory() *PairingHistory {
	return &PairingHistory{
		index: make(map[string]int),
	}
}

// newRosterHistory creates a history whose index i is ids[i]. ids must be unique.
func newRosterHistory(ids []string) *PairingHistory {
	h := &PairingHistory{
		index:  make(map[string]int, len(ids)),
		counts: make([][]int32, len(ids)),
	}
	for i, id := range ids {
		h.index[id] = i
		h.counts[i] = make([]int32, len(ids))
	}
	return h
}

// HasMet reports whether a and b have shared a table at least once
func (h *PairingHistory) HasMet(a, b string) bool {
	return h.MeetingCount(a, b) > 0
}

// RecordMeeting notes that a and b shared a table. Recording a participant
// with themselves is a no-op.
func (h *PairingHistory) RecordMeeting(a, b string) {
	if a == b {
		return
	}
	h.recordIndex(h.intern(a), h.intern(b))
}

// MeetingCount returns how many times a and b have shared a table
func (h *PairingHistory) MeetingCount(a, b string) int {
	i, ok := h.index[a]
	if !ok {
		return 0
	}
	j, ok := h.index[b]
	if !ok {
		return 0
	}
	return h.meetings(i, j)
}

// RecordTable records a meeting for every pair seated at the same table
func (h *PairingHistory) RecordTable(ids []string) {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			h.RecordMeeting(ids[i], ids[j])
		}
	}
}

// Pairs returns the number of distinct pairs that have met
func (h *PairingHistory) Pairs() int {
	return h.pairs
}

func (h *PairingHistory) intern(id string) int {
	if i, ok := h.index[id]; ok {
		return i
	}

	i := len(h.counts)
	for k := range h.counts {
		h.counts[k] = append(h.counts[k], 0)
	}
	h.counts = append(h.counts, make([]int32, i+1))
	h.index[id] = i
	return i
}

func (h *PairingHistory) meetings(i, j int) int {
	return int(h.counts[i][j])
}

// recordIndex counts a meeting between the participants at indices i and j
func (h *PairingHistory) recordIndex(i, j int) {
	if i == j {
		return
	}
	if h.counts[i][j] == 0 {
		h.pairs++
	}
	h.counts[i][j]++
	h.counts[j][i]++
}

// recordSeating records every table of a round given as roster indices
func (h *PairingHistory) recordSeating(seating [][]int) {
	for _, members := range seating {
		for x := 0; x < len(members); x++ {
			for y := x + 1; y < len(members); y++ {
				h.recordIndex(members[x], members[y])
			}
		}
	}
}
