package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairingHistoryIsSymmetric(t *testing.T) {
	h := NewPairingHistory()

	assert.False(t, h.HasMet("a", "b"))

	h.RecordMeeting("b", "a")
	assert.True(t, h.HasMet("a", "b"))
	assert.True(t, h.HasMet("b", "a"))
	assert.Equal(t, 1, h.MeetingCount("a", "b"))

	h.RecordMeeting("a", "b")
	assert.Equal(t, 2, h.MeetingCount("b", "a"))
	assert.Equal(t, 1, h.Pairs())
}

func TestPairingHistoryIgnoresSelfMeetings(t *testing.T) {
	h := NewPairingHistory()

	h.RecordMeeting("a", "a")
	assert.False(t, h.HasMet("a", "a"))
	assert.Equal(t, 0, h.MeetingCount("a", "a"))
	assert.Equal(t, 0, h.Pairs())
}

func TestPairingHistoryRecordTable(t *testing.T) {
	h := NewPairingHistory()

	h.RecordTable([]string{"a", "b", "c"})
	assert.Equal(t, 3, h.Pairs())
	assert.True(t, h.HasMet("a", "c"))
	assert.True(t, h.HasMet("c", "b"))
	assert.False(t, h.HasMet("a", "d"))

	h.RecordTable([]string{"d"})
	assert.Equal(t, 3, h.Pairs())
}
