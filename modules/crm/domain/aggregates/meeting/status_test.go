package meeting

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	start = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	end   = time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)
)

func TestEffectiveStatus_TimeInference(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want Status
	}{
		{"before start", start.Add(-time.Hour), StatusScheduled},
		{"one second before start", start.Add(-time.Second), StatusScheduled},
		{"exactly at start", start, StatusOngoing},
		{"mid meeting", start.Add(30 * time.Minute), StatusOngoing},
		{"one second before end", end.Add(-time.Second), StatusOngoing},
		{"exactly at end", end, StatusCompleted},
		{"after end", end.Add(time.Hour), StatusCompleted},
		{"days later", end.AddDate(0, 0, 3), StatusCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, EffectiveStatus(StatusScheduled, start, end, tc.now))
		})
	}
}

func TestEffectiveStatus_CancelledAlwaysWins(t *testing.T) {
	nows := []time.Time{
		start.Add(-time.Hour),          // entirely in the future
		start.Add(30 * time.Minute),    // would otherwise be ongoing
		end.Add(time.Hour),             // would otherwise be completed
		end.AddDate(-1, 0, 0),          // timestamps entirely in the past
		start.AddDate(1, 0, 0),         // timestamps entirely in the future
	}
	for _, now := range nows {
		require.Equal(t, StatusCancelled, EffectiveStatus(StatusCancelled, start, end, now))
	}
}

func TestEffectiveStatus_StoredNonCancelledDoesNotOverrideTime(t *testing.T) {
	// A persisted "completed" on a meeting still in its window displays as
	// ongoing: only cancellation is a terminal manual state.
	now := start.Add(30 * time.Minute)
	require.Equal(t, StatusOngoing, EffectiveStatus(StatusCompleted, start, end, now))
	require.Equal(t, StatusOngoing, EffectiveStatus(StatusOngoing, start, end, now))
}

func TestMeeting_EffectiveStatusAt(t *testing.T) {
	m := New("Kickoff", start, end, uuid.Nil)
	require.Equal(t, StatusScheduled, m.StoredStatus())
	require.Equal(t, StatusOngoing, m.EffectiveStatusAt(start.Add(30*time.Minute)))
	// Deriving the effective status never mutates the stored one.
	require.Equal(t, StatusScheduled, m.StoredStatus())
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range Statuses {
		require.True(t, s.Valid())
	}
	require.False(t, Status("archived").Valid())
	require.False(t, Status("").Valid())
}
