package task

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPriorityRank_Ordering(t *testing.T) {
	require.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	require.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())
}

func TestNew_Defaults(t *testing.T) {
	due := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	entity := New("  Follow up  ", due, uuid.Nil)

	require.Equal(t, "Follow up", entity.Title())
	require.Equal(t, StatusTodo, entity.Status())
	require.Equal(t, PriorityMedium, entity.Priority())
	require.Equal(t, due, entity.DueDate())
}

func TestCreateDTO_InvalidPriority(t *testing.T) {
	dto := &CreateDTO{
		Title:    "Follow up",
		Priority: "urgent",
		DueDate:  time.Now(),
	}
	errs, ok := dto.Ok()
	require.False(t, ok)
	require.Contains(t, errs, "Priority")
}
