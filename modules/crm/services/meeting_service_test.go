package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/meeting"
)

func TestMeetingService_EffectiveStatusFollowsClock(t *testing.T) {
	repo := &inMemoryMeetingRepository{}
	bus, _ := testPublisher()
	start := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(start.Add(-time.Hour))
	svc := NewMeetingService(repo, bus, clock)

	created, err := svc.Create(context.Background(), &meeting.CreateDTO{
		Title:     "Quarterly review",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, meeting.StatusScheduled, svc.EffectiveStatus(created))

	clock.Advance(time.Hour)
	require.Equal(t, meeting.StatusOngoing, svc.EffectiveStatus(created))

	clock.Advance(time.Hour)
	require.Equal(t, meeting.StatusCompleted, svc.EffectiveStatus(created))
}

func TestMeetingService_CancelWinsOverClock(t *testing.T) {
	repo := &inMemoryMeetingRepository{}
	bus, published := testPublisher()
	start := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(start.Add(30 * time.Minute))
	svc := NewMeetingService(repo, bus, clock)

	created, err := svc.Create(context.Background(), &meeting.CreateDTO{
		Title:     "Kickoff",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, meeting.StatusOngoing, svc.EffectiveStatus(created))

	cancelled, err := svc.Cancel(context.Background(), created.ID())
	require.NoError(t, err)
	require.Equal(t, meeting.StatusCancelled, cancelled.StoredStatus())
	require.Equal(t, meeting.StatusCancelled, svc.EffectiveStatus(cancelled))

	clock.Advance(24 * time.Hour)
	require.Equal(t, meeting.StatusCancelled, svc.EffectiveStatus(cancelled))

	last := (*published)[len(*published)-1]
	event, ok := last.(meeting.CancelledEvent)
	require.True(t, ok)
	require.Equal(t, created.ID(), event.Result.ID())
}

func TestMeetingService_CancelMissing(t *testing.T) {
	bus, _ := testPublisher()
	svc := NewMeetingService(&inMemoryMeetingRepository{}, bus, clockwork.NewRealClock())

	_, err := svc.Cancel(context.Background(), uuid.New())
	require.ErrorIs(t, err, meeting.ErrNotFound)
}

func TestMeetingService_RescheduleKeepsCancelledStatus(t *testing.T) {
	repo := &inMemoryMeetingRepository{}
	bus, _ := testPublisher()
	start := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(start)
	svc := NewMeetingService(repo, bus, clock)

	created, err := svc.Create(context.Background(), &meeting.CreateDTO{
		Title:     "Demo",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), created.ID())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID(), &meeting.UpdateDTO{
		Title:     "Demo",
		StartTime: start.Add(48 * time.Hour),
		EndTime:   start.Add(49 * time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, meeting.StatusCancelled, updated.StoredStatus())
	require.Equal(t, meeting.StatusCancelled, svc.EffectiveStatus(updated))
}

func TestMeetingService_UpdateAppliesPayloadStatus(t *testing.T) {
	repo := &inMemoryMeetingRepository{}
	bus, _ := testPublisher()
	start := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(start.Add(-time.Hour))
	svc := NewMeetingService(repo, bus, clock)

	created, err := svc.Create(context.Background(), &meeting.CreateDTO{
		Title:     "Demo",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, meeting.StatusScheduled, created.StoredStatus())

	updated, err := svc.Update(context.Background(), created.ID(), &meeting.UpdateDTO{
		Title:     "Demo",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    "cancelled",
	})
	require.NoError(t, err)
	require.Equal(t, meeting.StatusCancelled, updated.StoredStatus())

	stored, err := svc.GetByID(context.Background(), created.ID())
	require.NoError(t, err)
	require.Equal(t, meeting.StatusCancelled, stored.StoredStatus())
}
