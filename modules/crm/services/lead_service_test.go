package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/lead"
)

func TestLeadService_CreatePublishesEvent(t *testing.T) {
	repo := &inMemoryLeadRepository{}
	bus, published := testPublisher()
	svc := NewLeadService(repo, bus)

	created, err := svc.Create(context.Background(), &lead.CreateDTO{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID())
	require.Equal(t, lead.StatusNew, created.Status())

	require.Len(t, *published, 1)
	event, ok := (*published)[0].(lead.CreatedEvent)
	require.True(t, ok)
	require.Equal(t, created.ID(), event.Result.ID())
}

func TestLeadService_CreateDuplicateEmail(t *testing.T) {
	repo := &inMemoryLeadRepository{}
	bus, published := testPublisher()
	svc := NewLeadService(repo, bus)

	_, err := svc.Create(context.Background(), &lead.CreateDTO{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &lead.CreateDTO{
		FirstName: "Other", LastName: "Person", Email: "ada@example.com",
	})
	require.ErrorIs(t, err, lead.ErrEmailTaken)
	require.Len(t, *published, 1)
}

func TestLeadService_UpdateKeepsCreatedAt(t *testing.T) {
	repo := &inMemoryLeadRepository{}
	bus, _ := testPublisher()
	svc := NewLeadService(repo, bus)

	created, err := svc.Create(context.Background(), &lead.CreateDTO{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID(), &lead.UpdateDTO{
		FirstName: "Ada",
		LastName:  "King",
		Email:     "ada@example.com",
		Status:    "qualified",
	})
	require.NoError(t, err)
	require.Equal(t, "King", updated.LastName())
	require.Equal(t, lead.StatusQualified, updated.Status())
	require.Equal(t, created.CreatedAt(), updated.CreatedAt())
}

func TestLeadService_UpdateMissing(t *testing.T) {
	bus, _ := testPublisher()
	svc := NewLeadService(&inMemoryLeadRepository{}, bus)

	_, err := svc.Update(context.Background(), uuid.New(), &lead.UpdateDTO{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Status: "new",
	})
	require.ErrorIs(t, err, lead.ErrNotFound)
}

func TestLeadService_DeleteMany(t *testing.T) {
	repo := &inMemoryLeadRepository{}
	bus, published := testPublisher()
	svc := NewLeadService(repo, bus)

	ids := make([]uuid.UUID, 0, 3)
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		created, err := svc.Create(context.Background(), &lead.CreateDTO{
			FirstName: "First", LastName: "Last", Email: email,
		})
		require.NoError(t, err)
		ids = append(ids, created.ID())
	}

	deleted, err := svc.Delete(context.Background(), ids[:2])
	require.NoError(t, err)
	require.EqualValues(t, 2, deleted)

	remaining, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, ids[2], remaining[0].ID())

	last := (*published)[len(*published)-1]
	event, ok := last.(lead.DeletedEvent)
	require.True(t, ok)
	require.Equal(t, ids[:2], event.IDs)
}

func TestLeadService_DeleteNothing(t *testing.T) {
	bus, published := testPublisher()
	svc := NewLeadService(&inMemoryLeadRepository{}, bus)

	deleted, err := svc.Delete(context.Background(), nil)
	require.NoError(t, err)
	require.Zero(t, deleted)
	require.Empty(t, *published)
}
