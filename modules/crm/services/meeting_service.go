package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/meeting"
	"github.com/vantage-crm/vantage/pkg/composables"
	"github.com/vantage-crm/vantage/pkg/eventbus"
)

// MeetingService owns the clock used to derive effective statuses, so tests
// can pin the current time with a fake clock.
type MeetingService struct {
	repo      meeting.Repository
	publisher eventbus.EventBus
	clock     clockwork.Clock
}

func NewMeetingService(repo meeting.Repository, publisher eventbus.EventBus, clock clockwork.Clock) *MeetingService {
	return &MeetingService{
		repo:      repo,
		publisher: publisher,
		clock:     clock,
	}
}

func (s *MeetingService) Now() time.Time {
	return s.clock.Now()
}

func (s *MeetingService) GetAll(ctx context.Context) ([]meeting.Meeting, error) {
	return s.repo.GetAll(ctx)
}

func (s *MeetingService) GetByID(ctx context.Context, id uuid.UUID) (meeting.Meeting, error) {
	return s.repo.GetByID(ctx, id)
}

// EffectiveStatus resolves the status shown for a meeting at the service
// clock's current time.
func (s *MeetingService) EffectiveStatus(m meeting.Meeting) meeting.Status {
	return m.EffectiveStatusAt(s.clock.Now())
}

func (s *MeetingService) Create(ctx context.Context, d *meeting.CreateDTO) (meeting.Meeting, error) {
	created, err := composables.InTxResult(ctx, func(txCtx context.Context) (meeting.Meeting, error) {
		return s.repo.Create(txCtx, d.ToEntity())
	})
	if err != nil {
		return meeting.Meeting{}, err
	}
	s.publisher.Publish(meeting.CreatedEvent{Result: created})
	return created, nil
}

// Update reschedules and re-describes the meeting. A status in the payload
// goes through SetStatus; an omitted status leaves the stored one alone, so a
// plain reschedule never resurrects a cancelled meeting.
func (s *MeetingService) Update(ctx context.Context, id uuid.UUID, d *meeting.UpdateDTO) (meeting.Meeting, error) {
	updated, err := composables.InTxResult(ctx, func(txCtx context.Context) (meeting.Meeting, error) {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return meeting.Meeting{}, err
		}
		updated, err := s.repo.Update(txCtx, d.ToEntity(id, existing.StoredStatus(), existing.CreatedAt()))
		if err != nil {
			return meeting.Meeting{}, err
		}
		if status := meeting.Status(d.Status); d.Status != "" && status != updated.StoredStatus() {
			return s.repo.SetStatus(txCtx, id, status)
		}
		return updated, nil
	})
	if err != nil {
		return meeting.Meeting{}, err
	}
	s.publisher.Publish(meeting.UpdatedEvent{Result: updated})
	return updated, nil
}

// Cancel marks the stored status cancelled. Cancellation wins over any
// time-derived status from then on.
func (s *MeetingService) Cancel(ctx context.Context, id uuid.UUID) (meeting.Meeting, error) {
	cancelled, err := composables.InTxResult(ctx, func(txCtx context.Context) (meeting.Meeting, error) {
		return s.repo.SetStatus(txCtx, id, meeting.StatusCancelled)
	})
	if err != nil {
		return meeting.Meeting{}, err
	}
	s.publisher.Publish(meeting.CancelledEvent{Result: cancelled})
	return cancelled, nil
}

func (s *MeetingService) Delete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	deleted, err := composables.InTxResult(ctx, func(txCtx context.Context) (int64, error) {
		return s.repo.Delete(txCtx, ids)
	})
	if err != nil {
		return 0, err
	}
	s.publisher.Publish(meeting.DeletedEvent{IDs: ids})
	return deleted, nil
}
