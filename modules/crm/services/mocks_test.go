package services

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/lead"
	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/meeting"
	"github.com/vantage-crm/vantage/pkg/eventbus"
	"github.com/vantage-crm/vantage/pkg/logging"
)

func testPublisher() (eventbus.EventBus, *[]interface{}) {
	published := &[]interface{}{}
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.ErrorLevel))
	bus.Subscribe(func(e lead.CreatedEvent) { *published = append(*published, e) })
	bus.Subscribe(func(e lead.UpdatedEvent) { *published = append(*published, e) })
	bus.Subscribe(func(e lead.DeletedEvent) { *published = append(*published, e) })
	bus.Subscribe(func(e meeting.CreatedEvent) { *published = append(*published, e) })
	bus.Subscribe(func(e meeting.UpdatedEvent) { *published = append(*published, e) })
	bus.Subscribe(func(e meeting.CancelledEvent) { *published = append(*published, e) })
	bus.Subscribe(func(e meeting.DeletedEvent) { *published = append(*published, e) })
	return bus, published
}

type inMemoryLeadRepository struct {
	leads []lead.Lead
}

func (r *inMemoryLeadRepository) GetAll(context.Context) ([]lead.Lead, error) {
	return slices.Clone(r.leads), nil
}

func (r *inMemoryLeadRepository) GetByID(_ context.Context, id uuid.UUID) (lead.Lead, error) {
	for _, l := range r.leads {
		if l.ID() == id {
			return l, nil
		}
	}
	return lead.Lead{}, lead.ErrNotFound
}

func (r *inMemoryLeadRepository) Create(_ context.Context, l lead.Lead) (lead.Lead, error) {
	for _, existing := range r.leads {
		if existing.Email() == l.Email() {
			return lead.Lead{}, lead.ErrEmailTaken
		}
	}
	created := lead.Hydrate(
		uuid.New(),
		l.FirstName(), l.LastName(), l.Email(), l.Phone(), l.Company(), l.Source(),
		l.Status(), l.OwnerID(), "", l.CreatedAt(), l.UpdatedAt(),
	)
	r.leads = append(r.leads, created)
	return created, nil
}

func (r *inMemoryLeadRepository) Update(_ context.Context, l lead.Lead) (lead.Lead, error) {
	for i, existing := range r.leads {
		if existing.ID() == l.ID() {
			r.leads[i] = l
			return l, nil
		}
	}
	return lead.Lead{}, lead.ErrNotFound
}

func (r *inMemoryLeadRepository) Delete(_ context.Context, ids []uuid.UUID) (int64, error) {
	var deleted int64
	kept := r.leads[:0]
	for _, l := range r.leads {
		if slices.Contains(ids, l.ID()) {
			deleted++
			continue
		}
		kept = append(kept, l)
	}
	r.leads = kept
	return deleted, nil
}

type inMemoryMeetingRepository struct {
	meetings []meeting.Meeting
}

func (r *inMemoryMeetingRepository) GetAll(context.Context) ([]meeting.Meeting, error) {
	return slices.Clone(r.meetings), nil
}

func (r *inMemoryMeetingRepository) GetByID(_ context.Context, id uuid.UUID) (meeting.Meeting, error) {
	for _, m := range r.meetings {
		if m.ID() == id {
			return m, nil
		}
	}
	return meeting.Meeting{}, meeting.ErrNotFound
}

func (r *inMemoryMeetingRepository) Create(_ context.Context, m meeting.Meeting) (meeting.Meeting, error) {
	created := meeting.Hydrate(
		uuid.New(),
		m.Title(), m.StartTime(), m.EndTime(), m.StoredStatus(),
		m.Location(), m.Notes(), m.OwnerID(), "", m.AccountName(),
		m.CreatedAt(), m.UpdatedAt(),
	)
	r.meetings = append(r.meetings, created)
	return created, nil
}

func (r *inMemoryMeetingRepository) Update(_ context.Context, m meeting.Meeting) (meeting.Meeting, error) {
	for i, existing := range r.meetings {
		if existing.ID() == m.ID() {
			// Stored status survives a plain update.
			updated := meeting.Hydrate(
				m.ID(), m.Title(), m.StartTime(), m.EndTime(), existing.StoredStatus(),
				m.Location(), m.Notes(), m.OwnerID(), "", m.AccountName(),
				existing.CreatedAt(), m.UpdatedAt(),
			)
			r.meetings[i] = updated
			return updated, nil
		}
	}
	return meeting.Meeting{}, meeting.ErrNotFound
}

func (r *inMemoryMeetingRepository) SetStatus(_ context.Context, id uuid.UUID, status meeting.Status) (meeting.Meeting, error) {
	for i, existing := range r.meetings {
		if existing.ID() == id {
			updated := meeting.Hydrate(
				existing.ID(), existing.Title(), existing.StartTime(), existing.EndTime(), status,
				existing.Location(), existing.Notes(), existing.OwnerID(), existing.OwnerName(),
				existing.AccountName(), existing.CreatedAt(), existing.UpdatedAt(),
			)
			r.meetings[i] = updated
			return updated, nil
		}
	}
	return meeting.Meeting{}, meeting.ErrNotFound
}

func (r *inMemoryMeetingRepository) Delete(_ context.Context, ids []uuid.UUID) (int64, error) {
	var deleted int64
	kept := r.meetings[:0]
	for _, m := range r.meetings {
		if slices.Contains(ids, m.ID()) {
			deleted++
			continue
		}
		kept = append(kept, m)
	}
	r.meetings = kept
	return deleted, nil
}
