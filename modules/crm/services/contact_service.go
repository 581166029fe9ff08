package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/contact"
	"github.com/vantage-crm/vantage/pkg/composables"
	"github.com/vantage-crm/vantage/pkg/eventbus"
)

type ContactService struct {
	repo      contact.Repository
	publisher eventbus.EventBus
}

func NewContactService(repo contact.Repository, publisher eventbus.EventBus) *ContactService {
	return &ContactService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *ContactService) GetAll(ctx context.Context) ([]contact.Contact, error) {
	return s.repo.GetAll(ctx)
}

func (s *ContactService) GetByID(ctx context.Context, id uuid.UUID) (contact.Contact, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ContactService) Create(ctx context.Context, d *contact.CreateDTO) (contact.Contact, error) {
	created, err := composables.InTxResult(ctx, func(txCtx context.Context) (contact.Contact, error) {
		return s.repo.Create(txCtx, d.ToEntity())
	})
	if err != nil {
		return contact.Contact{}, err
	}
	s.publisher.Publish(contact.CreatedEvent{Result: created})
	return created, nil
}

func (s *ContactService) Update(ctx context.Context, id uuid.UUID, d *contact.UpdateDTO) (contact.Contact, error) {
	updated, err := composables.InTxResult(ctx, func(txCtx context.Context) (contact.Contact, error) {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return contact.Contact{}, err
		}
		return s.repo.Update(txCtx, d.ToEntity(id, existing.CreatedAt()))
	})
	if err != nil {
		return contact.Contact{}, err
	}
	s.publisher.Publish(contact.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *ContactService) Delete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	deleted, err := composables.InTxResult(ctx, func(txCtx context.Context) (int64, error) {
		return s.repo.Delete(txCtx, ids)
	})
	if err != nil {
		return 0, err
	}
	s.publisher.Publish(contact.DeletedEvent{IDs: ids})
	return deleted, nil
}
