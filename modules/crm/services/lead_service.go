package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/lead"
	"github.com/vantage-crm/vantage/pkg/composables"
	"github.com/vantage-crm/vantage/pkg/eventbus"
)

type LeadService struct {
	repo      lead.Repository
	publisher eventbus.EventBus
}

func NewLeadService(repo lead.Repository, publisher eventbus.EventBus) *LeadService {
	return &LeadService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *LeadService) GetAll(ctx context.Context) ([]lead.Lead, error) {
	return s.repo.GetAll(ctx)
}

func (s *LeadService) GetByID(ctx context.Context, id uuid.UUID) (lead.Lead, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LeadService) Create(ctx context.Context, d *lead.CreateDTO) (lead.Lead, error) {
	created, err := composables.InTxResult(ctx, func(txCtx context.Context) (lead.Lead, error) {
		return s.repo.Create(txCtx, d.ToEntity())
	})
	if err != nil {
		return lead.Lead{}, err
	}
	s.publisher.Publish(lead.CreatedEvent{Result: created})
	return created, nil
}

func (s *LeadService) Update(ctx context.Context, id uuid.UUID, d *lead.UpdateDTO) (lead.Lead, error) {
	updated, err := composables.InTxResult(ctx, func(txCtx context.Context) (lead.Lead, error) {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return lead.Lead{}, err
		}
		return s.repo.Update(txCtx, d.ToEntity(id, existing.CreatedAt()))
	})
	if err != nil {
		return lead.Lead{}, err
	}
	s.publisher.Publish(lead.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *LeadService) Delete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	deleted, err := composables.InTxResult(ctx, func(txCtx context.Context) (int64, error) {
		return s.repo.Delete(txCtx, ids)
	})
	if err != nil {
		return 0, err
	}
	s.publisher.Publish(lead.DeletedEvent{IDs: ids})
	return deleted, nil
}
