package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/account"
	"github.com/vantage-crm/vantage/pkg/composables"
	"github.com/vantage-crm/vantage/pkg/eventbus"
)

type AccountService struct {
	repo      account.Repository
	publisher eventbus.EventBus
}

func NewAccountService(repo account.Repository, publisher eventbus.EventBus) *AccountService {
	return &AccountService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *AccountService) GetAll(ctx context.Context) ([]account.Account, error) {
	return s.repo.GetAll(ctx)
}

func (s *AccountService) GetByID(ctx context.Context, id uuid.UUID) (account.Account, error) {
	return s.repo.GetByID(ctx, id)
}

// Tags returns the distinct tag set across all accounts, used to build the
// tag filter options.
func (s *AccountService) Tags(ctx context.Context) ([]string, error) {
	accounts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	tags := make([]string, 0)
	for _, a := range accounts {
		for _, tag := range a.Tags() {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

func (s *AccountService) Create(ctx context.Context, d *account.CreateDTO) (account.Account, error) {
	created, err := composables.InTxResult(ctx, func(txCtx context.Context) (account.Account, error) {
		return s.repo.Create(txCtx, d.ToEntity())
	})
	if err != nil {
		return account.Account{}, err
	}
	s.publisher.Publish(account.CreatedEvent{Result: created})
	return created, nil
}

func (s *AccountService) Update(ctx context.Context, id uuid.UUID, d *account.UpdateDTO) (account.Account, error) {
	updated, err := composables.InTxResult(ctx, func(txCtx context.Context) (account.Account, error) {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return account.Account{}, err
		}
		return s.repo.Update(txCtx, d.ToEntity(id, existing.CreatedAt()))
	})
	if err != nil {
		return account.Account{}, err
	}
	s.publisher.Publish(account.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *AccountService) Delete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	deleted, err := composables.InTxResult(ctx, func(txCtx context.Context) (int64, error) {
		return s.repo.Delete(txCtx, ids)
	})
	if err != nil {
		return 0, err
	}
	s.publisher.Publish(account.DeletedEvent{IDs: ids})
	return deleted, nil
}
