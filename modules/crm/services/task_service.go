package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/task"
	"github.com/vantage-crm/vantage/pkg/composables"
	"github.com/vantage-crm/vantage/pkg/eventbus"
)

type TaskService struct {
	repo      task.Repository
	publisher eventbus.EventBus
}

func NewTaskService(repo task.Repository, publisher eventbus.EventBus) *TaskService {
	return &TaskService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *TaskService) GetAll(ctx context.Context) ([]task.Task, error) {
	return s.repo.GetAll(ctx)
}

func (s *TaskService) GetByID(ctx context.Context, id uuid.UUID) (task.Task, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TaskService) Create(ctx context.Context, d *task.CreateDTO) (task.Task, error) {
	created, err := composables.InTxResult(ctx, func(txCtx context.Context) (task.Task, error) {
		return s.repo.Create(txCtx, d.ToEntity())
	})
	if err != nil {
		return task.Task{}, err
	}
	s.publisher.Publish(task.CreatedEvent{Result: created})
	return created, nil
}

func (s *TaskService) Update(ctx context.Context, id uuid.UUID, d *task.UpdateDTO) (task.Task, error) {
	updated, err := composables.InTxResult(ctx, func(txCtx context.Context) (task.Task, error) {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return task.Task{}, err
		}
		return s.repo.Update(txCtx, d.ToEntity(id, existing.CreatedAt()))
	})
	if err != nil {
		return task.Task{}, err
	}
	s.publisher.Publish(task.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	deleted, err := composables.InTxResult(ctx, func(txCtx context.Context) (int64, error) {
		return s.repo.Delete(txCtx, ids)
	})
	if err != nil {
		return 0, err
	}
	s.publisher.Publish(task.DeletedEvent{IDs: ids})
	return deleted, nil
}
