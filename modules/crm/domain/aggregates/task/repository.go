package task

import (
	"context"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
)

var ErrNotFound = gerrors.New("task not found")

type Repository interface {
	GetAll(ctx context.Context) ([]Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (Task, error)
	Create(ctx context.Context, t Task) (Task, error)
	Update(ctx context.Context, t Task) (Task, error)
	Delete(ctx context.Context, ids []uuid.UUID) (int64, error)
}
