package lead

import (
	"context"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
)

var (
	ErrNotFound   = gerrors.New("lead not found")
	ErrEmailTaken = gerrors.New("lead email already exists")
)

type Repository interface {
	GetAll(ctx context.Context) ([]Lead, error)
	GetByID(ctx context.Context, id uuid.UUID) (Lead, error)
	Create(ctx context.Context, l Lead) (Lead, error)
	Update(ctx context.Context, l Lead) (Lead, error)
	Delete(ctx context.Context, ids []uuid.UUID) (int64, error)
}
