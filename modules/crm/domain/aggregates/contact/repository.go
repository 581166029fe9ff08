package contact

import (
	"context"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
)

var ErrNotFound = gerrors.New("contact not found")

type Repository interface {
	GetAll(ctx context.Context) ([]Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (Contact, error)
	Create(ctx context.Context, c Contact) (Contact, error)
	Update(ctx context.Context, c Contact) (Contact, error)
	Delete(ctx context.Context, ids []uuid.UUID) (int64, error)
}
