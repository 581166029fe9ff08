package meeting

import (
	"context"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
)

var ErrNotFound = gerrors.New("meeting not found")

// Repository is the record source and mutation sink for meetings. GetAll
// returns the full set already denormalized with owner display names; the
// list pipeline filters, sorts and paginates in memory.
type Repository interface {
	GetAll(ctx context.Context) ([]Meeting, error)
	GetByID(ctx context.Context, id uuid.UUID) (Meeting, error)
	Create(ctx context.Context, m Meeting) (Meeting, error)
	Update(ctx context.Context, m Meeting) (Meeting, error)
	SetStatus(ctx context.Context, id uuid.UUID, status Status) (Meeting, error)
	Delete(ctx context.Context, ids []uuid.UUID) (int64, error)
}
