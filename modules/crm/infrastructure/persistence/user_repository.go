package persistence

import (
	"context"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/user"
	"github.com/vantage-crm/vantage/modules/crm/infrastructure/persistence/models"
	"github.com/vantage-crm/vantage/pkg/composables"
)

const userSelectQuery = `
	SELECT u.id, u.display_name, u.email, u.created_at
	FROM crm_users u`

type PgUserRepository struct{}

func NewUserRepository() user.Repository {
	return &PgUserRepository{}
}

func (r *PgUserRepository) GetAll(ctx context.Context) ([]user.User, error) {
	return r.queryUsers(ctx, userSelectQuery+" ORDER BY u.display_name ASC")
}

func (r *PgUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	users, err := r.queryUsers(ctx, userSelectQuery+" WHERE u.id = $1", pgUUID(id))
	if err != nil {
		return user.User{}, err
	}
	if len(users) == 0 {
		return user.User{}, user.ErrNotFound
	}
	return users[0], nil
}

func (r *PgUserRepository) queryUsers(ctx context.Context, query string, args ...interface{}) ([]user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, gerrors.Wrap(err, "failed to query users")
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		entity, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, gerrors.Wrap(err, "failed to iterate users")
	}
	return users, nil
}

func scanUser(rows pgx.Rows) (user.User, error) {
	var row models.User
	if err := rows.Scan(&row.ID, &row.DisplayName, &row.Email, &row.CreatedAt); err != nil {
		return user.User{}, gerrors.Wrap(err, "failed to scan user")
	}
	return user.Hydrate(uuidFromPg(row.ID), row.DisplayName, row.Email, row.CreatedAt), nil
}
