package persistence

import (
	"context"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/account"
	"github.com/vantage-crm/vantage/modules/crm/infrastructure/persistence/models"
	"github.com/vantage-crm/vantage/pkg/composables"
)

const (
	accountSelectQuery = `
		SELECT a.id, a.name, a.industry, a.website, a.phone, a.tags,
			a.owner_id, COALESCE(u.display_name, ''), a.created_at, a.updated_at
		FROM crm_accounts a
		LEFT JOIN crm_users u ON u.id = a.owner_id`

	accountInsertQuery = `
		INSERT INTO crm_accounts (name, industry, website, phone, tags, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	accountUpdateQuery = `
		UPDATE crm_accounts
		SET name = $1, industry = $2, website = $3, phone = $4, tags = $5,
			owner_id = $6, updated_at = now()
		WHERE id = $7`

	accountDeleteQuery = `DELETE FROM crm_accounts WHERE id = ANY($1::uuid[])`
)

type PgAccountRepository struct{}

func NewAccountRepository() account.Repository {
	return &PgAccountRepository{}
}

func (r *PgAccountRepository) GetAll(ctx context.Context) ([]account.Account, error) {
	return r.queryAccounts(ctx, accountSelectQuery+" ORDER BY a.created_at DESC")
}

func (r *PgAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (account.Account, error) {
	accounts, err := r.queryAccounts(ctx, accountSelectQuery+" WHERE a.id = $1", pgUUID(id))
	if err != nil {
		return account.Account{}, err
	}
	if len(accounts) == 0 {
		return account.Account{}, account.ErrNotFound
	}
	return accounts[0], nil
}

func (r *PgAccountRepository) Create(ctx context.Context, entity account.Account) (account.Account, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return account.Account{}, err
	}
	var id pgtype.UUID
	err = tx.QueryRow(
		ctx,
		accountInsertQuery,
		entity.Name(),
		entity.Industry(),
		entity.Website(),
		entity.Phone(),
		entity.Tags(),
		pgUUID(entity.OwnerID()),
	).Scan(&id)
	if err != nil {
		return account.Account{}, gerrors.Wrap(err, "failed to create account")
	}
	return r.GetByID(ctx, uuidFromPg(id))
}

func (r *PgAccountRepository) Update(ctx context.Context, entity account.Account) (account.Account, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return account.Account{}, err
	}
	tag, err := tx.Exec(
		ctx,
		accountUpdateQuery,
		entity.Name(),
		entity.Industry(),
		entity.Website(),
		entity.Phone(),
		entity.Tags(),
		pgUUID(entity.OwnerID()),
		pgUUID(entity.ID()),
	)
	if err != nil {
		return account.Account{}, gerrors.Wrap(err, "failed to update account")
	}
	if tag.RowsAffected() == 0 {
		return account.Account{}, account.ErrNotFound
	}
	return r.GetByID(ctx, entity.ID())
}

func (r *PgAccountRepository) Delete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	tag, err := tx.Exec(ctx, accountDeleteQuery, uuidStrings(ids))
	if err != nil {
		return 0, gerrors.Wrap(err, "failed to delete accounts")
	}
	return tag.RowsAffected(), nil
}

func (r *PgAccountRepository) queryAccounts(ctx context.Context, query string, args ...interface{}) ([]account.Account, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, gerrors.Wrap(err, "failed to query accounts")
	}
	defer rows.Close()

	accounts := make([]account.Account, 0)
	for rows.Next() {
		entity, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, gerrors.Wrap(err, "failed to iterate accounts")
	}
	return accounts, nil
}

func scanAccount(rows pgx.Rows) (account.Account, error) {
	var row models.Account
	if err := rows.Scan(
		&row.ID,
		&row.Name,
		&row.Industry,
		&row.Website,
		&row.Phone,
		&row.Tags,
		&row.OwnerID,
		&row.OwnerName,
		&row.CreatedAt,
		&row.UpdatedAt,
	); err != nil {
		return account.Account{}, gerrors.Wrap(err, "failed to scan account")
	}
	return ToDomainAccount(row), nil
}
