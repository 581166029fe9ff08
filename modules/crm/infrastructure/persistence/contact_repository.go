package persistence

import (
	"context"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/contact"
	"github.com/vantage-crm/vantage/modules/crm/infrastructure/persistence/models"
	"github.com/vantage-crm/vantage/pkg/composables"
)

const (
	contactSelectQuery = `
		SELECT c.id, c.first_name, c.last_name, c.email, c.phone, c.job_title, c.account_name,
			c.owner_id, COALESCE(u.display_name, ''), c.created_at, c.updated_at
		FROM crm_contacts c
		LEFT JOIN crm_users u ON u.id = c.owner_id`

	contactInsertQuery = `
		INSERT INTO crm_contacts (first_name, last_name, email, phone, job_title, account_name, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	contactUpdateQuery = `
		UPDATE crm_contacts
		SET first_name = $1, last_name = $2, email = $3, phone = $4, job_title = $5,
			account_name = $6, owner_id = $7, updated_at = now()
		WHERE id = $8`

	contactDeleteQuery = `DELETE FROM crm_contacts WHERE id = ANY($1::uuid[])`
)

type PgContactRepository struct{}

func NewContactRepository() contact.Repository {
	return &PgContactRepository{}
}

func (r *PgContactRepository) GetAll(ctx context.Context) ([]contact.Contact, error) {
	return r.queryContacts(ctx, contactSelectQuery+" ORDER BY c.created_at DESC")
}

func (r *PgContactRepository) GetByID(ctx context.Context, id uuid.UUID) (contact.Contact, error) {
	contacts, err := r.queryContacts(ctx, contactSelectQuery+" WHERE c.id = $1", pgUUID(id))
	if err != nil {
		return contact.Contact{}, err
	}
	if len(contacts) == 0 {
		return contact.Contact{}, contact.ErrNotFound
	}
	return contacts[0], nil
}

func (r *PgContactRepository) Create(ctx context.Context, entity contact.Contact) (contact.Contact, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return contact.Contact{}, err
	}
	var id pgtype.UUID
	err = tx.QueryRow(
		ctx,
		contactInsertQuery,
		entity.FirstName(),
		entity.LastName(),
		entity.Email(),
		entity.Phone(),
		entity.JobTitle(),
		entity.AccountName(),
		pgUUID(entity.OwnerID()),
	).Scan(&id)
	if err != nil {
		return contact.Contact{}, gerrors.Wrap(err, "failed to create contact")
	}
	return r.GetByID(ctx, uuidFromPg(id))
}

func (r *PgContactRepository) Update(ctx context.Context, entity contact.Contact) (contact.Contact, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return contact.Contact{}, err
	}
	tag, err := tx.Exec(
		ctx,
		contactUpdateQuery,
		entity.FirstName(),
		entity.LastName(),
		entity.Email(),
		entity.Phone(),
		entity.JobTitle(),
		entity.AccountName(),
		pgUUID(entity.OwnerID()),
		pgUUID(entity.ID()),
	)
	if err != nil {
		return contact.Contact{}, gerrors.Wrap(err, "failed to update contact")
	}
	if tag.RowsAffected() == 0 {
		return contact.Contact{}, contact.ErrNotFound
	}
	return r.GetByID(ctx, entity.ID())
}

func (r *PgContactRepository) Delete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	tag, err := tx.Exec(ctx, contactDeleteQuery, uuidStrings(ids))
	if err != nil {
		return 0, gerrors.Wrap(err, "failed to delete contacts")
	}
	return tag.RowsAffected(), nil
}

func (r *PgContactRepository) queryContacts(ctx context.Context, query string, args ...interface{}) ([]contact.Contact, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, gerrors.Wrap(err, "failed to query contacts")
	}
	defer rows.Close()

	contacts := make([]contact.Contact, 0)
	for rows.Next() {
		entity, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, gerrors.Wrap(err, "failed to iterate contacts")
	}
	return contacts, nil
}

func scanContact(rows pgx.Rows) (contact.Contact, error) {
	var row models.Contact
	if err := rows.Scan(
		&row.ID,
		&row.FirstName,
		&row.LastName,
		&row.Email,
		&row.Phone,
		&row.JobTitle,
		&row.AccountName,
		&row.OwnerID,
		&row.OwnerName,
		&row.CreatedAt,
		&row.UpdatedAt,
	); err != nil {
		return contact.Contact{}, gerrors.Wrap(err, "failed to scan contact")
	}
	return ToDomainContact(row), nil
}
