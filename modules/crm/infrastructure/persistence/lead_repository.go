package persistence

import (
	"context"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/lead"
	"github.com/vantage-crm/vantage/modules/crm/infrastructure/persistence/models"
	"github.com/vantage-crm/vantage/pkg/composables"
)

const (
	leadSelectQuery = `
		SELECT l.id, l.first_name, l.last_name, l.email, l.phone, l.company, l.source, l.status,
			l.owner_id, COALESCE(u.display_name, ''), l.created_at, l.updated_at
		FROM crm_leads l
		LEFT JOIN crm_users u ON u.id = l.owner_id`

	leadInsertQuery = `
		INSERT INTO crm_leads (first_name, last_name, email, phone, company, source, status, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	leadUpdateQuery = `
		UPDATE crm_leads
		SET first_name = $1, last_name = $2, email = $3, phone = $4, company = $5,
			source = $6, status = $7, owner_id = $8, updated_at = now()
		WHERE id = $9`

	leadDeleteQuery = `DELETE FROM crm_leads WHERE id = ANY($1::uuid[])`
)

type PgLeadRepository struct{}

func NewLeadRepository() lead.Repository {
	return &PgLeadRepository{}
}

func (r *PgLeadRepository) GetAll(ctx context.Context) ([]lead.Lead, error) {
	return r.queryLeads(ctx, leadSelectQuery+" ORDER BY l.created_at DESC")
}

func (r *PgLeadRepository) GetByID(ctx context.Context, id uuid.UUID) (lead.Lead, error) {
	leads, err := r.queryLeads(ctx, leadSelectQuery+" WHERE l.id = $1", pgUUID(id))
	if err != nil {
		return lead.Lead{}, err
	}
	if len(leads) == 0 {
		return lead.Lead{}, lead.ErrNotFound
	}
	return leads[0], nil
}

func (r *PgLeadRepository) Create(ctx context.Context, entity lead.Lead) (lead.Lead, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return lead.Lead{}, err
	}
	var id pgtype.UUID
	err = tx.QueryRow(
		ctx,
		leadInsertQuery,
		entity.FirstName(),
		entity.LastName(),
		entity.Email(),
		entity.Phone(),
		entity.Company(),
		entity.Source(),
		string(entity.Status()),
		pgUUID(entity.OwnerID()),
	).Scan(&id)
	if err != nil {
		return lead.Lead{}, gerrors.Wrap(mapLeadError(err), "failed to create lead")
	}
	return r.GetByID(ctx, uuidFromPg(id))
}

func (r *PgLeadRepository) Update(ctx context.Context, entity lead.Lead) (lead.Lead, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return lead.Lead{}, err
	}
	tag, err := tx.Exec(
		ctx,
		leadUpdateQuery,
		entity.FirstName(),
		entity.LastName(),
		entity.Email(),
		entity.Phone(),
		entity.Company(),
		entity.Source(),
		string(entity.Status()),
		pgUUID(entity.OwnerID()),
		pgUUID(entity.ID()),
	)
	if err != nil {
		return lead.Lead{}, gerrors.Wrap(mapLeadError(err), "failed to update lead")
	}
	if tag.RowsAffected() == 0 {
		return lead.Lead{}, lead.ErrNotFound
	}
	return r.GetByID(ctx, entity.ID())
}

func (r *PgLeadRepository) Delete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	tag, err := tx.Exec(ctx, leadDeleteQuery, uuidStrings(ids))
	if err != nil {
		return 0, gerrors.Wrap(err, "failed to delete leads")
	}
	return tag.RowsAffected(), nil
}

func (r *PgLeadRepository) queryLeads(ctx context.Context, query string, args ...interface{}) ([]lead.Lead, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, gerrors.Wrap(err, "failed to query leads")
	}
	defer rows.Close()

	leads := make([]lead.Lead, 0)
	for rows.Next() {
		entity, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, gerrors.Wrap(err, "failed to iterate leads")
	}
	return leads, nil
}

func scanLead(rows pgx.Rows) (lead.Lead, error) {
	var row models.Lead
	if err := rows.Scan(
		&row.ID,
		&row.FirstName,
		&row.LastName,
		&row.Email,
		&row.Phone,
		&row.Company,
		&row.Source,
		&row.Status,
		&row.OwnerID,
		&row.OwnerName,
		&row.CreatedAt,
		&row.UpdatedAt,
	); err != nil {
		return lead.Lead{}, gerrors.Wrap(err, "failed to scan lead")
	}
	return ToDomainLead(row), nil
}

func mapLeadError(err error) error {
	var pgErr *pgconn.PgError
	if gerrors.As(err, &pgErr) && pgErr.Code == "23505" {
		return lead.ErrEmailTaken
	}
	return err
}
