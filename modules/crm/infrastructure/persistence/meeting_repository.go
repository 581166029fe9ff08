package persistence

import (
	"context"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/meeting"
	"github.com/vantage-crm/vantage/modules/crm/infrastructure/persistence/models"
	"github.com/vantage-crm/vantage/pkg/composables"
)

const (
	meetingSelectQuery = `
		SELECT m.id, m.title, m.start_time, m.end_time, m.status, m.location, m.notes, m.account_name,
			m.owner_id, COALESCE(u.display_name, ''), m.created_at, m.updated_at
		FROM crm_meetings m
		LEFT JOIN crm_users u ON u.id = m.owner_id`

	meetingInsertQuery = `
		INSERT INTO crm_meetings (title, start_time, end_time, status, location, notes, account_name, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	meetingUpdateQuery = `
		UPDATE crm_meetings
		SET title = $1, start_time = $2, end_time = $3, location = $4, notes = $5,
			account_name = $6, owner_id = $7, updated_at = now()
		WHERE id = $8`

	meetingSetStatusQuery = `UPDATE crm_meetings SET status = $1, updated_at = now() WHERE id = $2`

	meetingDeleteQuery = `DELETE FROM crm_meetings WHERE id = ANY($1::uuid[])`
)

type PgMeetingRepository struct{}

func NewMeetingRepository() meeting.Repository {
	return &PgMeetingRepository{}
}

func (r *PgMeetingRepository) GetAll(ctx context.Context) ([]meeting.Meeting, error) {
	return r.queryMeetings(ctx, meetingSelectQuery+" ORDER BY m.start_time DESC")
}

func (r *PgMeetingRepository) GetByID(ctx context.Context, id uuid.UUID) (meeting.Meeting, error) {
	meetings, err := r.queryMeetings(ctx, meetingSelectQuery+" WHERE m.id = $1", pgUUID(id))
	if err != nil {
		return meeting.Meeting{}, err
	}
	if len(meetings) == 0 {
		return meeting.Meeting{}, meeting.ErrNotFound
	}
	return meetings[0], nil
}

func (r *PgMeetingRepository) Create(ctx context.Context, entity meeting.Meeting) (meeting.Meeting, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return meeting.Meeting{}, err
	}
	var id pgtype.UUID
	err = tx.QueryRow(
		ctx,
		meetingInsertQuery,
		entity.Title(),
		entity.StartTime(),
		entity.EndTime(),
		string(entity.StoredStatus()),
		entity.Location(),
		entity.Notes(),
		entity.AccountName(),
		pgUUID(entity.OwnerID()),
	).Scan(&id)
	if err != nil {
		return meeting.Meeting{}, gerrors.Wrap(err, "failed to create meeting")
	}
	return r.GetByID(ctx, uuidFromPg(id))
}

// Update deliberately leaves the stored status untouched; status changes go
// through SetStatus so a reschedule cannot silently resurrect a cancelled
// meeting.
func (r *PgMeetingRepository) Update(ctx context.Context, entity meeting.Meeting) (meeting.Meeting, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return meeting.Meeting{}, err
	}
	tag, err := tx.Exec(
		ctx,
		meetingUpdateQuery,
		entity.Title(),
		entity.StartTime(),
		entity.EndTime(),
		entity.Location(),
		entity.Notes(),
		entity.AccountName(),
		pgUUID(entity.OwnerID()),
		pgUUID(entity.ID()),
	)
	if err != nil {
		return meeting.Meeting{}, gerrors.Wrap(err, "failed to update meeting")
	}
	if tag.RowsAffected() == 0 {
		return meeting.Meeting{}, meeting.ErrNotFound
	}
	return r.GetByID(ctx, entity.ID())
}

func (r *PgMeetingRepository) SetStatus(ctx context.Context, id uuid.UUID, status meeting.Status) (meeting.Meeting, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return meeting.Meeting{}, err
	}
	tag, err := tx.Exec(ctx, meetingSetStatusQuery, string(status), pgUUID(id))
	if err != nil {
		return meeting.Meeting{}, gerrors.Wrap(err, "failed to set meeting status")
	}
	if tag.RowsAffected() == 0 {
		return meeting.Meeting{}, meeting.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *PgMeetingRepository) Delete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	tag, err := tx.Exec(ctx, meetingDeleteQuery, uuidStrings(ids))
	if err != nil {
		return 0, gerrors.Wrap(err, "failed to delete meetings")
	}
	return tag.RowsAffected(), nil
}

func (r *PgMeetingRepository) queryMeetings(ctx context.Context, query string, args ...interface{}) ([]meeting.Meeting, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, gerrors.Wrap(err, "failed to query meetings")
	}
	defer rows.Close()

	meetings := make([]meeting.Meeting, 0)
	for rows.Next() {
		entity, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, gerrors.Wrap(err, "failed to iterate meetings")
	}
	return meetings, nil
}

func scanMeeting(rows pgx.Rows) (meeting.Meeting, error) {
	var row models.Meeting
	if err := rows.Scan(
		&row.ID,
		&row.Title,
		&row.StartTime,
		&row.EndTime,
		&row.Status,
		&row.Location,
		&row.Notes,
		&row.AccountName,
		&row.OwnerID,
		&row.OwnerName,
		&row.CreatedAt,
		&row.UpdatedAt,
	); err != nil {
		return meeting.Meeting{}, gerrors.Wrap(err, "failed to scan meeting")
	}
	return ToDomainMeeting(row), nil
}
