package persistence

import (
	"context"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/task"
	"github.com/vantage-crm/vantage/modules/crm/infrastructure/persistence/models"
	"github.com/vantage-crm/vantage/pkg/composables"
)

const (
	taskSelectQuery = `
		SELECT t.id, t.title, t.description, t.status, t.priority, t.due_date,
			t.owner_id, COALESCE(u.display_name, ''), t.created_at, t.updated_at
		FROM crm_tasks t
		LEFT JOIN crm_users u ON u.id = t.owner_id`

	taskInsertQuery = `
		INSERT INTO crm_tasks (title, description, status, priority, due_date, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	taskUpdateQuery = `
		UPDATE crm_tasks
		SET title = $1, description = $2, status = $3, priority = $4, due_date = $5,
			owner_id = $6, updated_at = now()
		WHERE id = $7`

	taskDeleteQuery = `DELETE FROM crm_tasks WHERE id = ANY($1::uuid[])`
)

type PgTaskRepository struct{}

func NewTaskRepository() task.Repository {
	return &PgTaskRepository{}
}

func (r *PgTaskRepository) GetAll(ctx context.Context) ([]task.Task, error) {
	return r.queryTasks(ctx, taskSelectQuery+" ORDER BY t.due_date ASC")
}

func (r *PgTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (task.Task, error) {
	tasks, err := r.queryTasks(ctx, taskSelectQuery+" WHERE t.id = $1", pgUUID(id))
	if err != nil {
		return task.Task{}, err
	}
	if len(tasks) == 0 {
		return task.Task{}, task.ErrNotFound
	}
	return tasks[0], nil
}

func (r *PgTaskRepository) Create(ctx context.Context, entity task.Task) (task.Task, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return task.Task{}, err
	}
	var id pgtype.UUID
	err = tx.QueryRow(
		ctx,
		taskInsertQuery,
		entity.Title(),
		entity.Description(),
		string(entity.Status()),
		string(entity.Priority()),
		entity.DueDate(),
		pgUUID(entity.OwnerID()),
	).Scan(&id)
	if err != nil {
		return task.Task{}, gerrors.Wrap(err, "failed to create task")
	}
	return r.GetByID(ctx, uuidFromPg(id))
}

func (r *PgTaskRepository) Update(ctx context.Context, entity task.Task) (task.Task, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return task.Task{}, err
	}
	tag, err := tx.Exec(
		ctx,
		taskUpdateQuery,
		entity.Title(),
		entity.Description(),
		string(entity.Status()),
		string(entity.Priority()),
		entity.DueDate(),
		pgUUID(entity.OwnerID()),
		pgUUID(entity.ID()),
	)
	if err != nil {
		return task.Task{}, gerrors.Wrap(err, "failed to update task")
	}
	if tag.RowsAffected() == 0 {
		return task.Task{}, task.ErrNotFound
	}
	return r.GetByID(ctx, entity.ID())
}

func (r *PgTaskRepository) Delete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	tag, err := tx.Exec(ctx, taskDeleteQuery, uuidStrings(ids))
	if err != nil {
		return 0, gerrors.Wrap(err, "failed to delete tasks")
	}
	return tag.RowsAffected(), nil
}

func (r *PgTaskRepository) queryTasks(ctx context.Context, query string, args ...interface{}) ([]task.Task, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, gerrors.Wrap(err, "failed to query tasks")
	}
	defer rows.Close()

	tasks := make([]task.Task, 0)
	for rows.Next() {
		entity, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, gerrors.Wrap(err, "failed to iterate tasks")
	}
	return tasks, nil
}

func scanTask(rows pgx.Rows) (task.Task, error) {
	var row models.Task
	if err := rows.Scan(
		&row.ID,
		&row.Title,
		&row.Description,
		&row.Status,
		&row.Priority,
		&row.DueDate,
		&row.OwnerID,
		&row.OwnerName,
		&row.CreatedAt,
		&row.UpdatedAt,
	); err != nil {
		return task.Task{}, gerrors.Wrap(err, "failed to scan task")
	}
	return ToDomainTask(row), nil
}
