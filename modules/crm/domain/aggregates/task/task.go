package task

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities for the priority sort key.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	default:
		return 0
	}
}

type Task struct {
	id          uuid.UUID
	title       string
	description string
	status      Status
	priority    Priority
	dueDate     time.Time
	ownerID     uuid.UUID
	ownerName   string
	createdAt   time.Time
	updatedAt   time.Time
}

func New(title string, dueDate time.Time, ownerID uuid.UUID) Task {
	return Task{
		title:    strings.TrimSpace(title),
		status:   StatusTodo,
		priority: PriorityMedium,
		dueDate:  dueDate,
		ownerID:  ownerID,
	}
}

func Hydrate(
	id uuid.UUID,
	title, description string,
	status Status,
	priority Priority,
	dueDate time.Time,
	ownerID uuid.UUID,
	ownerName string,
	createdAt, updatedAt time.Time,
) Task {
	return Task{
		id:          id,
		title:       strings.TrimSpace(title),
		description: description,
		status:      status,
		priority:    priority,
		dueDate:     dueDate,
		ownerID:     ownerID,
		ownerName:   ownerName,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (t Task) ID() uuid.UUID        { return t.id }
func (t Task) Title() string        { return t.title }
func (t Task) Description() string  { return t.description }
func (t Task) Status() Status       { return t.status }
func (t Task) Priority() Priority   { return t.priority }
func (t Task) DueDate() time.Time   { return t.dueDate }
func (t Task) OwnerID() uuid.UUID   { return t.ownerID }
func (t Task) OwnerName() string    { return t.ownerName }
func (t Task) CreatedAt() time.Time { return t.createdAt }
func (t Task) UpdatedAt() time.Time { return t.updatedAt }
func (t Task) IsZero() bool         { return t.id == uuid.Nil && t.title == "" }

func (t Task) WithDescription(description string) Task {
	t.description = description
	return t
}

func (t Task) WithStatus(status Status) Task {
	t.status = status
	return t
}

func (t Task) WithPriority(priority Priority) Task {
	t.priority = priority
	return t
}
