package task

import "github.com/google/uuid"

type CreatedEvent struct {
	Result Task
}

type UpdatedEvent struct {
	Result Task
}

type DeletedEvent struct {
	IDs []uuid.UUID
}
