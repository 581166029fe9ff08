package lead

import "github.com/google/uuid"

type CreatedEvent struct {
	Result Lead
}

type UpdatedEvent struct {
	Result Lead
}

type DeletedEvent struct {
	IDs []uuid.UUID
}
