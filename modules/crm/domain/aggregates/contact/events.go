package contact

import "github.com/google/uuid"

type CreatedEvent struct {
	Result Contact
}

type UpdatedEvent struct {
	Result Contact
}

type DeletedEvent struct {
	IDs []uuid.UUID
}
