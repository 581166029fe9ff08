package meeting

import "github.com/google/uuid"

type CreatedEvent struct {
	Result Meeting
}

type UpdatedEvent struct {
	Result Meeting
}

type CancelledEvent struct {
	Result Meeting
}

type DeletedEvent struct {
	IDs []uuid.UUID
}
