package account

import "github.com/google/uuid"

type CreatedEvent struct {
	Result Account
}

type UpdatedEvent struct {
	Result Account
}

type DeletedEvent struct {
	IDs []uuid.UUID
}
