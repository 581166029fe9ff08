package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an owner of CRM records. Records denormalize the display name at
// query time, so this aggregate only backs the owner filter options and
// quick search.
type User struct {
	id          uuid.UUID
	displayName string
	email       string
	createdAt   time.Time
}

func New(displayName, email string) User {
	return User{
		displayName: strings.TrimSpace(displayName),
		email:       strings.TrimSpace(strings.ToLower(email)),
	}
}

func Hydrate(id uuid.UUID, displayName, email string, createdAt time.Time) User {
	return User{
		id:          id,
		displayName: strings.TrimSpace(displayName),
		email:       strings.TrimSpace(strings.ToLower(email)),
		createdAt:   createdAt,
	}
}

func (u User) ID() uuid.UUID        { return u.id }
func (u User) DisplayName() string  { return u.displayName }
func (u User) Email() string        { return u.email }
func (u User) CreatedAt() time.Time { return u.createdAt }
