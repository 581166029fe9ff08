package contact

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	id          uuid.UUID
	firstName   string
	lastName    string
	email       string
	phone       string
	jobTitle    string
	accountName string
	ownerID     uuid.UUID
	ownerName   string
	createdAt   time.Time
	updatedAt   time.Time
}

func New(firstName, lastName, email string, ownerID uuid.UUID) Contact {
	return Contact{
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		email:     strings.TrimSpace(email),
		ownerID:   ownerID,
	}
}

func Hydrate(
	id uuid.UUID,
	firstName, lastName, email, phone, jobTitle, accountName string,
	ownerID uuid.UUID,
	ownerName string,
	createdAt, updatedAt time.Time,
) Contact {
	return Contact{
		id:          id,
		firstName:   strings.TrimSpace(firstName),
		lastName:    strings.TrimSpace(lastName),
		email:       strings.TrimSpace(email),
		phone:       phone,
		jobTitle:    jobTitle,
		accountName: accountName,
		ownerID:     ownerID,
		ownerName:   ownerName,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c Contact) ID() uuid.UUID        { return c.id }
func (c Contact) FirstName() string    { return c.firstName }
func (c Contact) LastName() string     { return c.lastName }
func (c Contact) Email() string        { return c.email }
func (c Contact) Phone() string        { return c.phone }
func (c Contact) JobTitle() string     { return c.jobTitle }
func (c Contact) AccountName() string  { return c.accountName }
func (c Contact) OwnerID() uuid.UUID   { return c.ownerID }
func (c Contact) OwnerName() string    { return c.ownerName }
func (c Contact) CreatedAt() time.Time { return c.createdAt }
func (c Contact) UpdatedAt() time.Time { return c.updatedAt }
func (c Contact) IsZero() bool         { return c.id == uuid.Nil && c.email == "" }

func (c Contact) FullName() string {
	return strings.TrimSpace(c.firstName + " " + c.lastName)
}

func (c Contact) WithPhone(phone string) Contact {
	c.phone = phone
	return c
}

func (c Contact) WithJobTitle(jobTitle string) Contact {
	c.jobTitle = jobTitle
	return c
}

func (c Contact) WithAccountName(accountName string) Contact {
	c.accountName = accountName
	return c
}
