package lead

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusQualified Status = "qualified"
	StatusConverted Status = "converted"
	StatusLost      Status = "lost"
)

var Statuses = []Status{StatusNew, StatusContacted, StatusQualified, StatusConverted, StatusLost}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusConverted, StatusLost:
		return true
	}
	return false
}

type Lead struct {
	id        uuid.UUID
	firstName string
	lastName  string
	email     string
	phone     string
	company   string
	source    string
	status    Status
	ownerID   uuid.UUID
	ownerName string
	createdAt time.Time
	updatedAt time.Time
}

func New(firstName, lastName, email string, ownerID uuid.UUID) Lead {
	return Lead{
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		email:     strings.TrimSpace(email),
		status:    StatusNew,
		ownerID:   ownerID,
	}
}

func Hydrate(
	id uuid.UUID,
	firstName, lastName, email, phone, company, source string,
	status Status,
	ownerID uuid.UUID,
	ownerName string,
	createdAt, updatedAt time.Time,
) Lead {
	return Lead{
		id:        id,
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		email:     strings.TrimSpace(email),
		phone:     phone,
		company:   company,
		source:    source,
		status:    status,
		ownerID:   ownerID,
		ownerName: ownerName,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (l Lead) ID() uuid.UUID        { return l.id }
func (l Lead) FirstName() string    { return l.firstName }
func (l Lead) LastName() string     { return l.lastName }
func (l Lead) Email() string        { return l.email }
func (l Lead) Phone() string        { return l.phone }
func (l Lead) Company() string      { return l.company }
func (l Lead) Source() string       { return l.source }
func (l Lead) Status() Status       { return l.status }
func (l Lead) OwnerID() uuid.UUID   { return l.ownerID }
func (l Lead) OwnerName() string    { return l.ownerName }
func (l Lead) CreatedAt() time.Time { return l.createdAt }
func (l Lead) UpdatedAt() time.Time { return l.updatedAt }
func (l Lead) IsZero() bool         { return l.id == uuid.Nil && l.email == "" }

func (l Lead) FullName() string {
	return strings.TrimSpace(l.firstName + " " + l.lastName)
}

func (l Lead) WithPhone(phone string) Lead {
	l.phone = phone
	return l
}

func (l Lead) WithCompany(company string) Lead {
	l.company = company
	return l
}

func (l Lead) WithSource(source string) Lead {
	l.source = source
	return l
}

func (l Lead) WithStatus(status Status) Lead {
	l.status = status
	return l
}
