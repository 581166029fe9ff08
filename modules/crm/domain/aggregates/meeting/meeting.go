package meeting

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Meeting struct {
	id           uuid.UUID
	title        string
	startTime    time.Time
	endTime      time.Time
	storedStatus Status
	location     string
	notes        string
	ownerID      uuid.UUID
	ownerName    string
	accountName  string
	createdAt    time.Time
	updatedAt    time.Time
}

// New creates a meeting in the scheduled stored state. startTime <= endTime
// is assumed valid on input; the DTO layer enforces it at the API boundary.
func New(title string, startTime, endTime time.Time, ownerID uuid.UUID) Meeting {
	return Meeting{
		title:        strings.TrimSpace(title),
		startTime:    startTime,
		endTime:      endTime,
		storedStatus: StatusScheduled,
		ownerID:      ownerID,
	}
}

func Hydrate(
	id uuid.UUID,
	title string,
	startTime, endTime time.Time,
	storedStatus Status,
	location string,
	notes string,
	ownerID uuid.UUID,
	ownerName string,
	accountName string,
	createdAt, updatedAt time.Time,
) Meeting {
	return Meeting{
		id:           id,
		title:        strings.TrimSpace(title),
		startTime:    startTime,
		endTime:      endTime,
		storedStatus: storedStatus,
		location:     location,
		notes:        notes,
		ownerID:      ownerID,
		ownerName:    ownerName,
		accountName:  accountName,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (m Meeting) ID() uuid.UUID          { return m.id }
func (m Meeting) Title() string          { return m.title }
func (m Meeting) StartTime() time.Time   { return m.startTime }
func (m Meeting) EndTime() time.Time     { return m.endTime }
func (m Meeting) StoredStatus() Status   { return m.storedStatus }
func (m Meeting) Location() string       { return m.location }
func (m Meeting) Notes() string          { return m.notes }
func (m Meeting) OwnerID() uuid.UUID     { return m.ownerID }
func (m Meeting) OwnerName() string      { return m.ownerName }
func (m Meeting) AccountName() string    { return m.accountName }
func (m Meeting) CreatedAt() time.Time   { return m.createdAt }
func (m Meeting) UpdatedAt() time.Time   { return m.updatedAt }
func (m Meeting) IsZero() bool           { return m.id == uuid.Nil && m.title == "" }

func (m Meeting) WithLocation(location string) Meeting {
	m.location = location
	return m
}

func (m Meeting) WithNotes(notes string) Meeting {
	m.notes = notes
	return m
}

func (m Meeting) WithAccountName(name string) Meeting {
	m.accountName = name
	return m
}

// EffectiveStatusAt derives the status shown to the user. It never mutates
// the stored status.
func (m Meeting) EffectiveStatusAt(now time.Time) Status {
	return EffectiveStatus(m.storedStatus, m.startTime, m.endTime, now)
}
