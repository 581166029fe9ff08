package models

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID          pgtype.UUID
	DisplayName string
	Email       string
	CreatedAt   time.Time
}

type Lead struct {
	ID        pgtype.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string
	Source    string
	Status    string
	OwnerID   pgtype.UUID
	OwnerName string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Contact struct {
	ID          pgtype.UUID
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	JobTitle    string
	AccountName string
	OwnerID     pgtype.UUID
	OwnerName   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Account struct {
	ID        pgtype.UUID
	Name      string
	Industry  string
	Website   string
	Phone     string
	Tags      []string
	OwnerID   pgtype.UUID
	OwnerName string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Meeting struct {
	ID          pgtype.UUID
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	Status      string
	Location    string
	Notes       string
	AccountName string
	OwnerID     pgtype.UUID
	OwnerName   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Task struct {
	ID          pgtype.UUID
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     time.Time
	OwnerID     pgtype.UUID
	OwnerName   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
