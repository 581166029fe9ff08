package meeting

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/vantage-crm/vantage/pkg/constants"
	"github.com/vantage-crm/vantage/pkg/serrors"
)

type CreateDTO struct {
	Title       string    `json:"title" validate:"required,max=255"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	Location    string    `json:"location" validate:"max=255"`
	Notes       string    `json:"notes"`
	OwnerID     uuid.UUID `json:"owner_id"`
	AccountName string    `json:"account_name" validate:"max=255"`
}

func (d *CreateDTO) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Location = strings.TrimSpace(d.Location)
	d.AccountName = strings.TrimSpace(d.AccountName)
}

func (d *CreateDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Normalize()

	errs := constants.Validate.Struct(d)
	out := serrors.ValidationErrors{}
	if errs != nil {
		out = serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors))
	}
	if !d.StartTime.IsZero() && !d.EndTime.IsZero() && d.EndTime.Before(d.StartTime) {
		out["EndTime"] = "EndTime must not be before StartTime"
	}
	return out, len(out) == 0
}

func (d *CreateDTO) ToEntity() Meeting {
	entity := New(d.Title, d.StartTime, d.EndTime, d.OwnerID).
		WithLocation(d.Location).
		WithNotes(d.Notes).
		WithAccountName(d.AccountName)
	return entity
}

type UpdateDTO struct {
	Title       string    `json:"title" validate:"required,max=255"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	Status      string    `json:"status" validate:"omitempty,oneof=scheduled ongoing completed cancelled"`
	Location    string    `json:"location" validate:"max=255"`
	Notes       string    `json:"notes"`
	OwnerID     uuid.UUID `json:"owner_id"`
	AccountName string    `json:"account_name" validate:"max=255"`
}

func (d *UpdateDTO) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Status = strings.TrimSpace(strings.ToLower(d.Status))
	d.Location = strings.TrimSpace(d.Location)
	d.AccountName = strings.TrimSpace(d.AccountName)
}

func (d *UpdateDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Normalize()

	errs := constants.Validate.Struct(d)
	out := serrors.ValidationErrors{}
	if errs != nil {
		out = serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors))
	}
	if !d.StartTime.IsZero() && !d.EndTime.IsZero() && d.EndTime.Before(d.StartTime) {
		out["EndTime"] = "EndTime must not be before StartTime"
	}
	return out, len(out) == 0
}

// ToEntity keeps the given stored status; a status change in the payload is
// applied separately through the repository's SetStatus.
func (d *UpdateDTO) ToEntity(id uuid.UUID, storedStatus Status, createdAt time.Time) Meeting {
	return Hydrate(
		id,
		d.Title,
		d.StartTime,
		d.EndTime,
		storedStatus,
		d.Location,
		d.Notes,
		d.OwnerID,
		"",
		d.AccountName,
		createdAt,
		time.Time{},
	)
}
