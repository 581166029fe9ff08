package task

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
	Description string    `json:"description"`
	Priority    string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	OwnerID     uuid.UUID `json:"owner_id"`
}

func (d *CreateDTO) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Priority = strings.TrimSpace(strings.ToLower(d.Priority))
}

func (d *CreateDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Normalize()
	if errs := constants.Validate.Struct(d); errs != nil {
		return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors)), false
	}
	return serrors.ValidationErrors{}, true
}

func (d *CreateDTO) ToEntity() Task {
	entity := New(d.Title, d.DueDate, d.OwnerID).WithDescription(d.Description)
	if d.Priority != "" {
		entity = entity.WithPriority(Priority(d.Priority))
	}
	return entity
}

type UpdateDTO struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Description string    `json:"description"`
	Status      string    `json:"status" validate:"required,oneof=todo in_progress done"`
	Priority    string    `json:"priority" validate:"required,oneof=low medium high"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	OwnerID     uuid.UUID `json:"owner_id"`
}

func (d *UpdateDTO) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Status = strings.TrimSpace(strings.ToLower(d.Status))
	d.Priority = strings.TrimSpace(strings.ToLower(d.Priority))
}

func (d *UpdateDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Normalize()
	if errs := constants.Validate.Struct(d); errs != nil {
		return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors)), false
	}
	return serrors.ValidationErrors{}, true
}

func (d *UpdateDTO) ToEntity(id uuid.UUID, createdAt time.Time) Task {
	return Hydrate(
		id,
		d.Title,
		d.Description,
		Status(d.Status),
		Priority(d.Priority),
		d.DueDate,
		d.OwnerID,
		"",
		createdAt,
		time.Time{},
	)
}
