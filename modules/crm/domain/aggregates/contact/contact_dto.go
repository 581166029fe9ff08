package contact

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/vantage-crm/vantage/pkg/constants"
	"github.com/vantage-crm/vantage/pkg/serrors"
)

type CreateDTO struct {
	FirstName   string    `json:"first_name" validate:"required,max=100"`
	LastName    string    `json:"last_name" validate:"required,max=100"`
	Email       string    `json:"email" validate:"required,email"`
	Phone       string    `json:"phone" validate:"max=50"`
	JobTitle    string    `json:"job_title" validate:"max=100"`
	AccountName string    `json:"account_name" validate:"max=255"`
	OwnerID     uuid.UUID `json:"owner_id"`
}

func (d *CreateDTO) Normalize() {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Email = strings.TrimSpace(strings.ToLower(d.Email))
	d.Phone = strings.TrimSpace(d.Phone)
	d.JobTitle = strings.TrimSpace(d.JobTitle)
	d.AccountName = strings.TrimSpace(d.AccountName)
}

func (d *CreateDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Normalize()
	if errs := constants.Validate.Struct(d); errs != nil {
		return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors)), false
	}
	return serrors.ValidationErrors{}, true
}

func (d *CreateDTO) ToEntity() Contact {
	return New(d.FirstName, d.LastName, d.Email, d.OwnerID).
		WithPhone(d.Phone).
		WithJobTitle(d.JobTitle).
		WithAccountName(d.AccountName)
}

type UpdateDTO struct {
	FirstName   string    `json:"first_name" validate:"required,max=100"`
	LastName    string    `json:"last_name" validate:"required,max=100"`
	Email       string    `json:"email" validate:"required,email"`
	Phone       string    `json:"phone" validate:"max=50"`
	JobTitle    string    `json:"job_title" validate:"max=100"`
	AccountName string    `json:"account_name" validate:"max=255"`
	OwnerID     uuid.UUID `json:"owner_id"`
}

func (d *UpdateDTO) Normalize() {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Email = strings.TrimSpace(strings.ToLower(d.Email))
	d.Phone = strings.TrimSpace(d.Phone)
	d.JobTitle = strings.TrimSpace(d.JobTitle)
	d.AccountName = strings.TrimSpace(d.AccountName)
}

func (d *UpdateDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Normalize()
	if errs := constants.Validate.Struct(d); errs != nil {
		return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors)), false
	}
	return serrors.ValidationErrors{}, true
}

func (d *UpdateDTO) ToEntity(id uuid.UUID, createdAt time.Time) Contact {
	return Hydrate(
		id,
		d.FirstName,
		d.LastName,
		d.Email,
		d.Phone,
		d.JobTitle,
		d.AccountName,
		d.OwnerID,
		"",
		createdAt,
		time.Time{},
	)
}
