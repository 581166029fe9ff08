package lead

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/vantage-crm/vantage/pkg/constants"
	"github.com/vantage-crm/vantage/pkg/serrors"
)

type CreateDTO struct {
	FirstName string    `json:"first_name" validate:"required,max=100"`
	LastName  string    `json:"last_name" validate:"required,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone" validate:"max=50"`
	Company   string    `json:"company" validate:"max=255"`
	Source    string    `json:"source" validate:"max=100"`
	OwnerID   uuid.UUID `json:"owner_id"`
}

func (d *CreateDTO) Normalize() {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Email = strings.TrimSpace(strings.ToLower(d.Email))
	d.Phone = strings.TrimSpace(d.Phone)
	d.Company = strings.TrimSpace(d.Company)
	d.Source = strings.TrimSpace(d.Source)
}

func (d *CreateDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Normalize()
	if errs := constants.Validate.Struct(d); errs != nil {
		return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors)), false
	}
	return serrors.ValidationErrors{}, true
}

func (d *CreateDTO) ToEntity() Lead {
	return New(d.FirstName, d.LastName, d.Email, d.OwnerID).
		WithPhone(d.Phone).
		WithCompany(d.Company).
		WithSource(d.Source)
}

type UpdateDTO struct {
	FirstName string    `json:"first_name" validate:"required,max=100"`
	LastName  string    `json:"last_name" validate:"required,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone" validate:"max=50"`
	Company   string    `json:"company" validate:"max=255"`
	Source    string    `json:"source" validate:"max=100"`
	Status    string    `json:"status" validate:"required,oneof=new contacted qualified converted lost"`
	OwnerID   uuid.UUID `json:"owner_id"`
}

func (d *UpdateDTO) Normalize() {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Email = strings.TrimSpace(strings.ToLower(d.Email))
	d.Phone = strings.TrimSpace(d.Phone)
	d.Company = strings.TrimSpace(d.Company)
	d.Source = strings.TrimSpace(d.Source)
	d.Status = strings.TrimSpace(strings.ToLower(d.Status))
}

func (d *UpdateDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Normalize()
	if errs := constants.Validate.Struct(d); errs != nil {
		return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors)), false
	}
	return serrors.ValidationErrors{}, true
}

func (d *UpdateDTO) ToEntity(id uuid.UUID, createdAt time.Time) Lead {
	return Hydrate(
		id,
		d.FirstName,
		d.LastName,
		d.Email,
		d.Phone,
		d.Company,
		d.Source,
		Status(d.Status),
		d.OwnerID,
		"",
		createdAt,
		time.Time{},
	)
}
