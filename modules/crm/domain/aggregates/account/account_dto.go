package account

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/vantage-crm/vantage/pkg/constants"
	"github.com/vantage-crm/vantage/pkg/serrors"
)

type CreateDTO struct {
	Name     string    `json:"name" validate:"required,max=255"`
	Industry string    `json:"industry" validate:"max=100"`
	Website  string    `json:"website" validate:"max=255"`
	Phone    string    `json:"phone" validate:"max=50"`
	Tags     []string  `json:"tags"`
	OwnerID  uuid.UUID `json:"owner_id"`
}

func (d *CreateDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Industry = strings.TrimSpace(d.Industry)
	d.Website = strings.TrimSpace(d.Website)
	d.Phone = strings.TrimSpace(d.Phone)
}

func (d *CreateDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Normalize()
	if errs := constants.Validate.Struct(d); errs != nil {
		return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors)), false
	}
	return serrors.ValidationErrors{}, true
}

func (d *CreateDTO) ToEntity() Account {
	return New(d.Name, d.OwnerID).
		WithIndustry(d.Industry).
		WithWebsite(d.Website).
		WithPhone(d.Phone).
		WithTags(d.Tags)
}

type UpdateDTO struct {
	Name     string    `json:"name" validate:"required,max=255"`
	Industry string    `json:"industry" validate:"max=100"`
	Website  string    `json:"website" validate:"max=255"`
	Phone    string    `json:"phone" validate:"max=50"`
	Tags     []string  `json:"tags"`
	OwnerID  uuid.UUID `json:"owner_id"`
}

func (d *UpdateDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Industry = strings.TrimSpace(d.Industry)
	d.Website = strings.TrimSpace(d.Website)
	d.Phone = strings.TrimSpace(d.Phone)
}

func (d *UpdateDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Normalize()
	if errs := constants.Validate.Struct(d); errs != nil {
		return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors)), false
	}
	return serrors.ValidationErrors{}, true
}

func (d *UpdateDTO) ToEntity(id uuid.UUID, createdAt time.Time) Account {
	return Hydrate(
		id,
		d.Name,
		d.Industry,
		d.Website,
		d.Phone,
		d.Tags,
		d.OwnerID,
		"",
		createdAt,
		time.Time{},
	)
}
