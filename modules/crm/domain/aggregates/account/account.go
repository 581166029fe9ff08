package account

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Account struct {
	id        uuid.UUID
	name      string
	industry  string
	website   string
	phone     string
	tags      []string
	ownerID   uuid.UUID
	ownerName string
	createdAt time.Time
	updatedAt time.Time
}

func New(name string, ownerID uuid.UUID) Account {
	return Account{
		name:    strings.TrimSpace(name),
		ownerID: ownerID,
	}
}

func Hydrate(
	id uuid.UUID,
	name, industry, website, phone string,
	tags []string,
	ownerID uuid.UUID,
	ownerName string,
	createdAt, updatedAt time.Time,
) Account {
	return Account{
		id:        id,
		name:      strings.TrimSpace(name),
		industry:  industry,
		website:   website,
		phone:     phone,
		tags:      normalizeTags(tags),
		ownerID:   ownerID,
		ownerName: ownerName,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a Account) ID() uuid.UUID        { return a.id }
func (a Account) Name() string         { return a.name }
func (a Account) Industry() string     { return a.industry }
func (a Account) Website() string      { return a.website }
func (a Account) Phone() string        { return a.phone }
func (a Account) OwnerID() uuid.UUID   { return a.ownerID }
func (a Account) OwnerName() string    { return a.ownerName }
func (a Account) CreatedAt() time.Time { return a.createdAt }
func (a Account) UpdatedAt() time.Time { return a.updatedAt }
func (a Account) IsZero() bool         { return a.id == uuid.Nil && a.name == "" }

// Tags returns a copy; the tag set is immutable from the outside.
func (a Account) Tags() []string {
	return slices.Clone(a.tags)
}

// HasTag reports whether the account carries the given free-text label.
func (a Account) HasTag(tag string) bool {
	return slices.Contains(a.tags, strings.TrimSpace(tag))
}

func (a Account) WithIndustry(industry string) Account {
	a.industry = industry
	return a
}

func (a Account) WithWebsite(website string) Account {
	a.website = website
	return a
}

func (a Account) WithPhone(phone string) Account {
	a.phone = phone
	return a
}

func (a Account) WithTags(tags []string) Account {
	a.tags = normalizeTags(tags)
	return a
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(out, tag) {
			continue
		}
		out = append(out, tag)
	}
	return out
}
