package mappers

import (
	"time"

	"github.com/google/uuid"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/account"
	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/contact"
	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/lead"
	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/meeting"
	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/task"
	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/user"
	"github.com/vantage-crm/vantage/modules/crm/presentation/viewmodels"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateTime)
}

func formatOwnerID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

func LeadToViewModel(entity lead.Lead) *viewmodels.Lead {
	return &viewmodels.Lead{
		ID:        entity.ID().String(),
		FirstName: entity.FirstName(),
		LastName:  entity.LastName(),
		FullName:  entity.FullName(),
		Email:     entity.Email(),
		Phone:     entity.Phone(),
		Company:   entity.Company(),
		Source:    entity.Source(),
		Status:    string(entity.Status()),
		OwnerID:   formatOwnerID(entity.OwnerID()),
		OwnerName: entity.OwnerName(),
		CreatedAt: formatTime(entity.CreatedAt()),
		UpdatedAt: formatTime(entity.UpdatedAt()),
	}
}

func ContactToViewModel(entity contact.Contact) *viewmodels.Contact {
	return &viewmodels.Contact{
		ID:          entity.ID().String(),
		FirstName:   entity.FirstName(),
		LastName:    entity.LastName(),
		FullName:    entity.FullName(),
		Email:       entity.Email(),
		Phone:       entity.Phone(),
		JobTitle:    entity.JobTitle(),
		AccountName: entity.AccountName(),
		OwnerID:     formatOwnerID(entity.OwnerID()),
		OwnerName:   entity.OwnerName(),
		CreatedAt:   formatTime(entity.CreatedAt()),
		UpdatedAt:   formatTime(entity.UpdatedAt()),
	}
}

func AccountToViewModel(entity account.Account) *viewmodels.Account {
	return &viewmodels.Account{
		ID:        entity.ID().String(),
		Name:      entity.Name(),
		Industry:  entity.Industry(),
		Website:   entity.Website(),
		Phone:     entity.Phone(),
		Tags:      entity.Tags(),
		OwnerID:   formatOwnerID(entity.OwnerID()),
		OwnerName: entity.OwnerName(),
		CreatedAt: formatTime(entity.CreatedAt()),
		UpdatedAt: formatTime(entity.UpdatedAt()),
	}
}

// MeetingToViewModel resolves the displayed status at the given time; the
// caller passes the service clock's now.
func MeetingToViewModel(entity meeting.Meeting, now time.Time) *viewmodels.Meeting {
	return &viewmodels.Meeting{
		ID:           entity.ID().String(),
		Title:        entity.Title(),
		StartTime:    formatTime(entity.StartTime()),
		EndTime:      formatTime(entity.EndTime()),
		Date:         entity.StartTime().Format(time.DateOnly),
		Time:         entity.StartTime().Format("15:04"),
		Status:       string(entity.EffectiveStatusAt(now)),
		StoredStatus: string(entity.StoredStatus()),
		Location:     entity.Location(),
		Notes:        entity.Notes(),
		AccountName:  entity.AccountName(),
		OwnerID:      formatOwnerID(entity.OwnerID()),
		OwnerName:    entity.OwnerName(),
		CreatedAt:    formatTime(entity.CreatedAt()),
		UpdatedAt:    formatTime(entity.UpdatedAt()),
	}
}

func TaskToViewModel(entity task.Task) *viewmodels.Task {
	return &viewmodels.Task{
		ID:          entity.ID().String(),
		Title:       entity.Title(),
		Description: entity.Description(),
		Status:      string(entity.Status()),
		Priority:    string(entity.Priority()),
		DueDate:     entity.DueDate().Format(time.DateOnly),
		OwnerID:     formatOwnerID(entity.OwnerID()),
		OwnerName:   entity.OwnerName(),
		CreatedAt:   formatTime(entity.CreatedAt()),
		UpdatedAt:   formatTime(entity.UpdatedAt()),
	}
}

func UserToViewModel(entity user.User) *viewmodels.User {
	return &viewmodels.User{
		ID:          entity.ID().String(),
		DisplayName: entity.DisplayName(),
		Email:       entity.Email(),
	}
}
