package persistence

import (
	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/account"
	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/contact"
	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/lead"
	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/meeting"
	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/task"
	"github.com/vantage-crm/vantage/modules/crm/infrastructure/persistence/models"
)

func ToDomainLead(row models.Lead) lead.Lead {
	return lead.Hydrate(
		uuidFromPg(row.ID),
		row.FirstName,
		row.LastName,
		row.Email,
		row.Phone,
		row.Company,
		row.Source,
		lead.Status(row.Status),
		uuidFromPg(row.OwnerID),
		row.OwnerName,
		row.CreatedAt,
		row.UpdatedAt,
	)
}

func ToDomainContact(row models.Contact) contact.Contact {
	return contact.Hydrate(
		uuidFromPg(row.ID),
		row.FirstName,
		row.LastName,
		row.Email,
		row.Phone,
		row.JobTitle,
		row.AccountName,
		uuidFromPg(row.OwnerID),
		row.OwnerName,
		row.CreatedAt,
		row.UpdatedAt,
	)
}

func ToDomainAccount(row models.Account) account.Account {
	return account.Hydrate(
		uuidFromPg(row.ID),
		row.Name,
		row.Industry,
		row.Website,
		row.Phone,
		row.Tags,
		uuidFromPg(row.OwnerID),
		row.OwnerName,
		row.CreatedAt,
		row.UpdatedAt,
	)
}

func ToDomainMeeting(row models.Meeting) meeting.Meeting {
	return meeting.Hydrate(
		uuidFromPg(row.ID),
		row.Title,
		row.StartTime,
		row.EndTime,
		meeting.Status(row.Status),
		row.Location,
		row.Notes,
		uuidFromPg(row.OwnerID),
		row.OwnerName,
		row.AccountName,
		row.CreatedAt,
		row.UpdatedAt,
	)
}

func ToDomainTask(row models.Task) task.Task {
	return task.Hydrate(
		uuidFromPg(row.ID),
		row.Title,
		row.Description,
		task.Status(row.Status),
		task.Priority(row.Priority),
		row.DueDate,
		uuidFromPg(row.OwnerID),
		row.OwnerName,
		row.CreatedAt,
		row.UpdatedAt,
	)
}
