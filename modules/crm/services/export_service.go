package services

import (
	"context"
	"strings"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"
)

// ExportService renders record lists into xlsx workbooks for download.
type ExportService struct {
	leads    *LeadService
	contacts *ContactService
	accounts *AccountService
	meetings *MeetingService
	tasks    *TaskService
}

func NewExportService(
	leads *LeadService,
	contacts *ContactService,
	accounts *AccountService,
	meetings *MeetingService,
	tasks *TaskService,
) *ExportService {
	return &ExportService{
		leads:    leads,
		contacts: contacts,
		accounts: accounts,
		meetings: meetings,
		tasks:    tasks,
	}
}

func (s *ExportService) LeadsWorkbook(ctx context.Context) ([]byte, error) {
	leads, err := s.leads.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([][]interface{}, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, []interface{}{
			l.ID().String(),
			l.FullName(),
			l.Email(),
			l.Phone(),
			l.Company(),
			l.Source(),
			string(l.Status()),
			l.OwnerName(),
			l.CreatedAt().Format(time.DateTime),
		})
	}
	headers := []interface{}{"ID", "Name", "Email", "Phone", "Company", "Source", "Status", "Owner", "Created"}
	return buildWorkbook("Leads", headers, rows)
}

func (s *ExportService) ContactsWorkbook(ctx context.Context) ([]byte, error) {
	contacts, err := s.contacts.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([][]interface{}, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, []interface{}{
			c.ID().String(),
			c.FullName(),
			c.Email(),
			c.Phone(),
			c.JobTitle(),
			c.AccountName(),
			c.OwnerName(),
			c.CreatedAt().Format(time.DateTime),
		})
	}
	headers := []interface{}{"ID", "Name", "Email", "Phone", "Job Title", "Account", "Owner", "Created"}
	return buildWorkbook("Contacts", headers, rows)
}

func (s *ExportService) AccountsWorkbook(ctx context.Context) ([]byte, error) {
	accounts, err := s.accounts.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([][]interface{}, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []interface{}{
			a.ID().String(),
			a.Name(),
			a.Industry(),
			a.Website(),
			a.Phone(),
			strings.Join(a.Tags(), ", "),
			a.OwnerName(),
			a.CreatedAt().Format(time.DateTime),
		})
	}
	headers := []interface{}{"ID", "Name", "Industry", "Website", "Phone", "Tags", "Owner", "Created"}
	return buildWorkbook("Accounts", headers, rows)
}

// MeetingsWorkbook exports the effective status, not the stored one, so the
// sheet matches what the list shows.
func (s *ExportService) MeetingsWorkbook(ctx context.Context) ([]byte, error) {
	meetings, err := s.meetings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([][]interface{}, 0, len(meetings))
	for _, m := range meetings {
		rows = append(rows, []interface{}{
			m.ID().String(),
			m.Title(),
			m.StartTime().Format(time.DateTime),
			m.EndTime().Format(time.DateTime),
			string(s.meetings.EffectiveStatus(m)),
			m.Location(),
			m.AccountName(),
			m.OwnerName(),
		})
	}
	headers := []interface{}{"ID", "Title", "Start", "End", "Status", "Location", "Account", "Owner"}
	return buildWorkbook("Meetings", headers, rows)
}

func (s *ExportService) TasksWorkbook(ctx context.Context) ([]byte, error) {
	tasks, err := s.tasks.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([][]interface{}, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []interface{}{
			t.ID().String(),
			t.Title(),
			string(t.Status()),
			string(t.Priority()),
			t.DueDate().Format(time.DateOnly),
			t.OwnerName(),
			t.CreatedAt().Format(time.DateTime),
		})
	}
	headers := []interface{}{"ID", "Title", "Status", "Priority", "Due", "Owner", "Created"}
	return buildWorkbook("Tasks", headers, rows)
}

func buildWorkbook(sheet string, headers []interface{}, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, gerrors.Wrap(err, "failed to name sheet")
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, gerrors.Wrap(err, "failed to write header row")
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, gerrors.Wrap(err, "failed to compute cell name")
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, gerrors.Wrap(err, "failed to write row")
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, gerrors.Wrap(err, "failed to serialize workbook")
	}
	return buf.Bytes(), nil
}
