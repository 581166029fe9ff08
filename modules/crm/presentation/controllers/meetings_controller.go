package controllers

import (
	"net/http"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/gorilla/mux"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/meeting"
	"github.com/vantage-crm/vantage/modules/crm/presentation/mappers"
	"github.com/vantage-crm/vantage/modules/crm/presentation/viewmodels"
	"github.com/vantage-crm/vantage/modules/crm/services"
	"github.com/vantage-crm/vantage/pkg/application"
	"github.com/vantage-crm/vantage/pkg/configuration"
	"github.com/vantage-crm/vantage/pkg/listview"
)

type MeetingsController struct {
	meetingService *services.MeetingService
	exportService  *services.ExportService
	pageSize       int
	basePath       string
}

func NewMeetingsController(app application.Application) application.Controller {
	return &MeetingsController{
		meetingService: app.Service(&services.MeetingService{}).(*services.MeetingService),
		exportService:  app.Service(&services.ExportService{}).(*services.ExportService),
		pageSize:       configuration.Use().PageSize,
		basePath:       "/crm/api/meetings",
	}
}

func (c *MeetingsController) Key() string {
	return c.basePath
}

func (c *MeetingsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/export", c.Export).Methods(http.MethodGet)
	router.HandleFunc("/bulk-delete", c.BulkDelete).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id}/cancel", c.Cancel).Methods(http.MethodPost)
}

// meetingSchema is built per request: the status filter and sort operate on
// the effective status, which depends on the current time.
func meetingSchema(now time.Time) listview.Schema[meeting.Meeting] {
	effective := func(m meeting.Meeting) string {
		return string(m.EffectiveStatusAt(now))
	}
	return listview.Schema[meeting.Meeting]{
		ID: func(m meeting.Meeting) string { return m.ID().String() },
		SearchFields: []func(meeting.Meeting) string{
			meeting.Meeting.Title,
			meeting.Meeting.Location,
			meeting.Meeting.AccountName,
		},
		Filters: map[string]listview.FilterFunc[meeting.Meeting]{
			"status": func(m meeting.Meeting, value string) bool { return effective(m) == value },
			"owner":  func(m meeting.Meeting, value string) bool { return m.OwnerID().String() == value },
		},
		SortKeys: map[string]listview.Comparator[meeting.Meeting]{
			"title":  listview.TextKey(meeting.Meeting.Title),
			"date":   listview.DateKey(meeting.Meeting.StartTime),
			"time":   listview.TimeOfDayKey(meeting.Meeting.StartTime),
			"status": listview.TextKey(effective),
		},
	}
}

func (c *MeetingsController) List(w http.ResponseWriter, r *http.Request) {
	meetings, err := c.meetingService.GetAll(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	now := c.meetingService.Now()
	state := listStateFromQuery(r, c.pageSize, "status", "owner")
	view := listview.Compute(meetings, meetingSchema(now), state)

	items := make([]*viewmodels.Meeting, 0, len(view.Rows))
	for _, m := range view.Rows {
		items = append(items, mappers.MeetingToViewModel(m, now))
	}
	writeJSON(w, http.StatusOK, listPayload{
		Items:      items,
		Total:      view.TotalFiltered,
		TotalPages: view.TotalPages,
		Page:       view.Page,
	})
}

func (c *MeetingsController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	entity, err := c.meetingService.GetByID(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.MeetingToViewModel(entity, c.meetingService.Now()))
}

func (c *MeetingsController) Create(w http.ResponseWriter, r *http.Request) {
	dto := &meeting.CreateDTO{}
	if !decodeBody(w, r, dto) {
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeValidationErrors(w, errs)
		return
	}
	created, err := c.meetingService.Create(r.Context(), dto)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mappers.MeetingToViewModel(created, c.meetingService.Now()))
}

func (c *MeetingsController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	dto := &meeting.UpdateDTO{}
	if !decodeBody(w, r, dto) {
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeValidationErrors(w, errs)
		return
	}
	updated, err := c.meetingService.Update(r.Context(), id, dto)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.MeetingToViewModel(updated, c.meetingService.Now()))
}

func (c *MeetingsController) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	cancelled, err := c.meetingService.Cancel(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.MeetingToViewModel(cancelled, c.meetingService.Now()))
}

func (c *MeetingsController) BulkDelete(w http.ResponseWriter, r *http.Request) {
	ids, ok := bulkUUIDs(w, r)
	if !ok {
		return
	}
	deleted, err := c.meetingService.Delete(r.Context(), ids)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

func (c *MeetingsController) Export(w http.ResponseWriter, r *http.Request) {
	workbook, err := c.exportService.MeetingsWorkbook(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeWorkbook(w, "meetings.xlsx", workbook)
}

func (c *MeetingsController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if gerrors.Is(err, meeting.ErrNotFound) {
		writeAPIError(w, r, http.StatusNotFound, "NOT_FOUND", "meeting not found")
		return
	}
	writeAPIError(w, r, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
}
