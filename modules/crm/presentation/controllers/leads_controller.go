package controllers

import (
	"net/http"

	gerrors "github.com/go-faster/errors"
	"github.com/gorilla/mux"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/lead"
	"github.com/vantage-crm/vantage/modules/crm/presentation/mappers"
	"github.com/vantage-crm/vantage/modules/crm/presentation/viewmodels"
	"github.com/vantage-crm/vantage/modules/crm/services"
	"github.com/vantage-crm/vantage/pkg/application"
	"github.com/vantage-crm/vantage/pkg/configuration"
	"github.com/vantage-crm/vantage/pkg/listview"
)

type LeadsController struct {
	leadService   *services.LeadService
	exportService *services.ExportService
	pageSize      int
	basePath      string
}

func NewLeadsController(app application.Application) application.Controller {
	return &LeadsController{
		leadService:   app.Service(&services.LeadService{}).(*services.LeadService),
		exportService: app.Service(&services.ExportService{}).(*services.ExportService),
		pageSize:      configuration.Use().PageSize,
		basePath:      "/crm/api/leads",
	}
}

func (c *LeadsController) Key() string {
	return c.basePath
}

func (c *LeadsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/export", c.Export).Methods(http.MethodGet)
	router.HandleFunc("/bulk-delete", c.BulkDelete).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
}

func leadSchema() listview.Schema[lead.Lead] {
	return listview.Schema[lead.Lead]{
		ID: func(l lead.Lead) string { return l.ID().String() },
		SearchFields: []func(lead.Lead) string{
			lead.Lead.FullName,
			lead.Lead.Email,
			lead.Lead.Company,
		},
		Filters: map[string]listview.FilterFunc[lead.Lead]{
			"status": func(l lead.Lead, value string) bool { return string(l.Status()) == value },
			"owner":  func(l lead.Lead, value string) bool { return l.OwnerID().String() == value },
		},
		SortKeys: map[string]listview.Comparator[lead.Lead]{
			"name":       listview.TextKey(lead.Lead.FullName),
			"email":      listview.TextKey(lead.Lead.Email),
			"company":    listview.TextKey(lead.Lead.Company),
			"status":     listview.TextKey(func(l lead.Lead) string { return string(l.Status()) }),
			"created_at": listview.NumberKey(func(l lead.Lead) float64 { return float64(l.CreatedAt().UnixMilli()) }),
		},
	}
}

func (c *LeadsController) List(w http.ResponseWriter, r *http.Request) {
	leads, err := c.leadService.GetAll(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	state := listStateFromQuery(r, c.pageSize, "status", "owner")
	view := listview.Compute(leads, leadSchema(), state)

	items := make([]*viewmodels.Lead, 0, len(view.Rows))
	for _, l := range view.Rows {
		items = append(items, mappers.LeadToViewModel(l))
	}
	writeJSON(w, http.StatusOK, listPayload{
		Items:      items,
		Total:      view.TotalFiltered,
		TotalPages: view.TotalPages,
		Page:       view.Page,
	})
}

func (c *LeadsController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	entity, err := c.leadService.GetByID(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.LeadToViewModel(entity))
}

func (c *LeadsController) Create(w http.ResponseWriter, r *http.Request) {
	dto := &lead.CreateDTO{}
	if !decodeBody(w, r, dto) {
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeValidationErrors(w, errs)
		return
	}
	created, err := c.leadService.Create(r.Context(), dto)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mappers.LeadToViewModel(created))
}

func (c *LeadsController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	dto := &lead.UpdateDTO{}
	if !decodeBody(w, r, dto) {
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeValidationErrors(w, errs)
		return
	}
	updated, err := c.leadService.Update(r.Context(), id, dto)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.LeadToViewModel(updated))
}

func (c *LeadsController) BulkDelete(w http.ResponseWriter, r *http.Request) {
	ids, ok := bulkUUIDs(w, r)
	if !ok {
		return
	}
	deleted, err := c.leadService.Delete(r.Context(), ids)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

func (c *LeadsController) Export(w http.ResponseWriter, r *http.Request) {
	workbook, err := c.exportService.LeadsWorkbook(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeWorkbook(w, "leads.xlsx", workbook)
}

func (c *LeadsController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case gerrors.Is(err, lead.ErrNotFound):
		writeAPIError(w, r, http.StatusNotFound, "NOT_FOUND", "lead not found")
	case gerrors.Is(err, lead.ErrEmailTaken):
		writeAPIError(w, r, http.StatusConflict, "EMAIL_TAKEN", "a lead with this email already exists")
	default:
		writeAPIError(w, r, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
	}
}
