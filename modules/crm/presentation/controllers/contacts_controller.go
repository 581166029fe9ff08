package controllers

import (
	"net/http"

	gerrors "github.com/go-faster/errors"
	"github.com/gorilla/mux"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/contact"
	"github.com/vantage-crm/vantage/modules/crm/presentation/mappers"
	"github.com/vantage-crm/vantage/modules/crm/presentation/viewmodels"
	"github.com/vantage-crm/vantage/modules/crm/services"
	"github.com/vantage-crm/vantage/pkg/application"
	"github.com/vantage-crm/vantage/pkg/configuration"
	"github.com/vantage-crm/vantage/pkg/listview"
)

type ContactsController struct {
	contactService *services.ContactService
	exportService  *services.ExportService
	pageSize       int
	basePath       string
}

func NewContactsController(app application.Application) application.Controller {
	return &ContactsController{
		contactService: app.Service(&services.ContactService{}).(*services.ContactService),
		exportService:  app.Service(&services.ExportService{}).(*services.ExportService),
		pageSize:       configuration.Use().PageSize,
		basePath:       "/crm/api/contacts",
	}
}

func (c *ContactsController) Key() string {
	return c.basePath
}

func (c *ContactsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/export", c.Export).Methods(http.MethodGet)
	router.HandleFunc("/bulk-delete", c.BulkDelete).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
}

func contactSchema() listview.Schema[contact.Contact] {
	return listview.Schema[contact.Contact]{
		ID: func(ct contact.Contact) string { return ct.ID().String() },
		SearchFields: []func(contact.Contact) string{
			contact.Contact.FullName,
			contact.Contact.Email,
			contact.Contact.AccountName,
		},
		Filters: map[string]listview.FilterFunc[contact.Contact]{
			"owner":   func(ct contact.Contact, value string) bool { return ct.OwnerID().String() == value },
			"account": func(ct contact.Contact, value string) bool { return ct.AccountName() == value },
		},
		SortKeys: map[string]listview.Comparator[contact.Contact]{
			"name":       listview.TextKey(contact.Contact.FullName),
			"email":      listview.TextKey(contact.Contact.Email),
			"job_title":  listview.TextKey(contact.Contact.JobTitle),
			"account":    listview.TextKey(contact.Contact.AccountName),
			"created_at": listview.NumberKey(func(ct contact.Contact) float64 { return float64(ct.CreatedAt().UnixMilli()) }),
		},
	}
}

func (c *ContactsController) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := c.contactService.GetAll(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	state := listStateFromQuery(r, c.pageSize, "owner", "account")
	view := listview.Compute(contacts, contactSchema(), state)

	items := make([]*viewmodels.Contact, 0, len(view.Rows))
	for _, ct := range view.Rows {
		items = append(items, mappers.ContactToViewModel(ct))
	}
	writeJSON(w, http.StatusOK, listPayload{
		Items:      items,
		Total:      view.TotalFiltered,
		TotalPages: view.TotalPages,
		Page:       view.Page,
	})
}

func (c *ContactsController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	entity, err := c.contactService.GetByID(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.ContactToViewModel(entity))
}

func (c *ContactsController) Create(w http.ResponseWriter, r *http.Request) {
	dto := &contact.CreateDTO{}
	if !decodeBody(w, r, dto) {
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeValidationErrors(w, errs)
		return
	}
	created, err := c.contactService.Create(r.Context(), dto)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mappers.ContactToViewModel(created))
}

func (c *ContactsController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	dto := &contact.UpdateDTO{}
	if !decodeBody(w, r, dto) {
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeValidationErrors(w, errs)
		return
	}
	updated, err := c.contactService.Update(r.Context(), id, dto)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.ContactToViewModel(updated))
}

func (c *ContactsController) BulkDelete(w http.ResponseWriter, r *http.Request) {
	ids, ok := bulkUUIDs(w, r)
	if !ok {
		return
	}
	deleted, err := c.contactService.Delete(r.Context(), ids)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

func (c *ContactsController) Export(w http.ResponseWriter, r *http.Request) {
	workbook, err := c.exportService.ContactsWorkbook(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeWorkbook(w, "contacts.xlsx", workbook)
}

func (c *ContactsController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if gerrors.Is(err, contact.ErrNotFound) {
		writeAPIError(w, r, http.StatusNotFound, "NOT_FOUND", "contact not found")
		return
	}
	writeAPIError(w, r, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
}
