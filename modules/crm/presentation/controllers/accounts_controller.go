package controllers

import (
	"net/http"

	gerrors "github.com/go-faster/errors"
	"github.com/gorilla/mux"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/account"
	"github.com/vantage-crm/vantage/modules/crm/presentation/mappers"
	"github.com/vantage-crm/vantage/modules/crm/presentation/viewmodels"
	"github.com/vantage-crm/vantage/modules/crm/services"
	"github.com/vantage-crm/vantage/pkg/application"
	"github.com/vantage-crm/vantage/pkg/configuration"
	"github.com/vantage-crm/vantage/pkg/listview"
)

type AccountsController struct {
	accountService *services.AccountService
	exportService  *services.ExportService
	pageSize       int
	basePath       string
}

func NewAccountsController(app application.Application) application.Controller {
	return &AccountsController{
		accountService: app.Service(&services.AccountService{}).(*services.AccountService),
		exportService:  app.Service(&services.ExportService{}).(*services.ExportService),
		pageSize:       configuration.Use().PageSize,
		basePath:       "/crm/api/accounts",
	}
}

func (c *AccountsController) Key() string {
	return c.basePath
}

func (c *AccountsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/export", c.Export).Methods(http.MethodGet)
	router.HandleFunc("/tags", c.Tags).Methods(http.MethodGet)
	router.HandleFunc("/bulk-delete", c.BulkDelete).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
}

func accountSchema() listview.Schema[account.Account] {
	return listview.Schema[account.Account]{
		ID: func(a account.Account) string { return a.ID().String() },
		SearchFields: []func(account.Account) string{
			account.Account.Name,
			account.Account.Industry,
			account.Account.Website,
		},
		Filters: map[string]listview.FilterFunc[account.Account]{
			"owner":    func(a account.Account, value string) bool { return a.OwnerID().String() == value },
			"industry": func(a account.Account, value string) bool { return a.Industry() == value },
			"tag":      account.Account.HasTag,
		},
		SortKeys: map[string]listview.Comparator[account.Account]{
			"name":       listview.TextKey(account.Account.Name),
			"industry":   listview.TextKey(account.Account.Industry),
			"created_at": listview.NumberKey(func(a account.Account) float64 { return float64(a.CreatedAt().UnixMilli()) }),
		},
	}
}

func (c *AccountsController) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := c.accountService.GetAll(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	state := listStateFromQuery(r, c.pageSize, "owner", "industry", "tag")
	view := listview.Compute(accounts, accountSchema(), state)

	items := make([]*viewmodels.Account, 0, len(view.Rows))
	for _, a := range view.Rows {
		items = append(items, mappers.AccountToViewModel(a))
	}
	writeJSON(w, http.StatusOK, listPayload{
		Items:      items,
		Total:      view.TotalFiltered,
		TotalPages: view.TotalPages,
		Page:       view.Page,
	})
}

// Tags serves the distinct tag list for the tag filter dropdown.
func (c *AccountsController) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := c.accountService.Tags(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"tags": tags})
}

func (c *AccountsController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	entity, err := c.accountService.GetByID(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.AccountToViewModel(entity))
}

func (c *AccountsController) Create(w http.ResponseWriter, r *http.Request) {
	dto := &account.CreateDTO{}
	if !decodeBody(w, r, dto) {
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeValidationErrors(w, errs)
		return
	}
	created, err := c.accountService.Create(r.Context(), dto)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mappers.AccountToViewModel(created))
}

func (c *AccountsController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	dto := &account.UpdateDTO{}
	if !decodeBody(w, r, dto) {
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeValidationErrors(w, errs)
		return
	}
	updated, err := c.accountService.Update(r.Context(), id, dto)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.AccountToViewModel(updated))
}

func (c *AccountsController) BulkDelete(w http.ResponseWriter, r *http.Request) {
	ids, ok := bulkUUIDs(w, r)
	if !ok {
		return
	}
	deleted, err := c.accountService.Delete(r.Context(), ids)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

func (c *AccountsController) Export(w http.ResponseWriter, r *http.Request) {
	workbook, err := c.exportService.AccountsWorkbook(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeWorkbook(w, "accounts.xlsx", workbook)
}

func (c *AccountsController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if gerrors.Is(err, account.ErrNotFound) {
		writeAPIError(w, r, http.StatusNotFound, "NOT_FOUND", "account not found")
		return
	}
	writeAPIError(w, r, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
}
