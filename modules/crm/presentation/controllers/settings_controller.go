package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/lead"
	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/meeting"
	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/task"
	"github.com/vantage-crm/vantage/modules/crm/presentation/mappers"
	"github.com/vantage-crm/vantage/modules/crm/presentation/viewmodels"
	"github.com/vantage-crm/vantage/modules/crm/services"
	"github.com/vantage-crm/vantage/pkg/application"
	"github.com/vantage-crm/vantage/pkg/configuration"
	"github.com/vantage-crm/vantage/pkg/listview"
)

// SettingsController serves the static option sets list pages need to render
// their filter dropdowns, plus the owner directory.
type SettingsController struct {
	userService *services.UserService
	basePath    string
}

func NewSettingsController(app application.Application) application.Controller {
	return &SettingsController{
		userService: app.Service(&services.UserService{}).(*services.UserService),
		basePath:    "/crm/api/settings",
	}
}

func (c *SettingsController) Key() string {
	return c.basePath
}

func (c *SettingsController) Register(r *mux.Router) {
	r.HandleFunc(c.basePath, c.Settings).Methods(http.MethodGet)
	r.HandleFunc("/crm/api/owners", c.Owners).Methods(http.MethodGet)
}

func (c *SettingsController) Settings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"page_size":        configuration.Use().PageSize,
		"filter_all":       listview.FilterAll,
		"lead_statuses":    lead.Statuses,
		"meeting_statuses": meeting.Statuses,
		"task_statuses":    task.Statuses,
		"task_priorities":  []task.Priority{task.PriorityLow, task.PriorityMedium, task.PriorityHigh},
	})
}

func (c *SettingsController) Owners(w http.ResponseWriter, r *http.Request) {
	users, err := c.userService.GetAll(r.Context())
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
		return
	}
	items := make([]*viewmodels.User, 0, len(users))
	for _, u := range users {
		items = append(items, mappers.UserToViewModel(u))
	}
	writeJSON(w, http.StatusOK, map[string]any{"owners": items})
}
