package controllers

import (
	"net/http"

	gerrors "github.com/go-faster/errors"
	"github.com/gorilla/mux"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/task"
	"github.com/vantage-crm/vantage/modules/crm/presentation/mappers"
	"github.com/vantage-crm/vantage/modules/crm/presentation/viewmodels"
	"github.com/vantage-crm/vantage/modules/crm/services"
	"github.com/vantage-crm/vantage/pkg/application"
	"github.com/vantage-crm/vantage/pkg/configuration"
	"github.com/vantage-crm/vantage/pkg/listview"
)

type TasksController struct {
	taskService   *services.TaskService
	exportService *services.ExportService
	pageSize      int
	basePath      string
}

func NewTasksController(app application.Application) application.Controller {
	return &TasksController{
		taskService:   app.Service(&services.TaskService{}).(*services.TaskService),
		exportService: app.Service(&services.ExportService{}).(*services.ExportService),
		pageSize:      configuration.Use().PageSize,
		basePath:      "/crm/api/tasks",
	}
}

func (c *TasksController) Key() string {
	return c.basePath
}

func (c *TasksController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/export", c.Export).Methods(http.MethodGet)
	router.HandleFunc("/bulk-delete", c.BulkDelete).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
}

func taskSchema() listview.Schema[task.Task] {
	return listview.Schema[task.Task]{
		ID: func(t task.Task) string { return t.ID().String() },
		SearchFields: []func(task.Task) string{
			task.Task.Title,
			task.Task.Description,
		},
		Filters: map[string]listview.FilterFunc[task.Task]{
			"status":   func(t task.Task, value string) bool { return string(t.Status()) == value },
			"priority": func(t task.Task, value string) bool { return string(t.Priority()) == value },
			"owner":    func(t task.Task, value string) bool { return t.OwnerID().String() == value },
		},
		SortKeys: map[string]listview.Comparator[task.Task]{
			"title":    listview.TextKey(task.Task.Title),
			"due_date": listview.DateKey(task.Task.DueDate),
			"priority": listview.NumberKey(func(t task.Task) float64 { return float64(t.Priority().Rank()) }),
			"status":   listview.TextKey(func(t task.Task) string { return string(t.Status()) }),
		},
	}
}

func (c *TasksController) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := c.taskService.GetAll(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	state := listStateFromQuery(r, c.pageSize, "status", "priority", "owner")
	view := listview.Compute(tasks, taskSchema(), state)

	items := make([]*viewmodels.Task, 0, len(view.Rows))
	for _, t := range view.Rows {
		items = append(items, mappers.TaskToViewModel(t))
	}
	writeJSON(w, http.StatusOK, listPayload{
		Items:      items,
		Total:      view.TotalFiltered,
		TotalPages: view.TotalPages,
		Page:       view.Page,
	})
}

func (c *TasksController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	entity, err := c.taskService.GetByID(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.TaskToViewModel(entity))
}

func (c *TasksController) Create(w http.ResponseWriter, r *http.Request) {
	dto := &task.CreateDTO{}
	if !decodeBody(w, r, dto) {
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeValidationErrors(w, errs)
		return
	}
	created, err := c.taskService.Create(r.Context(), dto)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mappers.TaskToViewModel(created))
}

func (c *TasksController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	dto := &task.UpdateDTO{}
	if !decodeBody(w, r, dto) {
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeValidationErrors(w, errs)
		return
	}
	updated, err := c.taskService.Update(r.Context(), id, dto)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.TaskToViewModel(updated))
}

func (c *TasksController) BulkDelete(w http.ResponseWriter, r *http.Request) {
	ids, ok := bulkUUIDs(w, r)
	if !ok {
		return
	}
	deleted, err := c.taskService.Delete(r.Context(), ids)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

func (c *TasksController) Export(w http.ResponseWriter, r *http.Request) {
	workbook, err := c.exportService.TasksWorkbook(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeWorkbook(w, "tasks.xlsx", workbook)
}

func (c *TasksController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if gerrors.Is(err, task.ErrNotFound) {
		writeAPIError(w, r, http.StatusNotFound, "NOT_FOUND", "task not found")
		return
	}
	writeAPIError(w, r, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
}
