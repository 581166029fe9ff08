package controllers

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/gorilla/mux"

	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/account"
	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/contact"
	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/lead"
	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/meeting"
	"github.com/vantage-crm/vantage/modules/crm/domain/aggregates/task"
	"github.com/vantage-crm/vantage/modules/crm/services"
	"github.com/vantage-crm/vantage/pkg/application"
	"github.com/vantage-crm/vantage/pkg/spotlight"
)

// SpotlightController serves the global quick-search box. The index is
// rebuilt lazily: domain events mark it stale and the next search reloads it.
type SpotlightController struct {
	index *spotlight.Index
	stale atomic.Bool

	leadService    *services.LeadService
	contactService *services.ContactService
	accountService *services.AccountService
	meetingService *services.MeetingService
	taskService    *services.TaskService

	basePath string
}

func NewSpotlightController(app application.Application) application.Controller {
	c := &SpotlightController{
		index:          spotlight.New(),
		leadService:    app.Service(&services.LeadService{}).(*services.LeadService),
		contactService: app.Service(&services.ContactService{}).(*services.ContactService),
		accountService: app.Service(&services.AccountService{}).(*services.AccountService),
		meetingService: app.Service(&services.MeetingService{}).(*services.MeetingService),
		taskService:    app.Service(&services.TaskService{}).(*services.TaskService),
		basePath:       "/crm/api/spotlight",
	}
	c.stale.Store(true)

	bus := app.EventPublisher()
	bus.Subscribe(func(lead.CreatedEvent) { c.stale.Store(true) })
	bus.Subscribe(func(lead.UpdatedEvent) { c.stale.Store(true) })
	bus.Subscribe(func(lead.DeletedEvent) { c.stale.Store(true) })
	bus.Subscribe(func(contact.CreatedEvent) { c.stale.Store(true) })
	bus.Subscribe(func(contact.UpdatedEvent) { c.stale.Store(true) })
	bus.Subscribe(func(contact.DeletedEvent) { c.stale.Store(true) })
	bus.Subscribe(func(account.CreatedEvent) { c.stale.Store(true) })
	bus.Subscribe(func(account.UpdatedEvent) { c.stale.Store(true) })
	bus.Subscribe(func(account.DeletedEvent) { c.stale.Store(true) })
	bus.Subscribe(func(meeting.CreatedEvent) { c.stale.Store(true) })
	bus.Subscribe(func(meeting.UpdatedEvent) { c.stale.Store(true) })
	bus.Subscribe(func(meeting.CancelledEvent) { c.stale.Store(true) })
	bus.Subscribe(func(meeting.DeletedEvent) { c.stale.Store(true) })
	bus.Subscribe(func(task.CreatedEvent) { c.stale.Store(true) })
	bus.Subscribe(func(task.UpdatedEvent) { c.stale.Store(true) })
	bus.Subscribe(func(task.DeletedEvent) { c.stale.Store(true) })

	return c
}

func (c *SpotlightController) Key() string {
	return c.basePath
}

func (c *SpotlightController) Register(r *mux.Router) {
	r.HandleFunc(c.basePath, c.Search).Methods(http.MethodGet)
}

func (c *SpotlightController) Search(w http.ResponseWriter, r *http.Request) {
	if c.stale.Swap(false) {
		if err := c.rebuild(r.Context()); err != nil {
			c.stale.Store(true)
			writeAPIError(w, r, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
			return
		}
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	results := c.index.Search(r.URL.Query().Get("q"), limit)
	writeJSON(w, http.StatusOK, map[string][]spotlight.Item{"results": results})
}

func (c *SpotlightController) rebuild(ctx context.Context) error {
	leads, err := c.leadService.GetAll(ctx)
	if err != nil {
		return err
	}
	items := make([]spotlight.Item, 0, len(leads))
	for _, l := range leads {
		items = append(items, spotlight.Item{ID: l.ID().String(), Kind: "lead", Title: l.FullName()})
	}
	c.index.Replace("lead", items)

	contacts, err := c.contactService.GetAll(ctx)
	if err != nil {
		return err
	}
	items = make([]spotlight.Item, 0, len(contacts))
	for _, ct := range contacts {
		items = append(items, spotlight.Item{ID: ct.ID().String(), Kind: "contact", Title: ct.FullName()})
	}
	c.index.Replace("contact", items)

	accounts, err := c.accountService.GetAll(ctx)
	if err != nil {
		return err
	}
	items = make([]spotlight.Item, 0, len(accounts))
	for _, a := range accounts {
		items = append(items, spotlight.Item{ID: a.ID().String(), Kind: "account", Title: a.Name()})
	}
	c.index.Replace("account", items)

	meetings, err := c.meetingService.GetAll(ctx)
	if err != nil {
		return err
	}
	items = make([]spotlight.Item, 0, len(meetings))
	for _, m := range meetings {
		items = append(items, spotlight.Item{ID: m.ID().String(), Kind: "meeting", Title: m.Title()})
	}
	c.index.Replace("meeting", items)

	tasks, err := c.taskService.GetAll(ctx)
	if err != nil {
		return err
	}
	items = make([]spotlight.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, spotlight.Item{ID: t.ID().String(), Kind: "task", Title: t.Title()})
	}
	c.index.Replace("task", items)

	return nil
}
