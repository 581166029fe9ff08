package crm

import (
	_ "embed"

	"github.com/jonboulle/clockwork"

	"github.com/vantage-crm/vantage/modules/crm/infrastructure/persistence"
	"github.com/vantage-crm/vantage/modules/crm/presentation/controllers"
	"github.com/vantage-crm/vantage/modules/crm/services"
	"github.com/vantage-crm/vantage/pkg/application"
)

//go:embed infrastructure/persistence/schema/crm-schema.sql
var schema string

type Module struct {
	clock clockwork.Clock
}

func NewModule() *Module {
	return &Module{clock: clockwork.NewRealClock()}
}

// WithClock overrides the module clock, used by tests to pin effective
// meeting statuses.
func (m *Module) WithClock(clock clockwork.Clock) *Module {
	m.clock = clock
	return m
}

func (m *Module) Name() string {
	return "crm"
}

func (m *Module) Register(app application.Application) error {
	publisher := app.EventPublisher()

	leadService := services.NewLeadService(persistence.NewLeadRepository(), publisher)
	contactService := services.NewContactService(persistence.NewContactRepository(), publisher)
	accountService := services.NewAccountService(persistence.NewAccountRepository(), publisher)
	meetingService := services.NewMeetingService(persistence.NewMeetingRepository(), publisher, m.clock)
	taskService := services.NewTaskService(persistence.NewTaskRepository(), publisher)
	userService := services.NewUserService(persistence.NewUserRepository())
	exportService := services.NewExportService(
		leadService, contactService, accountService, meetingService, taskService,
	)

	app.RegisterServices(
		leadService,
		contactService,
		accountService,
		meetingService,
		taskService,
		userService,
		exportService,
	)

	app.RegisterControllers(
		controllers.NewLeadsController(app),
		controllers.NewContactsController(app),
		controllers.NewAccountsController(app),
		controllers.NewMeetingsController(app),
		controllers.NewTasksController(app),
		controllers.NewSettingsController(app),
		controllers.NewSpotlightController(app),
	)

	app.RegisterMigration(schema)
	return nil
}
