package application

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/vantage-crm/vantage/pkg/eventbus"
)

// Controller registers a set of routes under one key. Keys are unique; a
// second controller with the same key replaces the first.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module bundles services, controllers and schema migrations for one
// vertical slice of the product.
type Module interface {
	Name() string
	Register(app Application) error
}

type Application interface {
	DB() *pgxpool.Pool
	EventPublisher() eventbus.EventBus
	Logger() *logrus.Logger

	RegisterControllers(controllers ...Controller)
	Controllers() []Controller
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	Middleware() []mux.MiddlewareFunc

	RegisterServices(services ...interface{})
	Service(service interface{}) interface{}

	RegisterMigration(schema string)
	RunMigrations(ctx context.Context) error
}

func New(pool *pgxpool.Pool, publisher eventbus.EventBus, logger *logrus.Logger) Application {
	return &application{
		pool:        pool,
		publisher:   publisher,
		logger:      logger,
		controllers: map[string]Controller{},
		services:    map[reflect.Type]interface{}{},
	}
}

type application struct {
	mu          sync.RWMutex
	pool        *pgxpool.Pool
	publisher   eventbus.EventBus
	logger      *logrus.Logger
	controllers map[string]Controller
	middleware  []mux.MiddlewareFunc
	services    map[reflect.Type]interface{}
	migrations  []string
}

func (a *application) DB() *pgxpool.Pool {
	return a.pool
}

func (a *application) EventPublisher() eventbus.EventBus {
	return a.publisher
}

func (a *application) Logger() *logrus.Logger {
	return a.logger
}

func (a *application) RegisterControllers(controllers ...Controller) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, c := range controllers {
		a.controllers[c.Key()] = c
	}
}

func (a *application) Controllers() []Controller {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Controller, 0, len(a.controllers))
	for _, c := range a.controllers {
		out = append(out, c)
	}
	return out
}

func (a *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.middleware = append(a.middleware, middleware...)
}

func (a *application) Middleware() []mux.MiddlewareFunc {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.middleware
}

// RegisterServices stores services keyed by their concrete type.
func (a *application) RegisterServices(services ...interface{}) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, s := range services {
		a.services[reflect.TypeOf(s)] = s
	}
}

// Service looks up a registered service by the type of the given prototype.
// It panics on a miss; a missing service is a wiring bug, not a runtime
// condition.
func (a *application) Service(service interface{}) interface{} {
	a.mu.RLock()
	defer a.mu.RUnlock()
	svc, ok := a.services[reflect.TypeOf(service)]
	if !ok {
		panic(fmt.Sprintf("service %T is not registered", service))
	}
	return svc
}

func (a *application) RegisterMigration(schema string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.migrations = append(a.migrations, schema)
}

// RunMigrations applies registered schema blobs in registration order. The
// statements are idempotent, so reapplying on boot is safe.
func (a *application) RunMigrations(ctx context.Context) error {
	a.mu.RLock()
	migrations := a.migrations
	a.mu.RUnlock()

	for _, schema := range migrations {
		if _, err := a.pool.Exec(ctx, schema); err != nil {
			return fmt.Errorf("failed to apply migration: %w", err)
		}
	}
	return nil
}
