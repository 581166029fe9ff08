package server

import (
	"strings"
	"time"

	"github.com/vantage-crm/vantage/pkg/application"
	"github.com/vantage-crm/vantage/pkg/configuration"
	"github.com/vantage-crm/vantage/pkg/constants"
	"github.com/vantage-crm/vantage/pkg/metrics"
	"github.com/vantage-crm/vantage/pkg/middleware"
	"github.com/vantage-crm/vantage/pkg/server"
)

// Default assembles the middleware chain and ambient controllers shared by
// every deployment, then builds the HTTP server from the application's
// registered routes.
func Default(conf *configuration.Configuration, app application.Application) *server.HTTPServer {
	app.RegisterMiddleware(
		middleware.WithLogger(conf.Logger()),
		middleware.Provide(constants.AppKey, app),
		middleware.Provide(constants.PoolKey, app.DB()),
		middleware.Provide(constants.LoggerKey, conf.Logger()),
		middleware.Cors(strings.Split(conf.AllowedOrigins, ",")...),
		middleware.RequestParams(),
	)
	if conf.RateLimit.Enabled {
		app.RegisterMiddleware(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerPeriod: conf.RateLimit.GlobalRPS,
			Period:            time.Second,
		}))
	}
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}
	return server.NewHTTPServer(app, conf.Logger())
}
