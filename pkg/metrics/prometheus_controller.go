package metrics

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vantage-crm/vantage/pkg/application"
)

// PrometheusController exposes process and Go runtime metrics on the
// configured path. It registers nothing when disabled.
type PrometheusController struct {
	path     string
	registry *prometheus.Registry
}

func NewPrometheusController(path string) application.Controller {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &PrometheusController{
		path:     path,
		registry: registry,
	}
}

func (c *PrometheusController) Key() string {
	return c.path
}

func (c *PrometheusController) Register(r *mux.Router) {
	r.Handle(c.path, promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}))
}
