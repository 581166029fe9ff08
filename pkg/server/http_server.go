package server

import (
	"context"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/vantage-crm/vantage/pkg/application"
)

// HTTPServer assembles the router from the application's middleware and
// controllers and serves it gzip-compressed.
type HTTPServer struct {
	log *logrus.Logger
	srv *http.Server
}

func NewHTTPServer(app application.Application, log *logrus.Logger) *HTTPServer {
	router := mux.NewRouter()
	router.Use(app.Middleware()...)
	for _, controller := range app.Controllers() {
		controller.Register(router)
		log.WithField("controller", controller.Key()).Debug("registered controller")
	}

	return &HTTPServer{
		log: log,
		srv: &http.Server{
			Handler:           gziphandler.GzipHandler(router),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *HTTPServer) Start(socketAddress string) error {
	s.srv.Addr = socketAddress
	s.log.WithField("address", socketAddress).Info("http server listening")
	return s.srv.ListenAndServe()
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
