package main

import (
	"github.com/matryer/way"
	"github.com/pdrpinto/gridastar/internal/monitoring"
)

const (
	uriSessions = "/sessions"
	uriSession  = "/sessions/:id"
	uriCell     = "/sessions/:id/cells/:row/:col"
	uriRun      = "/sessions/:id/run"
	uriMetrics  = "/metrics"
)

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("POST", uriSessions, s.handleCreate())
	s.router.HandleFunc("GET", uriSession, s.handleFrame())
	s.router.HandleFunc("DELETE", uriSession, s.handleDelete())
	s.router.HandleFunc("PUT", uriCell, s.handleCell())
	s.router.HandleFunc("GET", uriRun, s.handleRun())
	s.router.Handle("GET", uriMetrics, monitoring.Handler())
}
