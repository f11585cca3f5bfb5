// Package server exposes the assessment core over HTTP. Transport only:
// all data-consistency and scoring concerns live in the core packages.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/abhisek/apprise/internal/assess"
	"github.com/abhisek/apprise/internal/bank"
	"github.com/abhisek/apprise/internal/feedback"
	"github.com/abhisek/apprise/internal/index"
)

// Server wires the core components behind an echo instance.
type Server struct {
	e        *echo.Echo
	store    *bank.Store
	index    *index.Index
	sampler  *assess.Sampler
	feedback *feedback.Service
	log      *slog.Logger
}

// New creates a Server with all routes registered.
func New(store *bank.Store, ix *index.Index, sampler *assess.Sampler, fb *feedback.Service, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		e:        e,
		store:    store,
		index:    ix,
		sampler:  sampler,
		feedback: fb,
		log:      log,
	}

	e.GET("/health", s.handleHealth)
	e.GET("/roles", s.handleRoles)
	e.POST("/assessment/start", s.handleStart)
	e.GET("/assessment/questions/:role", s.handleQuestionsByRole)
	e.POST("/assessment/submit", s.handleSubmit)
	e.GET("/stats/role/:role", s.handleRoleStats)
	e.GET("/search", s.handleSearch)

	return s
}

// Echo returns the underlying echo instance, used by tests.
func (s *Server) Echo() *echo.Echo {
	return s.e
}

// Start serves HTTP on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.log.Info("http server listening", "addr", addr)
	err := s.e.Start(addr)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
