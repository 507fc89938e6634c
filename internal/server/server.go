// internal/server/server.go

// Package server exposes the advisor, the term registry and saved sessions over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mwiater/careerpath/internal/advisor"
	"github.com/mwiater/careerpath/internal/metrics"
	"github.com/mwiater/careerpath/internal/providers"
	"github.com/mwiater/careerpath/internal/schema"
	"github.com/mwiater/careerpath/internal/store"
)

const shutdownTimeout = 10 * time.Second

// Server wires the HTTP routes to the advisor and store.
type Server struct {
	e       *echo.Echo
	service *advisor.Service
	store   store.Store
	metrics *metrics.Registry
}

// New builds the echo instance and registers every route. reg may be nil.
func New(svc *advisor.Service, st store.Store, reg *metrics.Registry) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := statusFor(err)
		msg := err.Error()
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]string{"error": msg})
		}
	}

	s := &Server{e: e, service: svc, store: st, metrics: reg}

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	if reg != nil {
		e.GET("/metrics", echo.WrapHandler(reg.Handler()))
		e.GET("/api/stats", s.stats)
	}

	api := e.Group("/api")
	api.POST("/career-advice", s.careerAdvice)
	api.POST("/timetable", s.timetable)

	api.GET("/terms", s.listTerms)
	api.POST("/terms", s.addTerm)

	api.GET("/sessions", s.listSessions)
	api.POST("/sessions", s.saveSession)
	api.DELETE("/sessions", s.clearSessions)
	api.GET("/sessions/:id", s.getSession)
	api.DELETE("/sessions/:id", s.deleteSession)

	return s
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler { return s.e }

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[HTTP] listening on %s", addr)
		errCh <- s.e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) stats(c echo.Context) error {
	return c.JSON(http.StatusOK, s.metrics.Aggregator().Snapshot())
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var (
		transport *providers.TransportError
		network   *providers.NetworkError
		parse     *providers.FinalParseError
		invalid   *schema.ValidationError
	)
	switch {
	case errors.Is(err, providers.ErrConfiguration):
		return http.StatusServiceUnavailable
	case errors.Is(err, advisor.ErrInvalidRequest), errors.Is(err, store.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &network):
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &transport), errors.As(err, &parse), errors.As(err, &invalid):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
