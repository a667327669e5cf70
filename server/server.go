// Package server exposes the turn orchestrator over HTTP: a streaming chat
// endpoint, turn history access, health, and metrics.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/semaphore"

	"github.com/rahulnsecc/agenthub/ai/metrics"
	"github.com/rahulnsecc/agenthub/ai/orchestrator"
	"github.com/rahulnsecc/agenthub/ai/session"
	"github.com/rahulnsecc/agenthub/internal/profile"
	"github.com/rahulnsecc/agenthub/store"
)

// TurnRunner runs one conversational turn and streams its updates.
type TurnRunner interface {
	ProcessTurn(ctx context.Context, userMessage string, history []orchestrator.Exchange, state *session.State) <-chan orchestrator.Update
}

// maxConcurrentTurns bounds in-flight turns across all sessions so a burst
// of chat requests cannot overload the upstream model.
const maxConcurrentTurns = 8

type Server struct {
	e *echo.Echo

	Profile       *profile.Profile
	Store         *store.Store
	runner        TurnRunner
	sessions      *sessionManager
	turnSemaphore *semaphore.Weighted
}

func NewServer(profile *profile.Profile, store *store.Store, runner TurnRunner) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			slog.Info("http request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status)
			return nil
		},
	}))

	s := &Server{
		e:             e,
		Profile:       profile,
		Store:         store,
		runner:        runner,
		sessions:      newSessionManager(),
		turnSemaphore: semaphore.NewWeighted(maxConcurrentTurns),
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "Service ready.")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	apiV1 := e.Group("/api/v1")
	apiV1.POST("/chat", s.handleChat)
	apiV1.GET("/history", s.handleListHistory)
	apiV1.DELETE("/history", s.handleClearHistory)

	return s
}

func (s *Server) Start(ctx context.Context) error {
	address := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	s.e.Server.BaseContext = func(_ net.Listener) context.Context {
		return ctx
	}
	slog.Info("server listening", "address", address, "version", s.Profile.Version)
	return s.e.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := s.e.Shutdown(ctx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
	}

	if err := s.Store.Close(); err != nil {
		slog.Error("failed to close database", "error", err)
	}

	slog.Info("server shutdown")
}
