package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ChatRequest is the body of POST /api/v1/chat.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// ChatEvent is one server-sent event on the chat stream. Type is "delta"
// for an in-progress response prefix and "done" for the terminal event.
type ChatEvent struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
}

// handleChat runs one turn and streams the response as SSE: a "delta" event
// per growing prefix, then a single "done" event carrying the full response.
func (s *Server) handleChat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}

	ctx := c.Request().Context()
	if err := s.turnSemaphore.Acquire(ctx, 1); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "server busy").SetInternal(err)
	}
	defer s.turnSemaphore.Release(1)

	sessionID, conv := s.sessions.acquire(req.SessionID)

	// One turn at a time per session.
	conv.turnMu.Lock()
	defer conv.turnMu.Unlock()

	history, state := conv.snapshot()

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)

	for update := range s.runner.ProcessTurn(ctx, req.Message, history, state) {
		event := ChatEvent{Type: "delta", SessionID: sessionID}
		if n := len(update.History); n > 0 {
			event.Response = update.History[n-1].Assistant
		}
		if update.Final {
			event.Type = "done"
			conv.commit(update.History, update.State)
		}
		if err := writeEvent(resp, event); err != nil {
			// Client went away; the orchestrator notices via ctx and
			// finishes with what was delivered.
			return nil
		}
	}
	return nil
}

func writeEvent(resp *echo.Response, event ChatEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(resp, "data: %s\n\n", payload); err != nil {
		return err
	}
	resp.Flush()
	return nil
}
