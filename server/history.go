package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rahulnsecc/agenthub/store"
)

// TurnRecordResponse is the JSON shape of one persisted turn.
type TurnRecordResponse struct {
	ID        string `json:"id"`
	UserInput string `json:"user_input"`
	Role      string `json:"role"`
	Response  string `json:"response"`
	CreatedTs int64  `json:"created_ts"`
}

// handleListHistory returns persisted turns, newest first. An optional
// limit query parameter bounds the result.
func (s *Server) handleListHistory(c echo.Context) error {
	find := &store.FindTurnRecord{}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		find.Limit = limit
	}

	records, err := s.Store.ListTurnRecords(c.Request().Context(), find)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list turn records").SetInternal(err)
	}

	out := make([]*TurnRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, &TurnRecordResponse{
			ID:        rec.ID,
			UserInput: rec.UserInput,
			Role:      rec.Role,
			Response:  rec.Response,
			CreatedTs: rec.CreatedTs,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// handleClearHistory deletes all persisted turns.
func (s *Server) handleClearHistory(c echo.Context) error {
	if err := s.Store.DeleteAllTurnRecords(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to clear turn records").SetInternal(err)
	}
	return c.NoContent(http.StatusNoContent)
}
