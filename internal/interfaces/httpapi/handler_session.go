package httpapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/cricket-analytics/internal/usecase"
)

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CreateSession")
	defer span.End()

	state, err := h.sessionService.Create(ctx, sessionFromContext(ctx))
	if err != nil {
		h.logger.WarnContext(ctx, "create dashboard session failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.writeSession(ctx, w, http.StatusCreated, state)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetSession")
	defer span.End()

	state, err := h.sessionService.Get(ctx, sessionFromContext(ctx), pathSessionID(r))
	h.respondSession(ctx, w, state, err, "get dashboard session failed")
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.DeleteSession")
	defer span.End()

	sessionID := pathSessionID(r)
	if err := h.sessionService.Delete(ctx, sessionFromContext(ctx), sessionID); err != nil {
		h.logger.WarnContext(ctx, "delete dashboard session failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": sessionID})
}

func (h *Handler) SetSessionFilter(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.SetSessionFilter")
	defer span.End()

	var req sessionFilterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.sessionService.SetFilter(ctx, sessionFromContext(ctx), pathSessionID(r), req.Kind, req.Year)
	h.respondSession(ctx, w, state, err, "set session filter failed")
}

func (h *Handler) SelectSessionSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.SelectSessionSeries")
	defer span.End()

	var req sessionSeriesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.sessionService.SelectSeries(ctx, sessionFromContext(ctx), pathSessionID(r), req.SeriesID)
	h.respondSession(ctx, w, state, err, "select session series failed")
}

func (h *Handler) SetSessionTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.SetSessionTeams")
	defer span.End()

	var req sessionTeamsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.sessionService.SetTeams(ctx, sessionFromContext(ctx), pathSessionID(r), req.Team1, req.Team2)
	h.respondSession(ctx, w, state, err, "set session teams failed")
}

func (h *Handler) SelectSessionMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.SelectSessionMatch")
	defer span.End()

	var req sessionMatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.sessionService.SelectMatch(ctx, sessionFromContext(ctx), pathSessionID(r), req.MatchID)
	h.respondSession(ctx, w, state, err, "select session match failed")
}

func (h *Handler) SetSessionSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.SetSessionSnapshot")
	defer span.End()

	var req snapshotRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.sessionService.SetSnapshot(ctx, sessionFromContext(ctx), pathSessionID(r), req.snapshot())
	h.respondSession(ctx, w, state, err, "set session snapshot failed")
}

// SearchSessionPlayers schedules a debounced player search; the results arrive
// on the session stream.
func (h *Handler) SearchSessionPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.SearchSessionPlayers")
	defer span.End()

	var req sessionPlayerSearchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.sessionService.SearchPlayers(ctx, sessionFromContext(ctx), pathSessionID(r), req.Query)
	if err != nil {
		h.logger.WarnContext(ctx, "session player search failed", "session_id", pathSessionID(r), "error", err)
		writeError(ctx, w, err)
		return
	}

	h.writeSession(ctx, w, http.StatusAccepted, state)
}

func (h *Handler) respondSession(ctx context.Context, w http.ResponseWriter, state usecase.SessionState, err error, msg string) {
	if err != nil {
		h.logger.WarnContext(ctx, msg, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.writeSession(ctx, w, http.StatusOK, state)
}

func (h *Handler) writeSession(ctx context.Context, w http.ResponseWriter, status int, state usecase.SessionState) {
	writeSuccess(ctx, w, status, sessionToDTO(ctx, state, h.predictionService.Format()))
}

// sessionFilterRequest is validated by the session service so that a bad
// selection maps to an invalid filter.
type sessionFilterRequest struct {
	Kind string `json:"kind"`
	Year int    `json:"year"`
}

type sessionSeriesRequest struct {
	SeriesID int64 `json:"seriesId"`
}

type sessionTeamsRequest struct {
	Team1 string `json:"team1" validate:"max=64"`
	Team2 string `json:"team2" validate:"max=64"`
}

type sessionMatchRequest struct {
	MatchID string `json:"matchId" validate:"required"`
}

type sessionPlayerSearchRequest struct {
	Query string `json:"query" validate:"max=64"`
}
