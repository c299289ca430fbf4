package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/cricket-analytics/internal/usecase"
)

func (h *Handler) ListSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListSeries")
	defer span.End()

	query := r.URL.Query()
	kind := strings.TrimSpace(query.Get("kind"))
	year, err := parseYear(query.Get("year"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	series, err := h.matchService.ListSeries(ctx, kind, year)
	if err != nil {
		h.logger.WarnContext(ctx, "list series failed", "kind", kind, "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seriesToDTOs(series))
}

// ListMatches returns the normalized matches of a series, optionally narrowed
// by team1/team2 substrings.
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListMatches")
	defer span.End()

	seriesID, err := parseSeriesID(r.PathValue("seriesID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := r.URL.Query()
	matches, err := h.matchService.ListMatchesForTeams(ctx, seriesID, query.Get("team1"), query.Get("team2"))
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "series_id", seriesID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTOs(ctx, matches))
}

func (h *Handler) GetMatchAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetMatchAnalysis")
	defer span.End()

	seriesID, err := parseSeriesID(r.PathValue("seriesID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	matchID := strings.TrimSpace(r.PathValue("matchID"))

	item, err := h.matchService.GetMatchAnalysis(ctx, seriesID, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match analysis failed", "series_id", seriesID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, analysisToDTO(ctx, item))
}

func (h *Handler) GetSeriesOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetSeriesOverview")
	defer span.End()

	seriesID, err := parseSeriesID(r.PathValue("seriesID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.overviewService.SeriesOverview(ctx, seriesID)
	if err != nil {
		h.logger.WarnContext(ctx, "series overview failed", "series_id", seriesID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seriesOverviewToDTO(ctx, overview))
}

func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetHeadToHead")
	defer span.End()

	query := r.URL.Query()
	req := headToHeadRequest{
		Team1: strings.TrimSpace(query.Get("team1")),
		Team2: strings.TrimSpace(query.Get("team2")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	year, err := parseYear(query.Get("year"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.overviewService.HeadToHead(ctx, usecase.HeadToHeadInput{
		Kind:  strings.TrimSpace(query.Get("kind")),
		Year:  year,
		Team1: req.Team1,
		Team2: req.Team2,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "head to head failed", "team1", req.Team1, "team2", req.Team2, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, headToHeadToDTO(ctx, result))
}

type headToHeadRequest struct {
	Team1 string `validate:"required,max=64"`
	Team2 string `validate:"required,max=64,nefield=Team1"`
}
