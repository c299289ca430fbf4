package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cricket-analytics/internal/domain/runrate"
	"github.com/riskibarqy/cricket-analytics/internal/usecase"
)

func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.Predict")
	defer span.End()

	var req predictRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.predictionService.Predict(ctx, usecase.PredictionInput{
		BattingTeam:    req.BattingTeam,
		BowlingTeam:    req.BowlingTeam,
		City:           req.City,
		Target:         req.Target,
		CurrentScore:   req.CurrentScore,
		OversCompleted: req.OversCompleted,
		WicketsLost:    req.WicketsLost,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "prediction failed", "batting_team", req.BattingTeam, "bowling_team", req.BowlingTeam, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionDTO{
		Metrics:                   runRateToDTO(result.Format, result.Metrics),
		BattingTeamWinProbability: result.Prediction.BattingTeamWinProbability,
		BowlingTeamWinProbability: result.Prediction.BowlingTeamWinProbability,
		Summary:                   result.Prediction.Summary,
	})
}

func (h *Handler) DeriveRunRate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.DeriveRunRate")
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

	metrics, err := h.predictionService.DeriveRunRate(req.snapshot())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, runRateToDTO(h.predictionService.Format(), metrics))
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.Chat")
	defer span.End()

	var req chatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	answer, err := h.chatService.Ask(ctx, req.Query)
	if err != nil {
		h.logger.WarnContext(ctx, "chat query failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, chatDTO{Response: answer})
}

type predictRequest struct {
	BattingTeam    string  `json:"battingTeam" validate:"required,max=64"`
	BowlingTeam    string  `json:"bowlingTeam" validate:"required,max=64"`
	City           string  `json:"city" validate:"required,max=64"`
	Target         int     `json:"target" validate:"gt=0"`
	CurrentScore   int     `json:"currentScore" validate:"gte=0"`
	OversCompleted float64 `json:"oversCompleted" validate:"gte=0"`
	WicketsLost    int     `json:"wicketsLost" validate:"gte=0,lte=10"`
}

type snapshotRequest struct {
	Target         int     `json:"target" validate:"gt=0"`
	CurrentScore   int     `json:"currentScore" validate:"gte=0"`
	OversCompleted float64 `json:"oversCompleted" validate:"gte=0"`
	WicketsLost    int     `json:"wicketsLost" validate:"gte=0,lte=10"`
}

func (r snapshotRequest) snapshot() runrate.Snapshot {
	return runrate.Snapshot{
		Target:         r.Target,
		CurrentScore:   r.CurrentScore,
		OversCompleted: r.OversCompleted,
		WicketsLost:    r.WicketsLost,
	}
}

type chatRequest struct {
	Query string `json:"query" validate:"required,max=2000"`
}
