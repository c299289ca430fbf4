package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/cricket-analytics/internal/platform/logging"
	"github.com/riskibarqy/cricket-analytics/internal/usecase"
)

type Handler struct {
	matchService      *usecase.MatchService
	overviewService   *usecase.OverviewService
	playerService     *usecase.PlayerService
	predictionService *usecase.PredictionService
	chatService       *usecase.ChatService
	adminService      *usecase.AdminService
	sessionService    *usecase.SessionService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	overviewService *usecase.OverviewService,
	playerService *usecase.PlayerService,
	predictionService *usecase.PredictionService,
	chatService *usecase.ChatService,
	adminService *usecase.AdminService,
	sessionService *usecase.SessionService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:      matchService,
		overviewService:   overviewService,
		playerService:     playerService,
		predictionService: predictionService,
		chatService:       chatService,
		adminService:      adminService,
		sessionService:    sessionService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListTournaments")
	defer span.End()

	catalog := h.matchService.Catalog()
	year := catalog.MaxYear
	if raw := strings.TrimSpace(r.URL.Query().Get("year")); raw != "" {
		parsed, err := parseYear(raw)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		year = parsed
	}

	items, err := h.matchService.Tournaments(year)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]tournamentDTO, 0, len(items))
	for _, item := range items {
		out = append(out, tournamentDTO{
			ID:   item.ID,
			Name: item.Name,
			Kind: string(item.Kind),
			Year: item.Year,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentListDTO{
		Years:       catalog.Years(),
		Tournaments: out,
	})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListTeams")
	defer span.End()

	items, err := h.matchService.Teams(r.URL.Query().Get("kind"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamDTO{Name: item.Name, Code: item.Code, Kind: string(item.Kind)})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListCities(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListCities")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.matchService.Catalog().Cities())
}
