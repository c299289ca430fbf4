package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-analytics/external/cricbuzz"
	"github.com/riskibarqy/cricket-analytics/external/modelapi"
	"github.com/riskibarqy/cricket-analytics/internal/config"
	"github.com/riskibarqy/cricket-analytics/internal/domain/admin"
	"github.com/riskibarqy/cricket-analytics/internal/domain/cricket"
	"github.com/riskibarqy/cricket-analytics/internal/domain/runrate"
	"github.com/riskibarqy/cricket-analytics/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricket-analytics/internal/infrastructure/repository/sqldb"
	"github.com/riskibarqy/cricket-analytics/internal/interfaces/httpapi"
	"github.com/riskibarqy/cricket-analytics/internal/platform/id"
	"github.com/riskibarqy/cricket-analytics/internal/platform/logging"
	"github.com/riskibarqy/cricket-analytics/internal/usecase"
)

// App owns the HTTP server and everything it needs to shut down cleanly.
type App struct {
	Server *http.Server

	cfg      config.Config
	sessions *usecase.SessionService
	db       *sqlx.DB
	logger   *logging.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	adminRepo, db, err := newAdminRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	catalog := cricket.Catalog{
		MinYear:       cfg.CricketMinYear,
		MaxYear:       cfg.CricketMaxYear,
		LeagueKeyword: cfg.LeagueSeriesKeyword,
	}

	cricbuzzClient := cricbuzz.NewClient(cricbuzz.ClientConfig{
		BaseURL:        cfg.CricbuzzBaseURL,
		APIKey:         cfg.CricbuzzAPIKey,
		APIHost:        cfg.CricbuzzAPIHost,
		Timeout:        cfg.CricbuzzTimeout,
		RateLimit:      cfg.CricbuzzRateLimit,
		RateBurst:      cfg.CricbuzzRateBurst,
		Logger:         logger,
		CircuitBreaker: cfg.CricbuzzCircuit,
	})
	modelClient := modelapi.NewClient(modelapi.ClientConfig{
		BaseURL:        cfg.ModelAPIBaseURL,
		Timeout:        cfg.ModelAPITimeout,
		Logger:         logger,
		CircuitBreaker: cfg.ModelAPICircuit,
	})

	ids := id.NewUUIDGenerator()
	matchSvc := usecase.NewMatchService(cricbuzzClient, catalog, logger)
	overviewSvc := usecase.NewOverviewService(matchSvc, usecase.OverviewServiceConfig{
		Workers:               cfg.OverviewWorkers,
		HeadToHeadConcurrency: cfg.HeadToHeadConcurrency,
	}, logger)
	playerSvc := usecase.NewPlayerService(cricbuzzClient, cfg.PlayerSearchMinChars)
	predictionSvc := usecase.NewPredictionService(modelClient, catalog, runrate.FormatForOvers(cfg.MatchFormatOvers), logger)
	chatSvc := usecase.NewChatService(modelClient)
	adminSvc := usecase.NewAdminService(adminRepo, ids, logger)
	sessionSvc := usecase.NewSessionService(matchSvc, playerSvc, predictionSvc, ids, usecase.SessionServiceConfig{
		TTL:            cfg.SessionTTL,
		SearchDebounce: cfg.SearchDebounce,
	}, logger)

	if cfg.AdminBootstrapEmail != "" && cfg.AdminStore == config.AdminStoreMemory {
		registered, err := adminSvc.Register(ctx, cfg.AdminBootstrapName, cfg.AdminBootstrapEmail, "")
		if err != nil {
			closeDB(db, logger)
			return nil, fmt.Errorf("bootstrap admin: %w", err)
		}
		logger.Info("bootstrap admin registered", "admin_id", registered.ID)
	}

	handler := httpapi.NewHandler(matchSvc, overviewSvc, playerSvc, predictionSvc, chatSvc, adminSvc, sessionSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		cfg:      cfg,
		sessions: sessionSvc,
		db:       db,
		logger:   logger,
	}, nil
}

// Start launches background work. The caller runs Server itself.
func (a *App) Start(ctx context.Context) {
	ctx, a.cancel = context.WithCancel(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.sessions.RunJanitor(ctx, a.cfg.SessionSweepInterval)
	}()
}

// Shutdown drains the HTTP server, then stops background work and closes the
// admin store.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Server.Shutdown(ctx)
	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()
	a.sessions.Close()
	if a.db != nil {
		err = errors.Join(err, a.db.Close())
	}
	return err
}

func newAdminRepository(ctx context.Context, cfg config.Config) (admin.Repository, *sqlx.DB, error) {
	if cfg.AdminStore == config.AdminStoreMemory {
		return memory.NewAdminRepository(), nil, nil
	}

	db, err := openAdminDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return sqldb.NewAdminRepository(db), db, nil
}

func closeDB(db *sqlx.DB, logger *logging.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Warn("close admin db failed", "error", err)
	}
}
