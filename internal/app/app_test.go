package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricket-analytics/internal/config"
	"github.com/riskibarqy/cricket-analytics/internal/platform/logging"
	"github.com/riskibarqy/cricket-analytics/internal/platform/resilience"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:                config.EnvDev,
		HTTPAddr:              ":0",
		ReadTimeout:           time.Second,
		CORSAllowedOrigins:    []string{"*"},
		CricbuzzBaseURL:       "http://127.0.0.1:1",
		CricbuzzTimeout:       time.Second,
		CricbuzzRateLimit:     5,
		CricbuzzRateBurst:     5,
		CricbuzzCircuit:       resilience.DefaultCircuitBreakerConfig(),
		CricketMinYear:        2010,
		CricketMaxYear:        2025,
		LeagueSeriesKeyword:   "Indian Premier League",
		MatchFormatOvers:      20,
		SearchDebounce:        10 * time.Millisecond,
		PlayerSearchMinChars:  3,
		SessionTTL:            time.Minute,
		SessionSweepInterval:  time.Minute,
		OverviewWorkers:       2,
		HeadToHeadConcurrency: 2,
		ModelAPIBaseURL:       "http://127.0.0.1:1",
		ModelAPITimeout:       time.Second,
		ModelAPICircuit:       resilience.DefaultCircuitBreakerConfig(),
		AdminStore:            config.AdminStoreMemory,
		DBMaxOpenConns:        2,
	}
}

func TestNew_MemoryStoreServesHealthz(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.AdminBootstrapName = "Ops"
	cfg.AdminBootstrapEmail = "ops@example.com"

	application, err := New(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	application.Start(context.Background())

	rec := httptest.NewRecorder()
	application.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, application.Shutdown(ctx))
}

func TestNew_SQLiteStoreMigratesOnOpen(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.AdminStore = config.AdminStoreSQLite
	cfg.DBURL = "file:" + filepath.Join(t.TempDir(), "admins.db") + "?_pragma=foreign_keys(1)"

	application, err := New(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	require.NotNil(t, application.db)

	var tables int
	require.NoError(t, application.db.Get(&tables,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('admins', 'admin_statistics')`))
	require.Equal(t, 2, tables)

	rec := httptest.NewRecorder()
	application.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admins/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	require.NoError(t, application.Shutdown(context.Background()))
}

func TestNew_RejectsEmptyAddr(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.HTTPAddr = ""

	_, err := New(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}
