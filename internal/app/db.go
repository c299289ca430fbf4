package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
	_ "modernc.org/sqlite"

	"github.com/riskibarqy/cricket-analytics/internal/config"
	"github.com/riskibarqy/cricket-analytics/internal/infrastructure/repository/sqldb"
	"github.com/riskibarqy/cricket-analytics/migrations"
)

const dbPingTimeout = 5 * time.Second

// openAdminDB connects to the configured admin store. SQLite databases are
// migrated on open since they usually live next to the binary; Postgres is
// migrated through cmd/migration.
func openAdminDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	driver, system, dsn := "postgres", "postgresql", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	if cfg.AdminStore == config.AdminStoreSQLite {
		driver, system, dsn = sqldb.DriverSQLite, "sqlite", cfg.DBURL
	}

	db, err := otelsqlx.Open(driver, dsn,
		otelsql.WithAttributes(attribute.String("db.system", system)),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", cfg.AdminStore, err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	if driver == sqldb.DriverSQLite {
		// One writer at a time; extra connections only add SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s db: %w", cfg.AdminStore, err)
	}

	if driver == sqldb.DriverSQLite {
		if err := migrations.Up(db.DB, migrations.DialectSQLite); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate sqlite db: %w", err)
		}
	}

	return db, nil
}
