// Package sqldb stores admin profiles in postgres or sqlite through sqlx.
// Queries are built with '?' bindvars and rebound for the connection's driver.
package sqldb

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// DriverSQLite is the database/sql name registered by modernc.org/sqlite.
const DriverSQLite = "sqlite"

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
