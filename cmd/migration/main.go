package main

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/riskibarqy/cricket-analytics/internal/platform/logging"
	"github.com/riskibarqy/cricket-analytics/migrations"
)

var errUsage = errors.New("usage")

func main() {
	logger := logging.New(logging.Options{Level: logging.LevelInfo, Format: "console", Output: os.Stderr})
	defer func() { _ = logger.Sync() }()

	if err := run(os.Args[1:], logger); err != nil {
		if errors.Is(err, errUsage) {
			printUsage()
			os.Exit(2)
		}
		logger.Error("migration failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(args []string, logger *logging.Logger) error {
	if len(args) == 0 {
		return errUsage
	}
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if dbURL == "" {
		return fmt.Errorf("DB_URL is required")
	}
	dialect, err := resolveDialect(os.Getenv("ADMIN_STORE"), dbURL)
	if err != nil {
		return err
	}
	if dialect == migrations.DialectPostgres && envBool("DB_DISABLE_PREPARED_BINARY_RESULT") {
		dbURL = withoutBinaryResults(dbURL)
	}

	db, err := sql.Open(driverName(dialect), dbURL)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	m, err := migrations.New(db, dialect)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Warn("close migration source failed", "error", srcErr)
		}
		if dbErr != nil {
			logger.Warn("close migration db failed", "error", dbErr)
		}
	}()

	logger = logger.With("dialect", dialect)
	switch cmd := strings.ToLower(strings.TrimSpace(args[0])); cmd {
	case "up":
		if err := ignoreNoChange(m.Up(), logger); err != nil {
			return err
		}
		logger.Info("migrations applied")
	case "down":
		steps, err := parseSteps(args[1:])
		if err != nil {
			return err
		}
		if err := ignoreNoChange(m.Steps(-steps), logger); err != nil {
			return err
		}
		logger.Info("migrations rolled back", "steps", steps)
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("version: none")
			fmt.Println("dirty: false")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read version: %w", err)
		}
		fmt.Printf("version: %d\n", version)
		fmt.Printf("dirty: %t\n", dirty)
	case "force":
		version, err := parseVersionArg(args[1:], "force")
		if err != nil {
			return err
		}
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("force version %d: %w", version, err)
		}
		logger.Info("migration version forced", "version", version)
	case "goto", "migrate":
		version, err := parseVersionArg(args[1:], cmd)
		if err != nil {
			return err
		}
		if err := ignoreNoChange(m.Migrate(version), logger); err != nil {
			return err
		}
		logger.Info("migrated", "version", version)
	default:
		return errUsage
	}
	return nil
}

// resolveDialect prefers ADMIN_STORE and falls back to the DB_URL scheme.
func resolveDialect(store, dbURL string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(store)) {
	case migrations.DialectPostgres:
		return migrations.DialectPostgres, nil
	case migrations.DialectSQLite:
		return migrations.DialectSQLite, nil
	case "", "memory":
	default:
		return "", fmt.Errorf("unsupported ADMIN_STORE %q", store)
	}

	lower := strings.ToLower(dbURL)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return migrations.DialectPostgres, nil
	case strings.HasPrefix(lower, "file:"), strings.HasSuffix(lower, ".db"):
		return migrations.DialectSQLite, nil
	default:
		return "", fmt.Errorf("cannot infer dialect from DB_URL; set ADMIN_STORE=postgres or sqlite")
	}
}

func driverName(dialect string) string {
	if dialect == migrations.DialectSQLite {
		return "sqlite"
	}
	return "postgres"
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", args[0], err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}
	return steps, nil
}

// parseVersionArg reads the version operand of force and goto. Versions are
// unix timestamps, so they must fit an int on every platform migrate supports.
func parseVersionArg(args []string, cmd string) (uint, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%s requires a version argument", cmd)
	}
	value, err := strconv.ParseUint(strings.TrimSpace(args[0]), 10, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", args[0], err)
	}
	return uint(value), nil
}

func ignoreNoChange(err error, logger *logging.Logger) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	return err
}

func withoutBinaryResults(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	query := parsed.Query()
	if !query.Has("disable_prepared_binary_result") {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func envBool(key string) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && value
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <up|down|version|force|goto> [args]\n", name)
	fmt.Fprintln(os.Stderr, "environment: DB_URL (required), ADMIN_STORE=postgres|sqlite")
	fmt.Fprintln(os.Stderr, "examples:")
	for _, example := range []string{"up", "down 1", "version", "force 1760000000", "goto 1760000000"} {
		fmt.Fprintf(os.Stderr, "  %s %s\n", name, example)
	}
}
