package db

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Open connects a pooled sqlx handle. Postgres-style DSNs go through the pgx
// stdlib driver; anything else is treated as a sqlite path. Sqlite connections
// get foreign_keys enabled through the DSN, since the driver leaves the pragma
// off by default and the ledger tables depend on it.
func Open(dsn string) (*sqlx.DB, error) {
	driver := driverFor(dsn)
	if driver == "sqlite" {
		dsn = sqliteDSN(dsn)
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if driver == "sqlite" {
		var enabled int
		if err := db.Get(&enabled, `PRAGMA foreign_keys`); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("check sqlite foreign key pragma: %w", err)
		}
		if enabled != 1 {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite foreign keys are disabled")
		}
	}
	return db, nil
}

func driverFor(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx"
	}
	return "sqlite"
}

// sqliteDSN appends the foreign_keys pragma to a sqlite path unless the
// operator already set one.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=foreign_keys") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_pragma=foreign_keys(1)"
	}
	return dsn + "?_pragma=foreign_keys(1)"
}

var databaseNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// EnsureDatabase creates the named database on the server behind adminDSN if
// it does not exist yet. It is a no-op when adminDSN is empty (sqlite
// deployments, or an operator-provisioned database). CREATE DATABASE cannot
// be parameterized, so the name is validated against a strict identifier
// pattern before interpolation.
func EnsureDatabase(adminDSN, name string) error {
	if adminDSN == "" {
		return nil
	}
	if !databaseNamePattern.MatchString(name) {
		return fmt.Errorf("invalid database name %q", name)
	}
	admin, err := sqlx.Open(driverFor(adminDSN), adminDSN)
	if err != nil {
		return fmt.Errorf("open admin connection: %w", err)
	}
	defer admin.Close()

	var exists bool
	if err := admin.Get(&exists, `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`, name); err != nil {
		return fmt.Errorf("check database: %w", err)
	}
	if exists {
		return nil
	}
	if _, err := admin.Exec(`CREATE DATABASE "` + name + `"`); err != nil {
		return fmt.Errorf("create database %s: %w", name, err)
	}
	return nil
}
