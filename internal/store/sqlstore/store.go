// Package sqlstore implements store.Store on top of sqlx. The same
// implementation serves Postgres (pgx) and sqlite (modernc) deployments:
// queries are written with ? placeholders and rebound per driver. Camel-case
// column names are quoted everywhere so Postgres keeps the exact names the
// deployed store uses.
package sqlstore

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"

	"disasterresponse-backend-go/internal/store"
)

type Store struct {
	db *sqlx.DB
}

var _ store.Store = (*Store)(nil)

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// exec runs a rebound write and reports whether at least one row was
// affected. Failures are logged, not returned, per the store contract.
func (s *Store) exec(ctx context.Context, op, query string, args ...interface{}) bool {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		log.Printf("%s: %v", op, err)
		return false
	}
	affected, err := res.RowsAffected()
	if err != nil {
		log.Printf("%s: rows affected: %v", op, err)
		return false
	}
	return affected > 0
}
