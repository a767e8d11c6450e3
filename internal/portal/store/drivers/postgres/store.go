// Package postgres is the production store driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/aussiebroadwan/clientportal/internal/portal/store"
	"github.com/aussiebroadwan/clientportal/internal/portal/store/drivers/sqlstore"
)

const (
	codeUniqueViolation = "23505"
	codeUndefinedTable  = "42P01"
)

type Store struct {
	*sqlstore.Store
}

var _ store.Store = (*Store)(nil)

// NewStore opens a pool against dsn and verifies it is reachable.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	return &Store{
		Store: sqlstore.New(db, sqlstore.Dialect{Name: "postgres", Numbered: true, MapError: mapError}),
	}, nil
}

func mapError(err error) error {
	var pe *pq.Error
	if errors.As(err, &pe) {
		switch pe.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %v", store.ErrAlreadyExists, err)
		case codeUndefinedTable:
			return fmt.Errorf("%w: %v", store.ErrSchemaMissing, err)
		}
	}
	return err
}
