// Package sqlstore implements the portal repositories on database/sql. The
// sqlite and postgres drivers supply a Dialect and their own migrations.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/clientportal/internal/portal/store"
)

// Dialect captures what differs between the supported databases.
type Dialect struct {
	Name string

	// Numbered rewrites ? placeholders to $1, $2, ...
	Numbered bool

	// MapError classifies driver errors (unique violations, missing tables)
	// into store sentinels. It must return err unchanged when it does not
	// recognise it.
	MapError func(error) error
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is the non-transactional handle. Drivers embed it and add
// ApplyMigrations.
type Store struct {
	db *sql.DB
	d  Dialect
}

func New(db *sql.DB, d Dialect) *Store {
	return &Store{db: db, d: d}
}

// DB exposes the pool for migrations and tests.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Dialect() Dialect { return s.d }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &txStore{tx: tx, c: conn{q: tx, d: s.d}}, nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) pool() conn { return conn{q: s.db, d: s.d} }

func (s *Store) Identities() store.Identities               { return identitiesRepo{s.pool()} }
func (s *Store) Profiles() store.Profiles                   { return profilesRepo{s.pool()} }
func (s *Store) Clients() store.Clients                     { return clientsRepo{s.pool()} }
func (s *Store) RequiredDocuments() store.RequiredDocuments { return requiredDocsRepo{s.pool()} }
func (s *Store) InviteCodes() store.InviteCodes             { return inviteCodesRepo{s.pool()} }
func (s *Store) Documents() store.Documents                 { return documentsRepo{s.pool()} }
func (s *Store) Reports() store.Reports                     { return reportsRepo{s.pool()} }
func (s *Store) Messages() store.Messages                   { return messagesRepo{s.pool()} }
func (s *Store) Archives() store.Archives                   { return archivesRepo{s.pool()} }
func (s *Store) Outbox() store.Outbox                       { return outboxRepo{s.pool()} }

type txStore struct {
	tx *sql.Tx
	c  conn
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error               { return nil }
func (t *txStore) Ping(context.Context) error { return nil }
func (t *txStore) ApplyMigrations() error     { return nil }
func (t *txStore) Tx(context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}
func (t *txStore) WithTx(context.Context, func(store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Identities() store.Identities               { return identitiesRepo{t.c} }
func (t *txStore) Profiles() store.Profiles                   { return profilesRepo{t.c} }
func (t *txStore) Clients() store.Clients                     { return clientsRepo{t.c} }
func (t *txStore) RequiredDocuments() store.RequiredDocuments { return requiredDocsRepo{t.c} }
func (t *txStore) InviteCodes() store.InviteCodes             { return inviteCodesRepo{t.c} }
func (t *txStore) Documents() store.Documents                 { return documentsRepo{t.c} }
func (t *txStore) Reports() store.Reports                     { return reportsRepo{t.c} }
func (t *txStore) Messages() store.Messages                   { return messagesRepo{t.c} }
func (t *txStore) Archives() store.Archives                   { return archivesRepo{t.c} }
func (t *txStore) Outbox() store.Outbox                       { return outboxRepo{t.c} }

// conn runs dialect-adjusted statements against a pool or a transaction.
type conn struct {
	q querier
	d Dialect
}

func (c conn) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := c.q.ExecContext(ctx, c.rebind(query), args...)
	return res, c.mapErr(err)
}

// execCount runs query and returns the number of affected rows.
func (c conn) execCount(ctx context.Context, query string, args ...any) (int, error) {
	res, err := c.exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// execOne runs query and returns ErrNotFound when it touched no row.
func (c conn) execOne(ctx context.Context, query string, args ...any) error {
	n, err := c.execCount(ctx, query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (c conn) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := c.q.QueryContext(ctx, c.rebind(query), args...)
	return rows, c.mapErr(err)
}

func (c conn) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return c.q.QueryRowContext(ctx, c.rebind(query), args...)
}

func (c conn) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := c.queryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, c.mapErr(err)
	}
	return n, nil
}

func (c conn) mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return store.ErrNotFound
	case c.d.MapError != nil:
		return c.d.MapError(err)
	}
	return err
}

func (c conn) rebind(query string) string {
	if !c.d.Numbered || !strings.Contains(query, "?") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// collect drains rows through scan.
func collect[T any](c conn, rows *sql.Rows, scan func(scanner) (T, error)) ([]T, error) {
	defer rows.Close()
	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, c.mapErr(err)
		}
		out = append(out, v)
	}
	return out, c.mapErr(rows.Err())
}
