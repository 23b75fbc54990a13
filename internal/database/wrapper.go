// Package database contains the PostgreSQL access layer.
package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/matt-dz/foodgram/internal/sql"
)

type Pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store is a Querier that can also run a group of queries atomically.
type Store interface {
	Querier

	// InTx runs fn inside a single transaction. The transaction is committed
	// when fn returns nil and rolled back otherwise.
	InTx(ctx context.Context, fn func(q Querier) error) error
}

type Database struct {
	*Queries

	Pool Pool
}

var _ Store = (*Database)(nil)

func NewDatabase(pool *pgxpool.Pool) *Database {
	return &Database{
		Queries: New(pool),
		Pool:    pool,
	}
}

func (d *Database) InTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(d.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// EnsureSchema applies the embedded schema when the users table is missing.
func (d *Database) EnsureSchema(ctx context.Context) error {
	exists, err := d.CheckUsersTableExists(ctx)
	if err != nil {
		return fmt.Errorf("ensuring schema exists: %w", err)
	}

	if exists {
		return nil
	}

	if _, err := d.db.Exec(ctx, sql.Schema()); err != nil {
		return fmt.Errorf("applying database schema: %w", err)
	}

	return nil
}
