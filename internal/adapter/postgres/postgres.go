// Package postgres implements the domain store using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"caltrack/internal/domain"

	"github.com/lib/pq"
)

// PostgreSQL error codes translated into domain errors.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// DB wraps a *sql.DB and implements domain.Store.
type DB struct {
	sql *sql.DB
}

var _ domain.Store = (*DB)(nil)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

// InTx runs fn inside a database transaction. The transaction is committed
// when fn returns nil and rolled back otherwise, including on panic.
func (d *DB) InTx(ctx context.Context, fn func(r domain.Repos) error) (err error) {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(reposFor(tx)); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func reposFor(q querier) domain.Repos {
	return domain.Repos{
		Users:     &userRepo{q: q},
		Entries:   &entryRepo{q: q},
		Weights:   &weightRepo{q: q},
		Favorites: &favoriteRepo{q: q},
	}
}

// mapError translates driver errors into domain errors, keeping the original
// error in the chain.
func mapError(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w: %v", what, domain.ErrConflict, err)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w: %v", what, domain.ErrNotFound, err)
		}
	}
	return fmt.Errorf("%s: %w", what, err)
}

// expectOne turns a zero-row write into ErrNotFound.
func expectOne(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	return nil
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name TEXT UNIQUE NOT NULL,
			calorie_goal INTEGER NOT NULL DEFAULT 2000,
			protein_goal INTEGER NOT NULL DEFAULT 150,
			carb_goal INTEGER NOT NULL DEFAULT 200,
			fat_goal INTEGER NOT NULL DEFAULT 65,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS food_entries (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			date DATE NOT NULL,
			meal_type TEXT NOT NULL CHECK(meal_type IN ('breakfast','lunch','dinner','snack')),
			name TEXT NOT NULL,
			brand TEXT,
			barcode TEXT,
			serving_size DOUBLE PRECISION NOT NULL DEFAULT 100,
			servings DOUBLE PRECISION NOT NULL DEFAULT 1,
			calories DOUBLE PRECISION NOT NULL DEFAULT 0,
			protein DOUBLE PRECISION NOT NULL DEFAULT 0,
			carbs DOUBLE PRECISION NOT NULL DEFAULT 0,
			fat DOUBLE PRECISION NOT NULL DEFAULT 0,
			fiber DOUBLE PRECISION NOT NULL DEFAULT 0,
			sugar DOUBLE PRECISION NOT NULL DEFAULT 0,
			source TEXT NOT NULL DEFAULT 'manual',
			external_id TEXT,
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_food_entries_user_date ON food_entries(user_id, date);`,
		`CREATE TABLE IF NOT EXISTS weight_entries (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			date DATE NOT NULL,
			weight DOUBLE PRECISION NOT NULL,
			note TEXT,
			created_at TIMESTAMPTZ NOT NULL,
			UNIQUE (user_id, date)
		);`,
		`CREATE TABLE IF NOT EXISTS favorite_foods (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			name TEXT NOT NULL,
			brand TEXT,
			barcode TEXT,
			calories_per_100g DOUBLE PRECISION NOT NULL DEFAULT 0,
			protein_per_100g DOUBLE PRECISION NOT NULL DEFAULT 0,
			carbs_per_100g DOUBLE PRECISION NOT NULL DEFAULT 0,
			fat_per_100g DOUBLE PRECISION NOT NULL DEFAULT 0,
			source TEXT NOT NULL DEFAULT 'openfoodfacts',
			external_id TEXT,
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_favorite_foods_user_id ON favorite_foods(user_id);`,
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
