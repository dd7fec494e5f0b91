// Package postgres provides a journal backend persisting submission
// outcomes to a PostgreSQL table.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ajiwo/crptgate/journal"
)

// Config configures the PostgreSQL journal backend.
type Config struct {
	ConnString string
	MaxConns   int32
	MinConns   int32
}

// Backend appends one row per submission outcome.
type Backend struct {
	pool *pgxpool.Pool
}

// New initializes a PostgreSQL journal backend and ensures its table exists.
func New(config Config) (*Backend, error) {
	if config.MaxConns == 0 {
		config.MaxConns = 10
	}
	if config.MinConns == 0 {
		config.MinConns = 2
	}

	poolConfig, err := pgxpool.ParseConfig(config.ConnString)
	if err != nil {
		return nil, NewInvalidConnStringError(err)
	}

	poolConfig.MaxConns = config.MaxConns
	poolConfig.MinConns = config.MinConns

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, NewPoolCreateError(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, NewPingFailedError(err)
	}

	if err := createTable(context.Background(), pool); err != nil {
		pool.Close()
		return nil, NewCreateTableError(err)
	}

	return &Backend{pool: pool}, nil
}

func createTable(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS crptgate_journal (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			doc_id TEXT NOT NULL,
			status INT NOT NULL,
			attempted TIMESTAMP WITH TIME ZONE NOT NULL,
			err TEXT NOT NULL DEFAULT ''
		)
	`)
	return err
}

// GetPool exposes the underlying pool, mainly for tests.
func (p *Backend) GetPool() *pgxpool.Pool {
	return p.pool
}

func (p *Backend) Record(ctx context.Context, entry journal.Entry) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO crptgate_journal (doc_id, status, attempted, err)
		VALUES ($1, $2, $3, $4)
	`, entry.DocID, entry.Status, entry.Attempted, entry.Err)
	if err != nil {
		return NewRecordFailedError(entry.DocID, err)
	}
	return nil
}

func (p *Backend) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}
