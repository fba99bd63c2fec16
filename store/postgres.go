package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createTable = `
	CREATE TABLE IF NOT EXISTS finanzas_documents (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// Postgres stores documents in a single key/value table, created on open.
type Postgres struct {
	pool *pgxpool.Pool
	ctx  context.Context
}

// NewPostgres connects to url and creates the documents table if needed.
func NewPostgres(ctx context.Context, url string) (*Postgres, error) {
	if url == "" {
		return nil, fmt.Errorf("cannot open postgres store: missing connection string")
	}
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, createTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("cannot create documents table: %w", err)
	}
	return &Postgres{pool: pool, ctx: ctx}, nil
}

func (p *Postgres) Load(key string, v any) error {
	var raw []byte
	err := p.pool.QueryRow(p.ctx, `SELECT value FROM finanzas_documents WHERE key = $1`, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load error: cannot query %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("load error: invalid document %q: %w", key, err)
	}
	return nil
}

func (p *Postgres) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("persist error: cannot encode %q: %w", key, err)
	}
	_, err = p.pool.Exec(p.ctx, `
		INSERT INTO finanzas_documents (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, key, string(raw))
	if err != nil {
		return fmt.Errorf("persist error: cannot upsert %q: %w", key, err)
	}
	return nil
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
