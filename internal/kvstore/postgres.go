package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const pgUndefinedTable = "42P01"

// Postgres stores every key as one row of kv_store (see migrations).
type Postgres struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPostgres(db *dbpg.DB) *Postgres {
	return &Postgres{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_store WHERE key = $1`

	row, err := p.db.QueryRowWithRetry(ctx, p.strategy, query, key)
	if err != nil {
		return nil, fmt.Errorf("get key %q: %w", key, wrapPgErr(err))
	}

	var value []byte
	if err = row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan key %q: %w", key, wrapPgErr(err))
	}

	return value, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv_store (key, value, updated_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (key) DO UPDATE
			  SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	_, err := p.db.ExecWithRetry(ctx, p.strategy, query, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("set key %q: %w", key, wrapPgErr(err))
	}

	return nil
}

func (p *Postgres) Remove(ctx context.Context, key string) error {
	query := `DELETE FROM kv_store WHERE key = $1`

	if _, err := p.db.ExecWithRetry(ctx, p.strategy, query, key); err != nil {
		return fmt.Errorf("remove key %q: %w", key, wrapPgErr(err))
	}

	return nil
}

func wrapPgErr(err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
		return fmt.Errorf("kv_store table missing, migrations not applied: %w", err)
	}
	return err
}
