// AngelaMos | 2026
// postgres.go

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// PostgresGateway keeps the durable record as a single jsonb row keyed by
// the fixed record key. The aggregate stays one document; Postgres is only
// a more durable shelf for it, still read and written wholesale.
type PostgresGateway struct {
	db  *sqlx.DB
	key string
}

const stateSchema = `
	CREATE TABLE IF NOT EXISTS app_state (
		record_key TEXT PRIMARY KEY,
		doc        JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

func NewPostgresGateway(
	ctx context.Context,
	url, key string,
) (*PostgresGateway, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", url)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if _, err := db.ExecContext(ctx, stateSchema); err != nil {
		_ = db.Close() //nolint:errcheck // cleanup on setup failure
		return nil, fmt.Errorf("ensure app_state table: %w", err)
	}

	return &PostgresGateway{db: db, key: key}, nil
}

func (g *PostgresGateway) Load(ctx context.Context) ([]byte, error) {
	query := `SELECT doc FROM app_state WHERE record_key = $1`

	var data []byte
	err := g.db.GetContext(ctx, &data, query, g.key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("select record row: %w", err)
	}

	return data, nil
}

func (g *PostgresGateway) Save(ctx context.Context, data []byte) error {
	query := `
		INSERT INTO app_state (record_key, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (record_key)
		DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()`

	if _, err := g.db.ExecContext(ctx, query, g.key, data); err != nil {
		return fmt.Errorf("upsert record row: %w", err)
	}

	return nil
}

func (g *PostgresGateway) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := g.db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

func (g *PostgresGateway) Close() error {
	return g.db.Close()
}
