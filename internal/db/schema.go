// Package db owns the SQL schema for the optional history store.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const copyHistoryDDL = `
CREATE TABLE IF NOT EXISTS copy_history (
    id                UUID PRIMARY KEY,
    created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    value_proposition TEXT NOT NULL,
    request_json      JSONB NOT NULL,
    copies_json       JSONB NOT NULL,
    model             TEXT NOT NULL,
    favorite          BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS copy_history_created_at_idx ON copy_history (created_at DESC);
CREATE INDEX IF NOT EXISTS copy_history_copies_idx ON copy_history USING GIN (copies_json jsonb_path_ops);
`

// EnsureSchema applies the history schema. It is idempotent and runs at
// startup when a database is configured.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, copyHistoryDDL); err != nil {
		return fmt.Errorf("apply history schema: %w", err)
	}
	return nil
}
