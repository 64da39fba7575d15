package database

import (
	"context"
	"fmt"
	"log"
)

// Schema for the UGC moderation table. Status transitions never delete rows,
// so there is no soft-delete column: the full audit trail lives in the table.
const createUGCTableSQL = `
CREATE TABLE IF NOT EXISTS ugc (
	id              BIGSERIAL PRIMARY KEY,
	site_id         TEXT NOT NULL,
	customer_id     TEXT,
	product_id      TEXT NOT NULL,
	order_id        TEXT,
	channel         TEXT NOT NULL DEFAULT 'web',
	content_type    TEXT NOT NULL DEFAULT 'review',
	rating          INTEGER,
	body            TEXT NOT NULL,
	media_url       TEXT,
	status          TEXT NOT NULL DEFAULT 'pending',
	ai_score        DOUBLE PRECISION NOT NULL,
	ai_label        TEXT NOT NULL,
	ai_reasons      TEXT NOT NULL,
	moderator_id    TEXT,
	moderator_notes TEXT,
	created_at      TIMESTAMPTZ NOT NULL,
	updated_at      TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_ugc_site_status_created
	ON ugc (site_id, status, created_at DESC);

CREATE INDEX IF NOT EXISTS idx_ugc_site_product_status
	ON ugc (site_id, product_id, status);
`

// Migrate creates the ugc table and its indexes if they do not exist yet.
// Idempotent; runs at startup.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	if _, err := db.Pool.Exec(ctx, createUGCTableSQL); err != nil {
		return fmt.Errorf("failed to create ugc table: %w", err)
	}

	log.Println("[DATABASE] UGC table ready")
	return nil
}
