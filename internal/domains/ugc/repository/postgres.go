package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"aura-ugc-engine/internal/domains/ugc/model"
)

// ========================================
// Postgres Moderation Repository
// ========================================

const itemColumns = `id, site_id, customer_id, product_id, order_id, channel, content_type,
	rating, body, media_url, status, ai_score, ai_label, ai_reasons,
	moderator_id, moderator_notes, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) ModerationRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, item *model.ContentItem) error {
	query := `
		INSERT INTO ugc (site_id, customer_id, product_id, order_id, channel, content_type,
			rating, body, media_url, status, ai_score, ai_label, ai_reasons,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		item.SiteID, item.CustomerID, item.ProductID, item.OrderID,
		item.Channel, item.ContentType, item.Rating, item.Text, item.MediaURL,
		item.Status, item.AIScore, item.AILabel, item.AIReasons,
		item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert content item: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, siteID string, id int64) (*model.ContentItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM ugc WHERE id = $1 AND site_id = $2`, itemColumns)

	item, err := scanItem(r.pool.QueryRow(ctx, query, id, siteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("get content item: %w", err)
	}
	return item, nil
}

func (r *postgresRepository) ListPending(ctx context.Context, siteID string) ([]*model.ContentItem, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM ugc
		WHERE site_id = $1 AND status = $2
		ORDER BY created_at DESC, id DESC`, itemColumns)

	return r.queryItems(ctx, query, siteID, model.StatusPending)
}

func (r *postgresRepository) ListApproved(ctx context.Context, siteID, productID string) ([]*model.ContentItem, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM ugc
		WHERE site_id = $1 AND product_id = $2 AND status = $3
		ORDER BY created_at DESC, id DESC`, itemColumns)

	return r.queryItems(ctx, query, siteID, productID, model.StatusApproved)
}

// UpdateStatus is a conditional update: the status predicate makes the
// pending -> approved/rejected transition atomic, so two concurrent
// moderators cannot both win.
func (r *postgresRepository) UpdateStatus(ctx context.Context, update StatusUpdate) (*model.ContentItem, error) {
	query := fmt.Sprintf(`
		UPDATE ugc
		SET status = $1, moderator_id = $2, moderator_notes = $3, updated_at = NOW()
		WHERE id = $4 AND site_id = $5 AND status = $6
		RETURNING %s`, itemColumns)

	item, err := scanItem(r.pool.QueryRow(ctx, query,
		update.Status, update.ModeratorID, update.ModeratorNotes,
		update.ID, update.SiteID, model.StatusPending,
	))
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("update content item status: %w", err)
	}

	// Zero rows means either the item does not exist for this site or
	// it is no longer pending. Re-fetch to tell the two apart.
	if _, getErr := r.GetByID(ctx, update.SiteID, update.ID); getErr != nil {
		if errors.Is(getErr, ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, getErr
	}
	return nil, ErrAlreadyModerated
}

func (r *postgresRepository) queryItems(ctx context.Context, query string, args ...interface{}) ([]*model.ContentItem, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query content items: %w", err)
	}
	defer rows.Close()

	items := make([]*model.ContentItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content items: %w", err)
	}
	return items, nil
}

func scanItem(row pgx.Row) (*model.ContentItem, error) {
	var item model.ContentItem
	err := row.Scan(
		&item.ID, &item.SiteID, &item.CustomerID, &item.ProductID, &item.OrderID,
		&item.Channel, &item.ContentType, &item.Rating, &item.Text, &item.MediaURL,
		&item.Status, &item.AIScore, &item.AILabel, &item.AIReasons,
		&item.ModeratorID, &item.ModeratorNotes, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
