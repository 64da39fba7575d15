package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"aura-ugc-engine/internal/domains/ugc/model"
)

// MemoryRepository is an in-memory ModerationRepository with the same
// transition semantics as the Postgres implementation. Used in tests.
type MemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*model.ContentItem
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID: 1,
		items:  make(map[int64]*model.ContentItem),
	}
}

func (r *MemoryRepository) Create(_ context.Context, item *model.ContentItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++

	stored := *item
	r.items[stored.ID] = &stored
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, siteID string, id int64) (*model.ContentItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok || item.SiteID != siteID {
		return nil, ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *MemoryRepository) ListPending(_ context.Context, siteID string) ([]*model.ContentItem, error) {
	return r.list(func(i *model.ContentItem) bool {
		return i.SiteID == siteID && i.Status == model.StatusPending
	}), nil
}

func (r *MemoryRepository) ListApproved(_ context.Context, siteID, productID string) ([]*model.ContentItem, error) {
	return r.list(func(i *model.ContentItem) bool {
		return i.SiteID == siteID && i.ProductID == productID && i.Status == model.StatusApproved
	}), nil
}

func (r *MemoryRepository) UpdateStatus(_ context.Context, update StatusUpdate) (*model.ContentItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[update.ID]
	if !ok || item.SiteID != update.SiteID {
		return nil, ErrItemNotFound
	}
	if item.Status != model.StatusPending {
		return nil, ErrAlreadyModerated
	}

	item.Status = update.Status
	moderatorID := update.ModeratorID
	item.ModeratorID = &moderatorID
	item.ModeratorNotes = update.ModeratorNotes
	item.UpdatedAt = time.Now().UTC()

	copied := *item
	return &copied, nil
}

func (r *MemoryRepository) list(match func(*model.ContentItem) bool) []*model.ContentItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*model.ContentItem, 0)
	for _, item := range r.items {
		if match(item) {
			copied := *item
			out = append(out, &copied)
		}
	}
	// Newest first, matching the SQL ordering.
	sort.Slice(out, func(a, b int) bool {
		if out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].ID > out[b].ID
		}
		return out[a].CreatedAt.After(out[b].CreatedAt)
	})
	return out
}
