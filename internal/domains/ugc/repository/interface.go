package repository

import (
	"context"
	"errors"

	"aura-ugc-engine/internal/domains/ugc/model"
)

var (
	ErrItemNotFound = errors.New("content item not found")

	// Returned when a status transition targets an item that has
	// already left the pending state.
	ErrAlreadyModerated = errors.New("content item already moderated")
)

// StatusUpdate describes a single moderation transition.
type StatusUpdate struct {
	ID             int64
	SiteID         string
	Status         string
	ModeratorID    string
	ModeratorNotes *string
}

type ModerationRepository interface {
	// Create persists a new item and assigns its id.
	Create(ctx context.Context, item *model.ContentItem) error

	// GetByID is tenant-scoped: an id belonging to another site
	// behaves as not found.
	GetByID(ctx context.Context, siteID string, id int64) (*model.ContentItem, error)

	ListPending(ctx context.Context, siteID string) ([]*model.ContentItem, error)
	ListApproved(ctx context.Context, siteID, productID string) ([]*model.ContentItem, error)

	// UpdateStatus applies a transition only if the item is still
	// pending. Returns ErrItemNotFound or ErrAlreadyModerated otherwise.
	UpdateStatus(ctx context.Context, update StatusUpdate) (*model.ContentItem, error)
}
