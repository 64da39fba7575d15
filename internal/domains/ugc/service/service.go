package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"aura-ugc-engine/internal/domains/ugc/model"
	"aura-ugc-engine/internal/domains/ugc/repository"
	"aura-ugc-engine/internal/domains/ugc/scorer"
	pkgcache "aura-ugc-engine/pkg/cache"
)

// ========================================
// UGC Moderation Service
// ========================================

// Moderator attributed when an action carries no explicit moderator id.
const SystemModeratorID = "system"

const approvedFeedTTL = 30 * time.Second

type UGCService interface {
	Submit(ctx context.Context, req *model.SubmitRequest) (*model.ContentItem, error)
	PendingFor(ctx context.Context, siteID string) ([]*model.ContentItem, error)
	ApprovedFor(ctx context.Context, siteID, productID string) ([]*model.ContentItem, error)
	Approve(ctx context.Context, id int64, req *model.ModerationRequest) (*model.ContentItem, error)
	Reject(ctx context.Context, id int64, req *model.ModerationRequest) (*model.ContentItem, error)
}

type ugcService struct {
	repo   repository.ModerationRepository
	scorer scorer.Scorer
	cache  pkgcache.Cache
}

// NewUGCService wires the moderation pipeline. cache may be nil, in
// which case the approved feed always hits the repository.
func NewUGCService(repo repository.ModerationRepository, sc scorer.Scorer, cache pkgcache.Cache) UGCService {
	return &ugcService{repo: repo, scorer: sc, cache: cache}
}

// Submit validates, scores, and persists a new item in pending state.
// Scoring happens before any write so a failed insert never leaves a
// half-scored row behind.
func (s *ugcService) Submit(ctx context.Context, req *model.SubmitRequest) (*model.ContentItem, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err.Error(), err)
	}
	req.ApplyDefaults()

	assessment := s.scorer.Score(ctx, req)

	now := time.Now().UTC()
	item := &model.ContentItem{
		SiteID:      req.SiteID,
		CustomerID:  req.CustomerID,
		ProductID:   req.ProductID,
		OrderID:     req.OrderID,
		Channel:     req.Channel,
		ContentType: req.Type,
		Rating:      req.Rating,
		Text:        req.Text,
		MediaURL:    req.MediaURL,
		Status:      model.StatusPending,
		AIScore:     assessment.Score,
		AILabel:     assessment.Label,
		AIReasons:   assessment.Reasons,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, model.NewPersistenceError("failed to store submission", err)
	}

	log.Info().
		Str("site_id", item.SiteID).
		Int64("item_id", item.ID).
		Float64("ai_score", item.AIScore).
		Str("ai_label", item.AILabel).
		Msg("Submission accepted")

	return item, nil
}

func (s *ugcService) PendingFor(ctx context.Context, siteID string) ([]*model.ContentItem, error) {
	items, err := s.repo.ListPending(ctx, siteID)
	if err != nil {
		return nil, model.NewPersistenceError("failed to list pending items", err)
	}
	return items, nil
}

// ApprovedFor serves the public feed through a short-lived cache. Cache
// failures are logged and absorbed; the repository is the source of truth.
func (s *ugcService) ApprovedFor(ctx context.Context, siteID, productID string) ([]*model.ContentItem, error) {
	key := approvedFeedKey(siteID, productID)

	if s.cache != nil {
		var cached []*model.ContentItem
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Debug().Err(err).Str("key", key).Msg("Approved feed cache read failed")
		} else if found {
			return cached, nil
		}
	}

	items, err := s.repo.ListApproved(ctx, siteID, productID)
	if err != nil {
		return nil, model.NewPersistenceError("failed to list approved items", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, items, approvedFeedTTL); err != nil {
			log.Debug().Err(err).Str("key", key).Msg("Approved feed cache write failed")
		}
	}
	return items, nil
}

func (s *ugcService) Approve(ctx context.Context, id int64, req *model.ModerationRequest) (*model.ContentItem, error) {
	return s.transition(ctx, id, model.StatusApproved, req)
}

func (s *ugcService) Reject(ctx context.Context, id int64, req *model.ModerationRequest) (*model.ContentItem, error) {
	return s.transition(ctx, id, model.StatusRejected, req)
}

func (s *ugcService) transition(ctx context.Context, id int64, status string, req *model.ModerationRequest) (*model.ContentItem, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err.Error(), err)
	}

	moderatorID := SystemModeratorID
	if req.ModeratorID != nil && *req.ModeratorID != "" {
		moderatorID = *req.ModeratorID
	}

	item, err := s.repo.UpdateStatus(ctx, repository.StatusUpdate{
		ID:             id,
		SiteID:         req.SiteID,
		Status:         status,
		ModeratorID:    moderatorID,
		ModeratorNotes: req.ModeratorNotes,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrItemNotFound):
			return nil, model.NewNotFoundError("content item not found")
		case errors.Is(err, repository.ErrAlreadyModerated):
			return nil, model.NewConflictError("content item already moderated")
		default:
			return nil, model.NewPersistenceError("failed to update item status", err)
		}
	}

	s.invalidateApprovedFeed(ctx, item.SiteID, item.ProductID)

	log.Info().
		Str("site_id", item.SiteID).
		Int64("item_id", item.ID).
		Str("status", item.Status).
		Str("moderator_id", moderatorID).
		Msg("Moderation decision applied")

	return item, nil
}

func (s *ugcService) invalidateApprovedFeed(ctx context.Context, siteID, productID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, approvedFeedKey(siteID, productID)); err != nil {
		log.Debug().Err(err).Msg("Approved feed cache invalidation failed")
	}
}

func approvedFeedKey(siteID, productID string) string {
	return fmt.Sprintf("ugc:approved:%s:%s", siteID, productID)
}
