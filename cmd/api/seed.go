package main

import (
	"context"
	"log"
	"time"

	"aura-ugc-engine/internal/domains/ugc/model"
	"aura-ugc-engine/pkg/container"
)

// seedDemoData inserts one pending demo review so a fresh development
// database has something to moderate. Skipped in production and when
// the demo site already has data.
func seedDemoData(c *container.Container) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	const demoSite = "demo-site"

	pending, err := c.UGCRepo.ListPending(ctx, demoSite)
	if err != nil {
		log.Printf("⚠️  Demo seed skipped: %v", err)
		return
	}
	if len(pending) > 0 {
		return
	}

	rating := 5
	now := time.Now().UTC()
	item := &model.ContentItem{
		SiteID:      demoSite,
		ProductID:   "demo-product",
		Channel:     model.DefaultChannel,
		ContentType: model.DefaultContentType,
		Rating:      &rating,
		Text:        "Arrived quickly and the build quality is better than expected. Would order again.",
		Status:      model.StatusPending,
		AIScore:     0.9,
		AILabel:     model.AILabelRealPositive,
		AIReasons:   "seeded demo item",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.UGCRepo.Create(ctx, item); err != nil {
		log.Printf("⚠️  Demo seed failed: %v", err)
		return
	}
	log.Printf("🌱 Seeded demo review (site=%s, id=%d)", demoSite, item.ID)
}
