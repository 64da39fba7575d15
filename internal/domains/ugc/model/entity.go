package model

import "time"

// Moderation lifecycle. Items are born pending and move exactly once
// to approved or rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ContentItem is a single piece of user-generated content together with
// its AI assessment and moderation state.
type ContentItem struct {
	ID             int64     `json:"id"`
	SiteID         string    `json:"site_id"`
	CustomerID     *string   `json:"customer_id,omitempty"`
	ProductID      string    `json:"product_id"`
	OrderID        *string   `json:"order_id,omitempty"`
	Channel        string    `json:"channel"`
	ContentType    string    `json:"type"`
	Rating         *int      `json:"rating,omitempty"`
	Text           string    `json:"text"`
	MediaURL       *string   `json:"media_url,omitempty"`
	Status         string    `json:"status"`
	AIScore        float64   `json:"ai_score"`
	AILabel        string    `json:"ai_label"`
	AIReasons      string    `json:"ai_reasons"`
	ModeratorID    *string   `json:"moderator_id,omitempty"`
	ModeratorNotes *string   `json:"moderator_notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (i *ContentItem) IsPending() bool {
	return i.Status == StatusPending
}
