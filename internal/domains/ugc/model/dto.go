package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SubmitRequest is the widget's intake payload.
type SubmitRequest struct {
	SiteID     string  `json:"site_id"`
	CustomerID *string `json:"customer_id"`
	ProductID  string  `json:"product_id"`
	OrderID    *string `json:"order_id"`
	Channel    string  `json:"channel"`
	Type       string  `json:"type"`
	Rating     *int    `json:"rating"`
	Text       string  `json:"text"`
	MediaURL   *string `json:"media_url"`
}

func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SiteID, validation.Required),
		validation.Field(&r.ProductID, validation.Required),
		validation.Field(&r.Text, validation.Required, validation.Length(1, 5000)),
		validation.Field(&r.Rating, validation.Min(1), validation.Max(5)),
		validation.Field(&r.MediaURL, is.URL),
	)
}

// ApplyDefaults fills the optional channel/type fields.
func (r *SubmitRequest) ApplyDefaults() {
	if r.Channel == "" {
		r.Channel = DefaultChannel
	}
	if r.Type == "" {
		r.Type = DefaultContentType
	}
}

// ModerationRequest carries a moderator's approve/reject decision.
type ModerationRequest struct {
	SiteID         string  `json:"site_id"`
	ModeratorID    *string `json:"moderator_id"`
	ModeratorNotes *string `json:"moderator_notes"`
}

func (r ModerationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SiteID, validation.Required),
	)
}

// AIAssessment is the scorer's verdict on a submission.
type AIAssessment struct {
	Score   float64
	Label   string
	Reasons string
}
