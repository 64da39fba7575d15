package model

// Plan tiers. The allow-list in configuration decides which sites are
// pro; everything else falls back to starter.
const (
	PlanStarter = "starter"
	PlanPro     = "pro"
)

// Tool names exposed in the config payload.
const (
	ToolReviews = "reviews"
	ToolSEO     = "seo"
	ToolSchema  = "schema"
)

type ToolConfig struct {
	Enabled bool `json:"enabled"`
}

// TenantConfig is the per-site capability document served to the widget.
type TenantConfig struct {
	SiteID string                `json:"siteId"`
	Plan   string                `json:"plan"`
	Tools  map[string]ToolConfig `json:"tools"`
}
