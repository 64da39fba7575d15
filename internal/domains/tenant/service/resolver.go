package service

import (
	"aura-ugc-engine/internal/domains/tenant/model"
)

// ========================================
// Tenant Config Resolver
// ========================================

type Resolver interface {
	Resolve(siteID string) *model.TenantConfig
	Plan(siteID string) string
}

type resolver struct {
	proSites map[string]struct{}
}

func NewResolver(proSites []string) Resolver {
	set := make(map[string]struct{}, len(proSites))
	for _, site := range proSites {
		set[site] = struct{}{}
	}
	return &resolver{proSites: set}
}

func (r *resolver) Plan(siteID string) string {
	if _, ok := r.proSites[siteID]; ok {
		return model.PlanPro
	}
	return model.PlanStarter
}

// Resolve never fails: unknown sites get the starter defaults so the
// widget always has a usable config document.
func (r *resolver) Resolve(siteID string) *model.TenantConfig {
	plan := r.Plan(siteID)

	tools := map[string]model.ToolConfig{
		model.ToolReviews: {Enabled: true},
		model.ToolSEO:     {Enabled: plan == model.PlanPro},
		model.ToolSchema:  {Enabled: plan == model.PlanPro},
	}

	return &model.TenantConfig{
		SiteID: siteID,
		Plan:   plan,
		Tools:  tools,
	}
}
