package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aura-ugc-engine/internal/domains/tenant/model"
)

func TestResolverPlanAssignment(t *testing.T) {
	r := NewResolver([]string{"acme-pro", "globex"})

	assert.Equal(t, model.PlanPro, r.Plan("acme-pro"))
	assert.Equal(t, model.PlanPro, r.Plan("globex"))
	assert.Equal(t, model.PlanStarter, r.Plan("unknown-site"))
}

func TestResolveStarterDefaults(t *testing.T) {
	r := NewResolver(nil)

	cfg := r.Resolve("corner-shop")

	assert.Equal(t, "corner-shop", cfg.SiteID)
	assert.Equal(t, model.PlanStarter, cfg.Plan)
	assert.True(t, cfg.Tools[model.ToolReviews].Enabled)
	assert.False(t, cfg.Tools[model.ToolSEO].Enabled)
	assert.False(t, cfg.Tools[model.ToolSchema].Enabled)
}

func TestResolveProEnablesAllTools(t *testing.T) {
	r := NewResolver([]string{"acme-pro"})

	cfg := r.Resolve("acme-pro")

	assert.Equal(t, model.PlanPro, cfg.Plan)
	for name, tool := range cfg.Tools {
		assert.True(t, tool.Enabled, "tool %s should be enabled on pro", name)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	r := NewResolver([]string{"acme-pro"})

	first := r.Resolve("acme-pro")
	second := r.Resolve("acme-pro")

	assert.Equal(t, first, second)
}
