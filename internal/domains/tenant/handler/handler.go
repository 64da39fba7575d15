package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aura-ugc-engine/internal/domains/tenant/service"
	"aura-ugc-engine/internal/shared/response"
)

type TenantHandler struct {
	resolver service.Resolver
}

func NewTenantHandler(resolver service.Resolver) *TenantHandler {
	return &TenantHandler{resolver: resolver}
}

// GetConfig handles GET /api/aura-config?site_id=...
func (h *TenantHandler) GetConfig(c *gin.Context) {
	siteID := c.Query("site_id")
	if siteID == "" {
		response.BadRequest(c, "site_id is required")
		return
	}

	cfg := h.resolver.Resolve(siteID)
	response.JSON(c, http.StatusOK, cfg)
}
