package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"aura-ugc-engine/internal/domains/ugc/model"
	"aura-ugc-engine/internal/domains/ugc/service"
	"aura-ugc-engine/internal/shared/response"
)

// ========================================
// UGC HTTP Handler
// ========================================

type UGCHandler struct {
	service service.UGCService
}

func NewUGCHandler(svc service.UGCService) *UGCHandler {
	return &UGCHandler{service: svc}
}

// Submit handles POST /api/ugc/submit
func (h *UGCHandler) Submit(c *gin.Context) {
	var req model.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// The widget contract returns the created row with a plain 200.
	response.JSON(c, http.StatusOK, item)
}

// ListPending handles GET /api/ugc/moderation/pending?site_id=...
func (h *UGCHandler) ListPending(c *gin.Context) {
	siteID := c.Query("site_id")
	if siteID == "" {
		response.BadRequest(c, "site_id is required")
		return
	}

	items, err := h.service.PendingFor(c.Request.Context(), siteID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, items)
}

// Approve handles POST /api/ugc/moderation/:id/approve
func (h *UGCHandler) Approve(c *gin.Context) {
	h.moderate(c, h.service.Approve)
}

// Reject handles POST /api/ugc/moderation/:id/reject
func (h *UGCHandler) Reject(c *gin.Context) {
	h.moderate(c, h.service.Reject)
}

// ApprovedFeed handles GET /api/ugc/approved?site_id=...&product_id=...
func (h *UGCHandler) ApprovedFeed(c *gin.Context) {
	siteID := c.Query("site_id")
	productID := c.Query("product_id")
	if siteID == "" || productID == "" {
		response.BadRequest(c, "site_id and product_id are required")
		return
	}

	items, err := h.service.ApprovedFor(c.Request.Context(), siteID, productID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, items)
}

type transitionFunc func(ctx context.Context, id int64, req *model.ModerationRequest) (*model.ContentItem, error)

func (h *UGCHandler) moderate(c *gin.Context, apply transitionFunc) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid item id")
		return
	}

	var req model.ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	// Decisions made through the authenticated surface are attributed
	// to the logged-in moderator unless the payload names one.
	if req.ModeratorID == nil {
		if moderatorID := c.GetString("moderator_id"); moderatorID != "" {
			req.ModeratorID = &moderatorID
		}
	}

	item, err := apply(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, item)
}

func (h *UGCHandler) respondError(c *gin.Context, err error) {
	var ugcErr *model.UGCError
	if errors.As(err, &ugcErr) {
		switch ugcErr.Code {
		case model.ErrCodeValidation:
			response.BadRequest(c, ugcErr.Message)
		case model.ErrCodeNotFound:
			response.NotFound(c, ugcErr.Message)
		case model.ErrCodeConflict:
			response.Conflict(c, ugcErr.Message)
		default:
			response.InternalServerError(c, "Internal server error")
		}
		return
	}
	response.InternalServerError(c, "Internal server error")
}
