package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura-ugc-engine/internal/domains/ugc/model"
	"aura-ugc-engine/internal/domains/ugc/repository"
	"aura-ugc-engine/internal/domains/ugc/service"
)

type stubScorer struct{}

func (stubScorer) Score(_ context.Context, _ *model.SubmitRequest) model.AIAssessment {
	return model.AIAssessment{Score: 0.9, Label: model.AILabelRealPositive, Reasons: "specific detail"}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewUGCService(repository.NewMemoryRepository(), stubScorer{}, nil)
	h := NewUGCHandler(svc)

	router := gin.New()
	api := router.Group("/api")
	{
		api.POST("/ugc/submit", h.Submit)
		api.GET("/ugc/approved", h.ApprovedFeed)
		api.GET("/ugc/moderation/pending", h.ListPending)
		api.POST("/ugc/moderation/:id/approve", h.Approve)
		api.POST("/ugc/moderation/:id/reject", h.Reject)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func submitBody() map[string]interface{} {
	return map[string]interface{}{
		"site_id":    "acme",
		"product_id": "prod-1",
		"rating":     5,
		"text":       "battery lasts the whole weekend, charging is fast",
	}
}

func submitItem(t *testing.T, router *gin.Engine) model.ContentItem {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/ugc/submit", submitBody())
	require.Equal(t, http.StatusOK, w.Code)

	var item model.ContentItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	return item
}

func TestSubmitEndpoint(t *testing.T) {
	router := newTestRouter(t)

	item := submitItem(t, router)

	assert.Equal(t, int64(1), item.ID)
	assert.Equal(t, model.StatusPending, item.Status)
	assert.Equal(t, 0.9, item.AIScore)
	assert.Equal(t, "web", item.Channel)
	assert.Equal(t, "review", item.ContentType)
}

func TestSubmitEndpointValidation(t *testing.T) {
	router := newTestRouter(t)

	body := submitBody()
	delete(body, "text")

	w := doJSON(t, router, http.MethodPost, "/api/ugc/submit", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errBody map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.NotEmpty(t, errBody["error"])
}

func TestSubmitEndpointMalformedJSON(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/ugc/submit", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPendingEndpointRequiresSiteID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/ugc/moderation/pending", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPendingEndpointListsSubmissions(t *testing.T) {
	router := newTestRouter(t)
	submitItem(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/ugc/moderation/pending?site_id=acme", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []model.ContentItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, model.StatusPending, items[0].Status)
}

func TestApproveEndpointFlow(t *testing.T) {
	router := newTestRouter(t)
	item := submitItem(t, router)

	w := doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/ugc/moderation/%d/approve", item.ID),
		map[string]string{"site_id": "acme"})
	require.Equal(t, http.StatusOK, w.Code)

	var approved model.ContentItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &approved))
	assert.Equal(t, model.StatusApproved, approved.Status)
	require.NotNil(t, approved.ModeratorID)
	assert.Equal(t, service.SystemModeratorID, *approved.ModeratorID)

	// The approved feed now carries the item.
	w = doJSON(t, router, http.MethodGet, "/api/ugc/approved?site_id=acme&product_id=prod-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var feed []model.ContentItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.Len(t, feed, 1)
	assert.Equal(t, item.ID, feed[0].ID)
}

func TestApproveEndpointConflictOnSecondDecision(t *testing.T) {
	router := newTestRouter(t)
	item := submitItem(t, router)

	path := fmt.Sprintf("/api/ugc/moderation/%d/approve", item.ID)
	body := map[string]string{"site_id": "acme"}

	w := doJSON(t, router, http.MethodPost, path, body)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, path, body)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/ugc/moderation/%d/reject", item.ID), body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestApproveEndpointUnknownItem(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/ugc/moderation/999/approve",
		map[string]string{"site_id": "acme"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApproveEndpointInvalidID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/ugc/moderation/abc/approve",
		map[string]string{"site_id": "acme"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRejectEndpointKeepsItemOffFeed(t *testing.T) {
	router := newTestRouter(t)
	item := submitItem(t, router)

	w := doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/ugc/moderation/%d/reject", item.ID),
		map[string]string{"site_id": "acme", "moderator_notes": "looks fabricated"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/ugc/approved?site_id=acme&product_id=prod-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var feed []model.ContentItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	assert.Empty(t, feed)
}

func TestApprovedFeedRequiresParams(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/ugc/approved?site_id=acme", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/ugc/approved?product_id=prod-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
