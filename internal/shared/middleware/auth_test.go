package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura-ugc-engine/pkg/jwt"
)

func newProtectedRouter(t *testing.T, manager *jwt.Manager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", Auth(manager), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"moderator_id": c.GetString("moderator_id")})
	})
	return router
}

func getProtected(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRejectsMissingOrMalformedHeader(t *testing.T) {
	router := newProtectedRouter(t, jwt.NewManager("test-secret", 1))

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic abc123"},
		{"bare token", "just-a-token"},
		{"garbage token", "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := getProtected(router, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestAuthRejectsTokenFromOtherSecret(t *testing.T) {
	router := newProtectedRouter(t, jwt.NewManager("test-secret", 1))

	forged, err := jwt.NewManager("other-secret", 1).GenerateAccessToken("mod-1", "moderator@example.com")
	require.NoError(t, err)

	w := getProtected(router, "Bearer "+forged)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthAdmitsValidTokenAndSetsClaims(t *testing.T) {
	manager := jwt.NewManager("test-secret", 1)
	router := newProtectedRouter(t, manager)

	token, err := manager.GenerateAccessToken("mod-7", "moderator@example.com")
	require.NoError(t, err)

	w := getProtected(router, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "mod-7", body["moderator_id"])
}
