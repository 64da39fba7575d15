package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"aura-ugc-engine/internal/config"
	"aura-ugc-engine/internal/domains/auth/model"
	"aura-ugc-engine/internal/shared/response"
	"aura-ugc-engine/pkg/jwt"
)

// AuthHandler issues moderator tokens against the configured admin
// credential. There is a single moderator account per deployment.
type AuthHandler struct {
	admin      config.AdminConfig
	jwtManager *jwt.Manager
}

func NewAuthHandler(admin config.AdminConfig, jwtManager *jwt.Manager) *AuthHandler {
	return &AuthHandler{admin: admin, jwtManager: jwtManager}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if h.admin.PasswordHash == "" || req.Email != h.admin.Email {
		response.Unauthorized(c, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.admin.PasswordHash), []byte(req.Password)); err != nil {
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := h.jwtManager.GenerateAccessToken("moderator-1", req.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to issue token")
		return
	}

	response.JSON(c, http.StatusOK, model.LoginResponse{Token: token})
}
