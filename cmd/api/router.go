package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aura-ugc-engine/internal/shared/middleware"
	"aura-ugc-engine/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	api := router.Group("/api")
	{
		setupAuthRoutes(api, c)
		setupTenantRoutes(api, c)
		setupUGCRoutes(api, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
	}
}

// ========================================
// TENANT CONFIG ROUTES
// ========================================
func setupTenantRoutes(api *gin.RouterGroup, c *container.Container) {
	// Fetched by the storefront widget on every page load.
	api.GET("/aura-config", c.TenantHandler.GetConfig)
}

// ========================================
// UGC ROUTES
// ========================================
func setupUGCRoutes(api *gin.RouterGroup, c *container.Container) {
	ugc := api.Group("/ugc")
	{
		// Public widget surface
		ugc.POST("/submit", c.UGCHandler.Submit)
		ugc.GET("/approved", c.UGCHandler.ApprovedFeed)

		// Moderation console surface
		moderation := ugc.Group("/moderation")
		moderation.Use(middleware.Auth(c.JWTManager))
		{
			moderation.GET("/pending", c.UGCHandler.ListPending)
			moderation.POST("/:id/approve", c.UGCHandler.Approve)
			moderation.POST("/:id/reject", c.UGCHandler.Reject)
		}
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis (advisory only, cache loss is tolerated)
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
