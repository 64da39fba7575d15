package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"aura-ugc-engine/internal/config"
	infraCache "aura-ugc-engine/internal/infrastructure/cache"
	"aura-ugc-engine/internal/infrastructure/database"
	"aura-ugc-engine/pkg/cache"
	"aura-ugc-engine/pkg/jwt"

	authHandler "aura-ugc-engine/internal/domains/auth/handler"
	tenantHandler "aura-ugc-engine/internal/domains/tenant/handler"
	tenantService "aura-ugc-engine/internal/domains/tenant/service"
	ugcHandler "aura-ugc-engine/internal/domains/ugc/handler"
	ugcRepo "aura-ugc-engine/internal/domains/ugc/repository"
	ugcScorer "aura-ugc-engine/internal/domains/ugc/scorer"
	ugcService "aura-ugc-engine/internal/domains/ugc/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application. It is the root
// of the dependency graph; all components are singletons.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// ========================================
	// DOMAIN LAYER
	// ========================================

	UGCRepo        ugcRepo.ModerationRepository
	Scorer         ugcScorer.Scorer
	UGCService     ugcService.UGCService
	TenantResolver tenantService.Resolver

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	UGCHandler    *ugcHandler.UGCHandler
	TenantHandler *tenantHandler.TenantHandler
	AuthHandler   *authHandler.AuthHandler
}

// NewContainer builds the whole dependency graph in order:
// config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		return nil, fmt.Errorf("database migration failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis failure is non-critical: the approved feed just loses its
	// cache layer and reads go straight to Postgres.
	if err := redisCache.Connect(context.Background()); err != nil {
		log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
	} else {
		log.Println("✅ Redis connected")
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// ========================================
	// STEP 4: INITIALIZE DOMAIN LAYER
	// ========================================
	log.Println("📦 Initializing domain components...")

	c.UGCRepo = ugcRepo.NewPostgresRepository(c.DB.Pool)
	c.Scorer = ugcScorer.NewAuraCoreScorer(cfg.AuraCore)
	c.UGCService = ugcService.NewUGCService(c.UGCRepo, c.Scorer, c.Cache)
	c.TenantResolver = tenantService.NewResolver(cfg.Tenants.ProSites)

	log.Println("✅ Domain components initialized")

	// ========================================
	// STEP 5: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	c.UGCHandler = ugcHandler.NewUGCHandler(c.UGCService)
	c.TenantHandler = tenantHandler.NewTenantHandler(c.TenantResolver)
	c.AuthHandler = authHandler.NewAuthHandler(cfg.Admin, c.JWTManager)

	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// Cleanup releases resources on shutdown. Called from the server's
// graceful shutdown path.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
