package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/peoplehub/hr-platform/docs"
	"github.com/peoplehub/hr-platform/internal/api/handler"
	"github.com/peoplehub/hr-platform/internal/api/middleware"
	"github.com/peoplehub/hr-platform/internal/core/domain"
	"github.com/peoplehub/hr-platform/internal/core/service"
	"github.com/peoplehub/hr-platform/internal/infrastructure/config"
	mongodb "github.com/peoplehub/hr-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/peoplehub/hr-platform/internal/infrastructure/db/redis"
	"github.com/peoplehub/hr-platform/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit dispatcher is returned alongside so the caller controls its
// worker lifecycle.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("hr_identity"))

	// --- Dependencies ---
	identityRepo := mongodb.NewIdentityRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	menuRepo := mongodb.NewMenuRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(identityRepo, tokenService, domain.LockoutPolicy{
		Threshold:    cfg.Auth.LockoutThreshold,
		LockDuration: cfg.Auth.LockoutDuration,
	}, log)
	menuService := service.NewMenuService(menuRepo, roleRepo, log)
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(0, auditService, log)

	throttle := redisdb.NewLoginThrottle(rdb, cfg.Throttle.Limit, cfg.Throttle.Window)

	authHandler := handler.NewAuthHandler(authService, dispatcher)
	menuHandler := handler.NewMenuHandler(menuService)
	adminHandler := handler.NewAdminHandler(authService)

	authMiddleware := middleware.Auth(tokenService)

	// --- Auth routes ---
	e.POST("/v1/auth/login", authHandler.Login, middleware.Throttle(throttle, log))

	// --- Authenticated routes ---
	e.GET("/v1/menu", menuHandler.Menu, authMiddleware)
	e.POST("/v1/admin/identities/:username/unlock", adminHandler.Unlock,
		authMiddleware, middleware.RequireLevel(roleRepo, domain.AdminLevel))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operability endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, dispatcher
}
