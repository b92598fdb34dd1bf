// Package router assembles the gin engine from the application modules.
package router

import (
	"context"
	"net/http"
	"time"

	apphttp "plaza_storefront_backend/internal/http"
	"plaza_storefront_backend/platform/httpkit"
	"plaza_storefront_backend/platform/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	healthTimeout = 2 * time.Second
	adminRole     = "admin"
)

// New builds the engine: global middleware, health and metrics endpoints,
// and the /api/v1 groups handed to every module.
func New(app *apphttp.App) *gin.Engine {
	cfg := app.Config

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(cors.New(corsConfig(cfg)))
	engine.Use(httpkit.ResolveSubdomain(cfg.GetBaseDomain()))

	engine.GET("/healthz", healthHandler(app.Health))
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	limiter := app.PublicRateLimiter
	if limiter == nil {
		limiter = httpkit.NewIPRateLimiter(rate.Limit(cfg.GetPublicRateLimit()), cfg.GetPublicRateBurst(), app.Logger)
	}

	v1 := engine.Group("/api/v1")
	public := v1.Group("/public")
	public.Use(limiter.RateLimit())

	var admin *gin.RouterGroup
	if cfg.GetJWTAccessSecret() != "" {
		admin = v1.Group("/admin")
		admin.Use(httpkit.AuthRequired(cfg), httpkit.RequireRole(adminRole))
	} else {
		app.Logger.Warn("JWT_ACCESS_SECRET not configured; admin routes disabled")
	}

	rc := &apphttp.RouterContext{
		Engine: engine,
		V1:     v1,
		Public: public,
		Admin:  admin,
		Config: cfg,
	}
	for _, module := range app.Modules {
		module.RegisterRoutes(rc)
		app.Logger.Debug("module routes registered", "module", module.Name())
	}

	return engine
}

func corsConfig(cfg apphttp.RouterConfig) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", httpkit.HeaderRequestID},
		ExposeHeaders:    []string{httpkit.HeaderRequestID},
		AllowCredentials: cfg.GetCORSAllowCreds(),
		MaxAge:           12 * time.Hour,
	}
	if cfg.GetCORSAllowAll() || len(cfg.GetCORSOrigins()) == 0 {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.GetCORSOrigins()
	}
	return corsCfg
}

func healthHandler(health apphttp.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
			defer cancel()
			if err := health.Ping(ctx); err != nil {
				_ = c.Error(err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
