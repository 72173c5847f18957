package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/atollway/travel-content-api/internal/config"
	"github.com/atollway/travel-content-api/internal/handler"
	"github.com/atollway/travel-content-api/internal/middleware"
)

// RegisterPublic registers the unauthenticated read endpoints consumed by
// the marketing site. Responses are cached in Redis per group so admin
// mutations can drop exactly the pages they touched; the token bucket
// limiter shields the endpoints from scraping bursts. Both middlewares
// degrade to no-ops without a Redis client.
func RegisterPublic(e *echo.Echo, h *handler.AdminHandler,
	cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig, rdb *redis.Client) {

	limiter := middleware.NewTokenBucket(rlCfg, rdb)
	transportCache := middleware.NewRedisCache(cacheCfg, rdb, handler.GroupTransport)
	homepageCache := middleware.NewRedisCache(cacheCfg, rdb, handler.GroupHomepage)

	e.GET("/api/transportation", h.Transportation, limiter, transportCache)
	e.GET("/api/transfer-faqs", h.ListFAQs, limiter, transportCache)
	e.GET("/api/homepage", h.PublicHomepage, limiter, homepageCache)
}
