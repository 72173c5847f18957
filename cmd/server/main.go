package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/atollway/travel-content-api/internal/config"
	"github.com/atollway/travel-content-api/internal/database"
	"github.com/atollway/travel-content-api/internal/handler"
	"github.com/atollway/travel-content-api/internal/middleware"
	"github.com/atollway/travel-content-api/internal/queue"
	"github.com/atollway/travel-content-api/internal/repository"
	"github.com/atollway/travel-content-api/internal/router"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs the public response cache and the rate limiter; both
	// degrade to no-ops when the client is nil.
	rdb := config.NewRedisClient()

	authH := &handler.AuthHandler{
		Users:  repository.NewUserRepo(db),
		Tokens: repository.NewTokenRepo(db),
		Cfg:    cfg,
	}
	adminH := &handler.AdminHandler{
		Types:    repository.NewTransferTypeRepo(db),
		Atolls:   repository.NewAtollRepo(db),
		Resorts:  repository.NewResortRepo(db),
		FAQs:     repository.NewFAQRepo(db),
		Sections: repository.NewSectionRepo(db),
		Ferries:  repository.NewFerryRepo(db),
		Homepage: repository.NewHomepageRepo(db),
		Dataset:  repository.NewDatasetRepo(db),
		Cache:    middleware.NewInvalidator(cacheCfg, rdb),
		Cfg:      cfg,
	}

	// Background consumer appends content.changed events to logs/content.log.
	go func() {
		if err := queue.StartContentConsumer(); err != nil {
			log.Printf("content consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Static("/uploads", cfg.UploadDir)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, adminH, cacheCfg, rlCfg, rdb)
	router.RegisterAdmin(e, adminH, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
