// Package main is the entry point for the Selva Nails API server.
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/selvanails/selva-api/docs"
	"github.com/selvanails/selva-api/internal/api"
	"github.com/selvanails/selva-api/internal/infrastructure/config"
	mongodb "github.com/selvanails/selva-api/internal/infrastructure/db/mongo"
	redisdb "github.com/selvanails/selva-api/internal/infrastructure/db/redis"
	"github.com/selvanails/selva-api/internal/infrastructure/queue"
	"github.com/selvanails/selva-api/pkg/logger"
)

// @title Selva Nails API
// @version 1.0
// @description REST backend for the Selva Nails store: products, services, blog, testimonials, notifications and cart.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	if cfg.JWTSecret == config.DefaultJWTSecret && !cfg.IsDevelopment() {
		log.Warn().Msg("JWT_SECRET is the development fallback; set a real secret before exposing this service")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Indexes and seed data ---
	authRepo := mongodb.NewAuthRepository(db)
	for name, ensure := range map[string]func(context.Context) error{
		"users":         authRepo.EnsureIndexes,
		"products":      mongodb.NewProductRepository(db).EnsureIndexes,
		"cart_items":    mongodb.NewCartRepository(db).EnsureIndexes,
		"blog_posts":    mongodb.NewBlogRepository(db).EnsureIndexes,
		"notifications": mongodb.NewNotificationRepository(db).EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("failed to ensure indexes")
		}
	}

	if err := mongodb.SeedAdmin(ctx, authRepo, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
	}

	// --- Push dispatcher ---
	dispatcher := queue.NewDispatcher(cfg.PushWorkers, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, dispatcher, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
