package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pawscare/vetgate/internal/api"
	"github.com/pawscare/vetgate/internal/core/ports"
	"github.com/pawscare/vetgate/internal/core/service"
	"github.com/pawscare/vetgate/internal/infrastructure/backend/httpapi"
	"github.com/pawscare/vetgate/internal/infrastructure/backend/mock"
	"github.com/pawscare/vetgate/internal/infrastructure/config"
	"github.com/pawscare/vetgate/internal/infrastructure/store/memstore"
	"github.com/pawscare/vetgate/internal/infrastructure/store/redisstore"
	"github.com/pawscare/vetgate/pkg/logger"
)

// @title        Vetgate API
// @version      1.0
// @description  Backend-for-frontend gateway for the PawsCare veterinary clinic dashboard.
// @BasePath     /
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Session store ---
	var (
		store ports.TokenStore
		rdb   *redis.Client
	)
	switch cfg.Session.Store {
	case "memory":
		store = memstore.New()
		log.Warn().Msg("using in-memory session store, sessions do not survive restarts")
	default:
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		rdb = client
		store = redisstore.NewTokenStore(rdb, cfg.Session.TTL)
	}

	// --- Clinic backend ---
	invalidator := service.NewInvalidator(store, logger.Component("session"))
	var backend ports.Backend
	switch cfg.Backend.Mode {
	case "mock":
		backend = mock.New(cfg.Backend.MockSecret, cfg.Backend.MockTokenTTL, invalidator)
		log.Warn().Msg("running against the seeded mock backend")
	default:
		backend = httpapi.New(cfg.Backend.BaseURL, invalidator, logger.Component("httpapi"))
		log.Info().Str("base_url", cfg.Backend.BaseURL).Msg("clinic backend configured")
	}

	sessions := service.NewSessionService(store, backend, logger.Component("session"))
	e := api.NewRouter(backend, sessions, rdb, cfg.LoginRoute, cfg.Production(), log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("vetgate listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
