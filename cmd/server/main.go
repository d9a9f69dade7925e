package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openretail/pos-gateway/internal/api"
	"github.com/openretail/pos-gateway/internal/api/middleware"
	"github.com/openretail/pos-gateway/internal/backend"
	"github.com/openretail/pos-gateway/internal/core/ports"
	"github.com/openretail/pos-gateway/internal/core/service"
	mongodb "github.com/openretail/pos-gateway/internal/infrastructure/db/mongo"
	redisdb "github.com/openretail/pos-gateway/internal/infrastructure/db/redis"
	"github.com/openretail/pos-gateway/internal/infrastructure/queue"
	"github.com/openretail/pos-gateway/internal/pkg/config"
	"github.com/openretail/pos-gateway/internal/session"
	"github.com/openretail/pos-gateway/pkg/logger"
)

// @title        POS Gateway API
// @version      1.0
// @description  Session-backed gateway in front of the POS backend API.
// @BasePath     /v1
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: !cfg.IsProduction()})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis backs the token denylist and the login rate limiter. The
	// gateway still serves traffic without it, with both degraded.
	var (
		denylist  ports.TokenDenylist
		rateStore middleware.RateLimitStore
	)
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, denylist and rate limiting disabled")
	} else {
		defer rdb.Close()
		denylist = redisdb.NewTokenDenylist(rdb)
		rateStore = redisdb.NewRateLimitStore(rdb)
	}

	// Mongo holds the audit trail, written off the request path by a
	// sharded dispatcher.
	var (
		sink       ports.AuditSink = ports.NopAuditSink{}
		dispatcher *queue.AuditDispatcher
		mongoDB    *mongo.Database
	)
	if cfg.Audit.Enabled {
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Warn().Err(err).Msg("mongo unavailable, audit trail disabled")
		} else {
			defer func() { _ = client.Disconnect(context.Background()) }()
			dispatcher = queue.NewAuditDispatcher(cfg.Audit.Workers, mongodb.NewAuditRepository(db), log)
			dispatcher.Start(ctx)
			sink = dispatcher
			mongoDB = db
		}
	}

	client := backend.New(cfg.APIURL, log)
	authService := service.NewAuthService(client, denylist, sink, log)
	codec := session.NewCodec(cfg.Session.Secret, cfg.Session.Cookie)

	e := api.NewRouter(api.Deps{
		Backend:     client,
		AuthService: authService,
		Codec:       codec,
		Denylist:    denylist,
		AuditSink:   sink,
		RateStore:   rateStore,
		RateLimit:   int64(cfg.Login.Limit),
		RateWindow:  time.Duration(cfg.Login.Window) * time.Second,
		Mongo:       mongoDB,
		Redis:       rdb,
		Secure:      cfg.IsProduction(),
		Log:         log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.APIURL).Msg("gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	// Let the audit workers drain their queues before the process exits.
	if dispatcher != nil {
		dispatcher.Wait()
	}
}
