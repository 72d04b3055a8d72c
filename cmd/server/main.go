// Command server runs the legal case-management API.
//
// @title                      Legal Case Management API
// @version                    1.0
// @description                Client and case management for a legal practice.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/legalapp/case-management/internal/api"
	"github.com/legalapp/case-management/internal/core/ports"
	"github.com/legalapp/case-management/internal/core/service"
	"github.com/legalapp/case-management/internal/infrastructure/config"
	"github.com/legalapp/case-management/internal/infrastructure/db/memory"
	"github.com/legalapp/case-management/internal/infrastructure/db/mongo"
	"github.com/legalapp/case-management/internal/infrastructure/db/postgres"
	"github.com/legalapp/case-management/internal/infrastructure/db/redis"
	"github.com/legalapp/case-management/internal/infrastructure/http/handlers"
	"github.com/legalapp/case-management/internal/infrastructure/seed"
	"github.com/legalapp/case-management/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// storage is the selected persistence backend plus what it takes to check
// and release it.
type storage struct {
	repos   seed.Repositories
	pingers map[string]handlers.Pinger
	close   func(context.Context) error
}

func main() {
	cfg := config.MustLoad()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "legal-case-management",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("closing storage")
		}
	}()

	if cfg.SeedData {
		if _, err := seed.Run(ctx, store.repos, log); err != nil {
			return err
		}
	}

	var idempotency ports.IdempotencyStore
	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		idempotency = redis.NewIdempotencyStore(rdb, cfg.Redis.IdempotencyTTL)
		store.pingers["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis idempotency store enabled")
	}

	authService := service.NewAuthService(store.repos.Users, service.TokenConfig{
		Secret:   cfg.Auth.JWTSecret,
		Issuer:   cfg.Auth.Issuer,
		Audience: cfg.Auth.Audience,
		TTL:      cfg.Auth.TokenTTL,
	}, log)
	clientService := service.NewClientService(store.repos.Clients, idempotency, log)
	caseService := service.NewCaseService(store.repos.Clients, store.repos.Cases)

	e, err := api.NewRouter(api.Dependencies{
		Clients:     clientService,
		Cases:       caseService,
		Auth:        authService,
		Logger:      log,
		Pingers:     store.pingers,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("store", cfg.Store).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("server exited")
	return nil
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	switch cfg.Store {
	case config.StoreMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
		return &storage{
			repos: seed.Repositories{
				Clients: mongo.NewClientRepository(db),
				Cases:   mongo.NewCaseRepository(db),
				Users:   mongo.NewUserRepository(db),
			},
			pingers: map[string]handlers.Pinger{
				"mongodb": func(ctx context.Context) error { return client.Ping(ctx, nil) },
			},
			close: client.Disconnect,
		}, nil

	case config.StorePostgres:
		db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
		if err != nil {
			return nil, err
		}
		log.Info().Msg("connected to postgres")
		return &storage{
			repos: seed.Repositories{
				Clients: postgres.NewClientRepository(db),
				Cases:   postgres.NewCaseRepository(db),
				Users:   postgres.NewUserRepository(db),
			},
			pingers: map[string]handlers.Pinger{"postgres": postgres.Ping(db)},
			close:   func(context.Context) error { return postgres.Close(db) },
		}, nil

	default:
		mem := memory.NewStore()
		log.Info().Msg("using in-memory store")
		return &storage{
			repos: seed.Repositories{
				Clients: mem.Clients(),
				Cases:   mem.Cases(),
				Users:   mem.Users(),
			},
			pingers: map[string]handlers.Pinger{},
			close: func(context.Context) error {
				mem.Close()
				return nil
			},
		}, nil
	}
}
