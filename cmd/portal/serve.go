package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/clubebrotos/consultant-portal/internal/api"
	"github.com/clubebrotos/consultant-portal/internal/core/ports"
	"github.com/clubebrotos/consultant-portal/internal/core/service"
	"github.com/clubebrotos/consultant-portal/internal/infrastructure/db/mongo"
	"github.com/clubebrotos/consultant-portal/internal/infrastructure/db/redis"
	"github.com/clubebrotos/consultant-portal/internal/infrastructure/http/handlers"
	"github.com/clubebrotos/consultant-portal/internal/infrastructure/identity"
	"github.com/clubebrotos/consultant-portal/internal/infrastructure/queue"
	"github.com/clubebrotos/consultant-portal/internal/pkg/config"
	"github.com/clubebrotos/consultant-portal/pkg/logger"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = time.Minute
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portal HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "consultant-portal",
	})

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	gateway := identity.NewGateway(
		mongo.NewConsultantRepository(db),
		mongo.NewIdentityRepository(db),
		redis.NewSessionStore(rdb),
		cfg.JWTSecret,
		cfg.Session.TokenTTL,
	)

	dispatcher := queue.NewDispatcher(cfg.Session.AuditWorkers, mongo.NewEventRepository(db), logger.For("audit"))
	dispatcher.Start(ctx)

	controllerLog := logger.For("session")
	registry := service.NewRegistry(func() ports.SessionController {
		return service.NewSessionController(gateway, dispatcher, controllerLog, service.ControllerOptions{
			MaxIDAttempts: cfg.Session.MaxIDAttempts,
		})
	}, cfg.Session.ClientIdleTTL, logger.For("registry"))
	go registry.Run(ctx, sweepInterval)

	e := api.NewRouter(api.Dependencies{
		Registry:   registry,
		Log:        log,
		Registerer: prometheus.DefaultRegisterer,
		Checks:     []handlers.DependencyCheck{handlers.MongoCheck(db), handlers.RedisCheck(rdb)},
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("portal listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
