package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/benjaminhze/cribhunter/internal/application/services"
	"github.com/benjaminhze/cribhunter/internal/config"
	"github.com/benjaminhze/cribhunter/internal/delivery/handler"
	"github.com/benjaminhze/cribhunter/internal/infrastructure"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/db"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/db/postgres"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/logging"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/messaging"
)

const (
	version         = "1.0.0"
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "cribhunter:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("cribhunter", pflag.ContinueOnError)
	envFile := flags.String("env-file", ".env", "dotenv file loaded before reading the environment")
	addr := flags.String("addr", "", "listen address, overrides PORT")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", *envFile, err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.New(cfg.Logging, version)
	if cfg.UsesDefaultSecret() {
		logger.Warn("SECRET_KEY not set, using the development signing key")
	}

	gdb, err := db.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			logger.Warn("closing database", "error", err)
		}
	}()
	if cfg.Database.Driver == "sqlite" {
		if err := postgres.AutoMigrate(gdb); err != nil {
			return fmt.Errorf("migrating schema: %w", err)
		}
	}

	cache := infrastructure.NewRedisService(cfg.Redis, logger)
	defer cache.Close()

	events, err := messaging.Connect(cfg.NATS.URL, logger)
	if err != nil {
		logger.Warn("event publishing disabled", "error", err)
		events = messaging.NewDisabledPublisher()
	}
	defer events.Close()

	mailer := infrastructure.NewSendGridMailer(cfg.Email, logger)
	hasher := infrastructure.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := infrastructure.NewJWTService(cfg.Auth.SecretKey, cfg.Auth.AccessTokenTTL)

	userRepo := postgres.NewUserRepository(gdb)
	propertyRepo := postgres.NewPropertyRepository(gdb)
	favoriteRepo := postgres.NewFavoriteRepository(gdb)

	e := handler.NewRouter(
		handler.RouterConfig{
			Version:        version,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			PingDB:         userRepo.Ping,
		},
		handler.Services{
			Auth:       services.NewAuthService(userRepo, hasher, tokens, cache, events, mailer, logger),
			Users:      services.NewUserService(userRepo, propertyRepo, favoriteRepo, cache, events, logger),
			Properties: services.NewPropertyService(propertyRepo, events, logger),
		},
		logger,
	)

	listen := *addr
	if listen == "" {
		listen = ":" + cfg.Port
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", listen)
		if err := e.Start(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serving http: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
