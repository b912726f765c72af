package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Kellan-Anderson/Vision-Media/internal/config"
	"github.com/Kellan-Anderson/Vision-Media/internal/driver"
	"github.com/Kellan-Anderson/Vision-Media/internal/server"
	"github.com/Kellan-Anderson/Vision-Media/internal/session"
	"github.com/Kellan-Anderson/Vision-Media/internal/store"
)

const shutdownTimeout = 5 * time.Second

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("No .env file found, using environment")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Warn().Err(err).Msg("Using default configuration")
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	setLogLevel(cfg.Log.Level)
	gin.SetMode(cfg.Server.Mode)

	pollInterval, err := cfg.PollInterval()
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Memgraph")
	}
	defer d.Close(context.Background())

	docs := store.NewStore(d, pollInterval, &logger)
	if err := docs.BuildIndices(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to build indices")
	}

	sessions := &session.HeaderProvider{
		UserHeader:  cfg.Auth.UserHeader,
		NameHeader:  cfg.Auth.NameHeader,
		EmailHeader: cfg.Auth.EmailHeader,
	}
	if cfg.Auth.DevUser != "" {
		logger.Warn().Str("uid", cfg.Auth.DevUser).Msg("Anonymous requests run as the dev user")
		sessions.DevUser = &session.UserIdentity{UID: cfg.Auth.DevUser, DisplayName: cfg.Auth.DevUser}
	}

	srv := server.NewServer(docs, sessions, cfg.Storage, &logger)
	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           srv.SetupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Server shutdown failed")
		}
	}()

	logger.Info().Str("port", cfg.Server.Port).Msg("Starting server")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("Server error")
	}
	logger.Info().Msg("Server stopped")
}

func setLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
