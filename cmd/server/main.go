package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/PointonKaren/OCR-Projet6/internal/app"
	"github.com/PointonKaren/OCR-Projet6/internal/config"
	"github.com/PointonKaren/OCR-Projet6/internal/crypto"
	"github.com/PointonKaren/OCR-Projet6/internal/database"
	"github.com/PointonKaren/OCR-Projet6/internal/logging"
	"github.com/PointonKaren/OCR-Projet6/internal/server"
	"github.com/PointonKaren/OCR-Projet6/internal/storage"
	"github.com/PointonKaren/OCR-Projet6/internal/token"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(ctx, db); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return db
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	pool := setupDB(cfg)
	defer pool.Close()

	assets, err := storage.NewDiskStore(cfg.UploadDir, cfg.BaseURL, clock)
	if err != nil {
		slog.Error("Failed to set up image store", "error", err)
		os.Exit(1)
	}

	tokens := token.NewJWTService(cfg.JWTSecret, token.DefaultTTL, clock)
	passwords := crypto.NewBcryptService(cfg.BcryptCost)

	userRepo := database.NewUserRepo(pool)
	sauceRepo := database.NewSauceRepo(pool)

	appSvc := app.NewService(userRepo, sauceRepo, assets, tokens, passwords)

	srv := server.NewServer(cfg, appSvc, tokens, pool)

	done := runGracefulShutdown(srv)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
