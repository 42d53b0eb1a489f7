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

	"wallet/internal/config"
	"wallet/internal/database"
	"wallet/internal/logger"
	"wallet/internal/seed"
	"wallet/internal/services"
	"wallet/internal/validator"
)

// @title           Wallet API
// @version         1.0
// @description     Reference backend for the wallet data-access layer: accounts and their transactions.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	log := logger.Get()

	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	dataset, err := loadSeed(cfg.SeedFile)
	if err != nil {
		return err
	}

	db := dbManager.DB()
	if _, err := services.NewSeedService(db).SeedIfEmpty(dataset); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying DB: %w", err)
	}

	validator.Register()

	accountService := services.NewAccountService(db)
	transactionService := services.NewTransactionService(db, accountService)

	router := newRouter(routerDeps{
		apiKey:             cfg.APIKey,
		accountService:     accountService,
		transactionService: transactionService,
		db:                 sqlDB,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Starting wallet API server on port %s", cfg.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

func loadSeed(path string) (*seed.Dataset, error) {
	if path == "" {
		return seed.Default(), nil
	}
	dataset, err := seed.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed file %s: %w", path, err)
	}
	logger.Get().Infow("Loaded seed file", "path", path)
	return dataset, nil
}
