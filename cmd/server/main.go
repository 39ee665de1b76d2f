package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "rewear-backend/internal/api/http"
	"rewear-backend/internal/config"
	"rewear-backend/internal/email"
	"rewear-backend/internal/logger"
	"rewear-backend/internal/notifier"
	"rewear-backend/internal/repository/postgres"
	"rewear-backend/internal/security"
	"rewear-backend/internal/service"
	"rewear-backend/internal/storage"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ReWear backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	blobs, err := storage.NewLocalStore(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize photo storage: %v", err)
	}
	logger.Info("Photo storage ready", "upload_dir", cfg.Storage.UploadDir)

	sender := email.NewSendGridSender(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	donorNotifier := notifier.New(
		store.UserRepository,
		store.OrganizationRepository,
		store.NotificationRepository,
		sender,
		cfg.NotifierTimeout(),
	)

	donationSvc := service.NewDonationService(
		store.DonationRequestRepository,
		store.OrganizationRepository,
		store.UserRepository,
		store.PhotoRepository,
		donorNotifier,
	)
	lifecycleSvc := service.NewLifecycleService(
		store.DonationRequestRepository,
		store.InventoryRepository,
		store.DistributionRepository,
		store.UserRepository,
		donorNotifier,
	)
	notificationSvc := service.NewNotificationService(store.NotificationRepository)
	photoSvc := service.NewPhotoService(
		store.PhotoRepository,
		blobs,
		time.Duration(cfg.Storage.UploadTTLHours)*time.Hour,
	)

	router := httpapi.NewRouter(cfg, tokenManager, httpapi.Services{
		Donations:     donationSvc,
		Lifecycle:     lifecycleSvc,
		Notifications: notificationSvc,
		Photos:        photoSvc,
	})

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
