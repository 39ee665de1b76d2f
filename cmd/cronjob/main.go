package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"rewear-backend/internal/config"
	"rewear-backend/internal/email"
	"rewear-backend/internal/jobs"
	"rewear-backend/internal/logger"
	"rewear-backend/internal/notifier"
	"rewear-backend/internal/repository/postgres"
	"rewear-backend/internal/scheduler"
	"rewear-backend/internal/service"
	"rewear-backend/internal/storage"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'pending-reminders', 'purge-photos', 'all-nightly')")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ReWear cronjob runner...", "log_level", cfg.Log.Level)

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

	blobs, err := storage.NewLocalStore(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize photo storage: %v", err)
	}

	sender := email.NewSendGridSender(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	donorNotifier := notifier.New(
		store.UserRepository,
		store.OrganizationRepository,
		store.NotificationRepository,
		sender,
		cfg.NotifierTimeout(),
	)

	photoSvc := service.NewPhotoService(
		store.PhotoRepository,
		blobs,
		time.Duration(cfg.Storage.UploadTTLHours)*time.Hour,
	)

	jobRunner := jobs.NewJobRunner(store, photoSvc, donorNotifier, cfg)

	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	cronScheduler.Stop()
	logger.Info("Cronjob runner stopped")
}

func runJobOnce(jr *jobs.JobRunner, name string) {
	switch name {
	case "pending-reminders":
		jr.SendPendingRequestReminders()
	case "purge-photos":
		jr.PurgeExpiredPhotos()
	case "all-nightly":
		jr.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", name)
	}
}
