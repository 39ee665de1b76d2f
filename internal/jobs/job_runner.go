package jobs

import (
	"rewear-backend/internal/config"
	"rewear-backend/internal/logger"
	"rewear-backend/internal/notifier"
	"rewear-backend/internal/repository/postgres"
	"rewear-backend/internal/service"
)

// JobRunner coordinates the scheduled maintenance jobs.
type JobRunner struct {
	store    *postgres.Store
	photos   service.PhotoService
	notifier notifier.Notifier
	config   *config.Config
}

func NewJobRunner(store *postgres.Store, photos service.PhotoService, n notifier.Notifier, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:    store,
		photos:   photos,
		notifier: n,
		config:   cfg,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery so one bad run
// cannot take the scheduler down.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs every nightly job once, for manual execution.
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.SendPendingRequestReminders()
	jr.PurgeExpiredPhotos()
}
