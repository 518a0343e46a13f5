// Package jobs provides scheduled background tasks, built on
// github.com/robfig/cron/v3. The only job today is the hourly sweep of
// upload files no delivery item references anymore.
package jobs

import (
	"fmt"
	"log/slog"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/ports"

	"gorm.io/gorm"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	uploadSweepJob *UploadSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(db *gorm.DB, fileStore ports.FileStore, logger *slog.Logger) *JobManager {
	return &JobManager{
		uploadSweepJob: NewUploadSweepJob(db, fileStore, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.uploadSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start upload sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.uploadSweepJob.Stop()
}
