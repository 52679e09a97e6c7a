package jobs

import (
	"fmt"
	"log/slog"

	"fleetrent/internal/core/ports"
)

// JobManager coordinates the scheduled jobs of the application.
type JobManager struct {
	overdueReturnJob *OverdueReturnJob
}

// NewJobManager creates a job manager with all scheduled jobs wired.
func NewJobManager(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *JobManager {
	return &JobManager{
		overdueReturnJob: NewOverdueReturnJob(uowFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueReturnJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue return job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueReturnJob.Stop()
}
