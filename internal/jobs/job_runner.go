package jobs

import (
	"carshare-settlement/internal/config"
	"carshare-settlement/internal/logger"
	"carshare-settlement/internal/metrics"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	config  *config.Config
	metrics *metrics.Recorder
}

// NewJobRunner creates a new job runner. A nil recorder gets a private one.
func NewJobRunner(cfg *config.Config, recorder *metrics.Recorder) *JobRunner {
	if recorder == nil {
		recorder = metrics.NewRecorder()
	}
	return &JobRunner{
		config:  cfg,
		metrics: recorder,
	}
}

// Config returns the configuration the jobs run with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// Metrics returns the recorder the jobs report to
func (jr *JobRunner) Metrics() *metrics.Recorder {
	return jr.metrics
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	log := logger.WithJob(jobName)
	defer func() {
		if r := recover(); r != nil {
			log.Error("Job panicked", "panic", r)
		}
	}()

	log.Info("Starting job")
	jobFunc()
	log.Info("Job completed")
}
