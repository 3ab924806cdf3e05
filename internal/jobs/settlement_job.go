package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"carshare-settlement/internal/document"
	"carshare-settlement/internal/domain"
	"carshare-settlement/internal/logger"
	"carshare-settlement/internal/pricing"
	"carshare-settlement/internal/repository/memory"
	"carshare-settlement/internal/service"
)

// Report summarises one settlement batch.
type Report struct {
	RunID         string
	Mode          document.Mode
	Input         string
	Output        string
	Rentals       int
	Modifications int
	Actions       int
	Duration      time.Duration
}

// SettleJob runs one settlement batch for the scheduler.
func (jr *JobRunner) SettleJob() {
	jr.runWithRecovery("SettleJob", func() {
		// failures are logged with the run id
		_, _ = jr.RunSettlement(context.Background())
	})
}

// RunSettlement reads the configured input document, settles it in the
// configured mode and writes the output document. Output is written only
// once every record has been settled: any error leaves the previous output
// untouched.
func (jr *JobRunner) RunSettlement(ctx context.Context) (*Report, error) {
	started := time.Now()
	cfg := jr.config.Batch
	report := &Report{
		RunID:  uuid.NewString(),
		Input:  cfg.Input,
		Output: cfg.Output,
	}
	log := logger.WithRun(report.RunID)
	log.Info("Starting settlement", "input", cfg.Input, "output", cfg.Output, "mode", cfg.Mode)

	err := jr.settle(ctx, report)
	report.Duration = time.Since(started)

	jr.metrics.RecordRun(started, err)
	if werr := jr.metrics.WriteTextfile(jr.config.Metrics.Textfile); werr != nil {
		logger.Warn("Failed to write metrics textfile", "run_id", report.RunID, "path", jr.config.Metrics.Textfile, "error", werr)
	}

	if err != nil {
		log.Error("Settlement failed", "error", err, "duration", report.Duration)
		return nil, err
	}

	log.Info("Settlement completed",
		"mode", report.Mode,
		"rentals", report.Rentals,
		"modifications", report.Modifications,
		"actions", report.Actions,
		"duration", report.Duration)
	return report, nil
}

func (jr *JobRunner) settle(ctx context.Context, report *Report) error {
	mode, err := document.ParseMode(jr.config.Batch.Mode)
	if err != nil {
		return err
	}

	in, err := document.ReadFile(report.Input)
	if err != nil {
		return err
	}
	batch, err := in.ToDomain()
	if err != nil {
		return err
	}

	store, err := memory.NewStore(batch.Cars, batch.Rentals)
	if err != nil {
		return err
	}
	svc := service.NewSettlementService(store.CarRepository, store.RentalRepository, pricing.NewCalculator(jr.config.Rates()))

	report.Mode = mode.Resolve(in)

	var (
		out     *document.Output
		actions []domain.Action
	)
	switch report.Mode {
	case document.ModeModifications:
		deltas, err := svc.SettleModifications(ctx, batch.Modifications)
		if err != nil {
			return err
		}
		for _, d := range deltas {
			actions = append(actions, d.Actions()...)
		}
		out = document.BuildModifications(deltas)
		report.Modifications = len(deltas)
	default:
		settlements, err := svc.SettleRentals(ctx)
		if err != nil {
			return err
		}
		if report.Mode == document.ModeActions {
			for _, s := range settlements {
				actions = append(actions, s.Actions()...)
			}
		}
		out, err = document.BuildRentals(report.Mode, settlements)
		if err != nil {
			return err
		}
		report.Rentals = len(settlements)
	}
	report.Actions = len(actions)

	if err := document.WriteFile(report.Output, out); err != nil {
		return fmt.Errorf("failed to write settlement output: %w", err)
	}

	jr.metrics.RecordRentals(report.Rentals)
	jr.metrics.RecordModifications(report.Modifications)
	jr.metrics.RecordActions(actions)
	return nil
}
