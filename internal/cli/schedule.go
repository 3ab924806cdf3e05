package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"carshare-settlement/internal/jobs"
	"carshare-settlement/internal/logger"
	"carshare-settlement/internal/metrics"
	"carshare-settlement/internal/scheduler"
)

func newScheduleCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Settle the input document on the configured cron schedule",
		Long: `Run the settlement batch on the cron expression of scheduler.settle
(seconds field, UTC) until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jr := jobs.NewJobRunner(opts.cfg, metrics.NewRecorder())
			cronScheduler, err := scheduler.NewScheduler(jr)
			if err != nil {
				return err
			}

			cronScheduler.Start()
			logger.Info("Settlement scheduler is running. Press Ctrl+C to stop.", "next", cronScheduler.Next())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			logger.Info("Shutting down settlement scheduler...")
			cronScheduler.Stop()
			return nil
		},
	}
}
