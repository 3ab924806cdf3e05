package cli

import (
	"github.com/spf13/cobra"

	"carshare-settlement/internal/jobs"
)

func newRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Settle one input document",
		Long: `Settle every rental (or rental modification) of the input document and
write the output document. Nothing is written when any record fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jr := jobs.NewJobRunner(opts.cfg, nil)
			_, err := jr.RunSettlement(cmd.Context())
			return err
		},
	}
}
