// Package cli implements the settle command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"carshare-settlement/internal/config"
	"carshare-settlement/internal/logger"
)

type options struct {
	configPath string
	input      string
	output     string
	mode       string
	cfg        *config.Config
}

// NewRootCommand builds the settle command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "settle",
		Short: "Price car rentals and settle their money between parties",
		Long: `settle reads a document of cars, rentals and rental modifications,
prices every rental and writes the debit/credit actions of the driver, the
owner, the insurance, the roadside assistance and the platform.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML or TOML configuration file")
	rootCmd.PersistentFlags().StringVarP(&opts.input, "input", "i", "", "Input document (- for stdin)")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "Output document (- for stdout)")
	rootCmd.PersistentFlags().StringVarP(&opts.mode, "mode", "m", "", "Output mode: auto, price, commission, actions or modifications")

	rootCmd.AddCommand(newRunCommand(opts))
	rootCmd.AddCommand(newScheduleCommand(opts))
	return rootCmd
}

// Execute runs the settle command line.
func Execute() error {
	return NewRootCommand().Execute()
}

// load reads the configuration; flags win over the file and the environment.
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Batch.Input = o.input
	}
	if flags.Changed("output") {
		cfg.Batch.Output = o.output
	}
	if flags.Changed("mode") {
		cfg.Batch.Mode = o.mode
	}
	if cfg.Batch.Input == "" || cfg.Batch.Output == "" {
		return fmt.Errorf("input and output documents are required")
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	o.cfg = cfg
	return nil
}
