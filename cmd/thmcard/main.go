// Package main provides the CLI entrypoint for thmcard.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ritviksingh/thm-card-go/internal/app"
	"github.com/ritviksingh/thm-card-go/internal/config"
	"github.com/ritviksingh/thm-card-go/internal/util"
)

var (
	flagOutput   string
	flagTemplate string
	flagPoints   int
	flagWidth    int
	flagHeight   int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "thmcard <username>",
		Short:        "Render a TryHackMe profile as an SVG stat card",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runGenerate,
	}

	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output SVG path")
	rootCmd.Flags().StringVarP(&flagTemplate, "template", "t", "", "card template path")
	rootCmd.Flags().IntVar(&flagPoints, "points", 0, "sparkline point count (min 2)")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "card width in px")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "card height in px")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level (debug|info|warn|error)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "log to a file instead of stderr")

	return rootCmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	opts := app.Options{
		Username: args[0],
		Output:   cfg.Card.Output,
		Template: cfg.Card.Template,
		Points:   cfg.Card.Points,
		Width:    cfg.Card.Width,
		Height:   cfg.Card.Height,
	}

	generator := app.Build(cfg, logger)
	size, err := generator.Generate(cmd.Context(), opts)
	if err != nil {
		logger.Error("Card generation failed", zap.Error(err))
		return err
	}

	fmt.Printf("Wrote %s (%d bytes)\n", opts.Output, size)
	return nil
}

// applyFlags layers explicit command-line values over the env-backed config.
func applyFlags(cfg *config.Config) {
	if flagOutput != "" {
		cfg.Card.Output = flagOutput
	}
	if flagTemplate != "" {
		cfg.Card.Template = flagTemplate
	}
	if flagPoints > 0 {
		cfg.Card.Points = flagPoints
	}
	if flagWidth > 0 {
		cfg.Card.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Card.Height = flagHeight
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Logging.File = flagLogFile
	}
}
