package runner

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/adventofcode/puzzle"
)

// NewCommand builds the root command for one edition.
func NewCommand(year int, registry puzzle.Registry, name FileNamer) *cobra.Command {
	var (
		day        int
		dataDir    string
		all        bool
		configPath string
		verbose    bool
		cfg        *Config
		logger     *zap.Logger
	)

	cmd := &cobra.Command{
		Use:           fmt.Sprintf("aoc%d", year),
		Short:         fmt.Sprintf("Solve Advent of Code %d puzzles", year),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("data-dir") {
				cfg.DataDir = dataDir
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = verbose
			}

			config := zap.NewProductionConfig()
			if cfg.Verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &Runner{Year: year, Registry: registry, DataDir: cfg.DataDir, FileName: name}
			ctx := puzzle.WithLogger(cmd.Context(), logger)
			out := cmd.OutOrStdout()

			if all {
				results, err := r.RunAll(ctx, cfg.Parallelism)
				if err != nil {
					return err
				}
				for _, res := range results {
					if err := WriteAnswer(out, res); err != nil {
						return err
					}
				}
				return nil
			}

			if !cmd.Flags().Changed("day") {
				return errors.New("either --day or --all is required")
			}
			ans, err := r.Solve(ctx, day)
			if err != nil {
				return err
			}
			return WriteAnswer(out, Result{Day: day, Answer: ans})
		},
	}

	cmd.Flags().IntVar(&day, "day", 0, "puzzle day (1-25)")
	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "directory containing the day input files")
	cmd.Flags().BoolVar(&all, "all", false, "solve every registered day")
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML config file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.MarkFlagsMutuallyExclusive("day", "all")

	return cmd
}
