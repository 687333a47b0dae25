package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/metaphysics/config"
	"github.com/katalvlaran/metaphysics/cube"
	"github.com/katalvlaran/metaphysics/domino"
)

var (
	configPath string
	format     string
	verbose    bool
	noColor    bool

	cfg     config.Config
	logger  *zap.Logger
	catalog *cube.Catalog
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "metaphysics",
		Short:        "Tile a die with a Hilbert-curve domino train and count the domino sets it needs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if format != "" {
				cfg.Format = format
			}
			if noColor {
				cfg.Color = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			zc := zap.NewProductionConfig()
			if verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			layout, err := cube.NewLayout(cfg.Order)
			if err != nil {
				return err
			}
			catalog, err = cube.NewCatalog(layout)
			if err != nil {
				logger.Error("catalog unavailable", zap.Int("order", cfg.Order), zap.Error(err))
				return err
			}
			logger.Debug("catalog ready",
				zap.Int("order", layout.Order()),
				zap.Int("squares", layout.TotalSquares()),
				zap.Int("regions", len(catalog.Names())))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVarP(&format, "format", "f", "", "output format: text, json or yaml")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "plain text tables")

	root.AddCommand(trainCmd(), squaresCmd(), dominoesCmd(), setsCmd(), reportCmd())
	return root
}

func workers() domino.Option {
	return domino.WithWorkers(cfg.Workers)
}
