package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/heron-ml/heron/app/plugins"
	"github.com/heron-ml/heron/config"
	"github.com/heron-ml/heron/core/factory"
	"github.com/heron-ml/heron/infra/logger"
	inframetrics "github.com/heron-ml/heron/infra/metrics"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "heron",
	Short: "ML object toolkit",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configuration file. A missing file at the default
// location yields defaults so the CLI works out of the box.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgPath); errors.Is(err, fs.ErrNotExist) && !rootCmd.PersistentFlags().Changed("config") {
		cfg := &config.Config{}
		cfg.Logging.SetDefaults()
		cfg.Metrics.SetDefaults()
		return cfg, nil
	}
	return config.Load(cfgPath)
}

// newRegistry assembles the factory registry the way the configuration asks
// for: component logger and, when enabled, a Prometheus recorder.
func newRegistry(cfg *config.Config) (*factory.Registry, error) {
	opts := []factory.Option{
		factory.WithLogger(logger.NewZerologLogger("factory", cfg.Logging.Level)),
	}
	if cfg.Metrics.Enabled {
		rec, err := inframetrics.NewPromRecorder(cfg.Metrics)
		if err != nil {
			return nil, err
		}
		opts = append(opts, factory.WithRecorder(rec))
	}
	return plugins.NewRegistry(opts...), nil
}
