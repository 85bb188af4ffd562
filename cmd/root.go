package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mindmapai/mindweave/internal/config"
	"mindmapai/mindweave/internal/openai"
	"mindmapai/mindweave/internal/orchestrate"
	"mindmapai/mindweave/internal/probe"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "mindweave",
	Short: "Turn a topic into a browsable mindmap with a generative model",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to mindweave.toml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// loadConfig discovers and loads the configuration.
func loadConfig() (*config.Config, error) {
	path, err := config.Discover(configPath)
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// newLogger builds the process logger. CLI commands stay quiet unless
// --verbose is set; serve always logs.
func newLogger(forServer bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	if forServer {
		return zap.NewProduction()
	}
	return zap.NewNop(), nil
}

// newProber builds the URL prober, opening the result cache when one is
// configured. A cache that fails to open degrades to direct probing. The
// returned cleanup closes the cache.
func newProber(cfg *config.Config, logger *zap.Logger) (*probe.Prober, func()) {
	var cache *probe.Cache
	cleanup := func() {}

	if cfg.Probe.CachePath != "" {
		c, err := probe.OpenCache(cfg.Probe.CachePath)
		if err != nil {
			logger.Warn("probe cache unavailable", zap.Error(err))
		} else {
			cache = c
			cleanup = func() { c.Close() }
		}
	}

	return probe.New(cfg.ProbeTimeout(), cache, cfg.ProbeCacheTTL(), logger), cleanup
}

// newService builds the generation service from config.
func newService(cfg *config.Config, logger *zap.Logger) *orchestrate.Service {
	client := openai.NewClient(openai.Config{
		BaseURL:     cfg.OpenAI.BaseURL,
		APIKey:      cfg.APIKey(),
		Model:       cfg.OpenAI.Model,
		Temperature: cfg.OpenAI.Temperature,
		MaxTokens:   cfg.OpenAI.MaxTokens,
		Timeout:     cfg.RequestTimeout(),
	}, logger)
	return orchestrate.NewService(client, logger, cfg.Chat.MaxTurns)
}
