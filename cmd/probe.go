package cmd

import (
	"github.com/spf13/cobra"

	"mindmapai/mindweave/internal/ui"
)

var probeCmd = &cobra.Command{
	Use:   "probe <url>...",
	Short: "Check whether resource URLs are reachable",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(false)
		if err != nil {
			return err
		}
		defer logger.Sync()

		prober, cleanup := newProber(cfg, logger)
		defer cleanup()

		for _, url := range args {
			if prober.Check(cmd.Context(), url) {
				ui.Good.Printf("reachable    %s\n", url)
			} else {
				ui.Bad.Printf("unreachable  %s\n", url)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
