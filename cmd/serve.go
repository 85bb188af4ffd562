package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mindmapai/mindweave/internal/httpapi"
	"mindmapai/mindweave/internal/session"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the session API for the web front end",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(true)
		if err != nil {
			return err
		}
		defer logger.Sync()

		addr := cfg.Serve.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		prober, cleanup := newProber(cfg, logger)
		defer cleanup()

		svc := newService(cfg, logger)
		server := httpapi.NewServer(svc, session.New(), prober, logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.Run(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
