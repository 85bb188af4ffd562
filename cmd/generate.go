package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mindmapai/mindweave/internal/render"
	"mindmapai/mindweave/internal/session"
	"mindmapai/mindweave/internal/ui"
)

var generateJSON bool

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a mindmap for a topic and print it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(false)
		if err != nil {
			return err
		}
		defer logger.Sync()

		svc := newService(cfg, logger)
		sess := session.New()

		doc, warnings, err := svc.GenerateMindmap(cmd.Context(), sess, topic)
		if err != nil {
			return err
		}

		if generateJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(render.Build(doc, render.DefaultOptions()))
		}

		ui.PrintWarnings(warnings)
		ui.PrintDocument(doc)
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Print the render payload as JSON")
	rootCmd.AddCommand(generateCmd)
}
