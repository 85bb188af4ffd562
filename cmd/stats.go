package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"mindmapai/mindweave/internal/mindmap"
	"mindmapai/mindweave/internal/ui"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Report the structure of a mindmap document",
	Long: `Reads a mindmap from a file (or stdin) and prints its structural report.
The input may be a clean document or a raw service response; the same
unwrapping pipeline is applied either way.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		doc, warnings, err := mindmap.Parse(string(data))
		if err != nil {
			return err
		}
		ui.PrintWarnings(warnings)

		stats := mindmap.ComputeStats(doc)
		if statsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}

		ui.PrintStats(stats)
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print the report as JSON")
	rootCmd.AddCommand(statsCmd)
}
