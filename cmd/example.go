package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"mindmapai/mindweave/internal/mindmap"
	"mindmapai/mindweave/internal/render"
	"mindmapai/mindweave/internal/ui"
)

var exampleJSON bool

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print the built-in example mindmap",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := mindmap.Example()

		if exampleJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(render.Build(doc, render.DefaultOptions()))
		}

		ui.PrintDocument(doc)
		return nil
	},
}

func init() {
	exampleCmd.Flags().BoolVar(&exampleJSON, "json", false, "Print the render payload as JSON")
	rootCmd.AddCommand(exampleCmd)
}
