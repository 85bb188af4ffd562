// Package ui holds the terminal output styles and document printers shared
// by the CLI commands.
package ui

import (
	"fmt"

	"github.com/fatih/color"

	"mindmapai/mindweave/internal/mindmap"
)

var (
	Title  = color.New(color.FgHiCyan, color.Bold)
	Label  = color.New(color.FgCyan)
	Subtle = color.New(color.FgHiBlack)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
	Warn   = color.New(color.FgYellow)
)

// PrintDocument renders a document as an indented node list with its edges.
func PrintDocument(doc *mindmap.Document) {
	Title.Printf("Mindmap: %d nodes, %d edges\n\n", len(doc.Nodes), len(doc.Edges))

	for _, n := range doc.Nodes {
		Label.Printf("  [%s] %s\n", n.ID, n.Label)
		if n.Explanation != "" {
			fmt.Printf("      %s\n", n.Explanation)
		}
		for _, res := range n.Resources {
			Subtle.Printf("      - %s\n", res)
		}
	}

	if len(doc.Edges) > 0 {
		fmt.Println()
		Title.Println("Edges:")
		for _, e := range doc.Edges {
			fmt.Printf("  %s -> %s\n", e.Source, e.Target)
		}
	}
}

// PrintNode renders one node's detail view. An empty explanation gets the
// presentation default; the data itself stays empty.
func PrintNode(n mindmap.Node) {
	Title.Println(n.Label)
	if n.Explanation != "" {
		fmt.Println(n.Explanation)
	} else {
		Subtle.Println("No explanation provided.")
	}
	if len(n.Resources) > 0 {
		fmt.Println()
		Title.Println("Resources:")
		for _, res := range n.Resources {
			fmt.Printf("  %s\n", res)
		}
	}
}

// PrintStats renders a structural report.
func PrintStats(stats *mindmap.Stats) {
	Title.Println("Graph report")
	fmt.Printf("  nodes:      %d\n", stats.NodeCount)
	fmt.Printf("  edges:      %d\n", stats.EdgeCount)
	fmt.Printf("  max degree: %d\n", stats.MaxDegree)
	if len(stats.IsolatedIDs) > 0 {
		Warn.Printf("  isolated:   %v\n", stats.IsolatedIDs)
	}
	if len(stats.DuplicateIDs) > 0 {
		Warn.Printf("  duplicates: %v\n", stats.DuplicateIDs)
	}
}

// PrintWarnings renders normalization warnings.
func PrintWarnings(warnings []string) {
	for _, w := range warnings {
		Warn.Printf("warning: %s\n", w)
	}
}
