// Package render shapes a mindmap document into the payload the interactive
// graph widget consumes. The widget draws the picture and reports node
// selections back; nothing here talks to it directly.
package render

import "mindmapai/mindweave/internal/mindmap"

// NodeView is one node as the widget draws it.
type NodeView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Size  int    `json:"size"`
}

// EdgeView is one drawn edge.
type EdgeView struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Options is the widget display configuration.
type Options struct {
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Directed       bool   `json:"directed"`
	Physics        bool   `json:"physics"`
	HighlightColor string `json:"highlightColor"`
	LinkDistance   int    `json:"linkDistance"`
}

// DefaultOptions returns the canvas configuration the tool has always used.
func DefaultOptions() Options {
	return Options{
		Width:          1200,
		Height:         500,
		Directed:       true,
		Physics:        true,
		HighlightColor: "#F7A7A6",
		LinkDistance:   200,
	}
}

// Payload is the complete rendering request.
type Payload struct {
	Nodes  []NodeView `json:"nodes"`
	Edges  []EdgeView `json:"edges"`
	Config Options    `json:"config"`
}

const (
	baseSize    = 20
	sizePerEdge = 3
	maxSize     = 44
)

// Build converts a document into a render payload. Node size grows with
// degree so hubs stand out on the canvas.
func Build(doc *mindmap.Document, opts Options) Payload {
	stats := mindmap.ComputeStats(doc)

	nodes := make([]NodeView, len(doc.Nodes))
	for i, n := range doc.Nodes {
		size := baseSize + sizePerEdge*stats.Degree[n.ID]
		if size > maxSize {
			size = maxSize
		}
		nodes[i] = NodeView{ID: n.ID, Label: n.Label, Size: size}
	}

	edges := make([]EdgeView, len(doc.Edges))
	for i, e := range doc.Edges {
		edges[i] = EdgeView{Source: e.Source, Target: e.Target}
	}

	return Payload{Nodes: nodes, Edges: edges, Config: opts}
}
