package mindmap

// Node is one concept in a mindmap document.
type Node struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Explanation string   `json:"explanation,omitempty"`
	Resources   []string `json:"resources"`
}

// Edge is a directed connection between two nodes, by node ID.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Document is the canonical parsed mindmap: an ordered node list and an
// ordered edge list. Node IDs are the true keys; labels are display names
// and may repeat.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeIDs returns the set of node IDs present in the document.
func (d *Document) NodeIDs() map[string]bool {
	ids := make(map[string]bool, len(d.Nodes))
	for _, n := range d.Nodes {
		ids[n.ID] = true
	}
	return ids
}
