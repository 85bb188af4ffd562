package mindmap

import "sort"

// Stats summarizes the structure of a document: counts, per-node degree, and
// the defects a generated graph commonly has (isolated nodes, duplicate IDs).
type Stats struct {
	NodeCount    int            `json:"node_count"`
	EdgeCount    int            `json:"edge_count"`
	Degree       map[string]int `json:"degree"`
	IsolatedIDs  []string       `json:"isolated_ids"`
	DuplicateIDs []string       `json:"duplicate_ids"`
	MaxDegree    int            `json:"max_degree"`
}

// ComputeStats walks the document once and builds its structural report.
// Degree is undirected: an edge contributes to both endpoints.
func ComputeStats(doc *Document) *Stats {
	stats := &Stats{
		NodeCount: len(doc.Nodes),
		EdgeCount: len(doc.Edges),
		Degree:    make(map[string]int, len(doc.Nodes)),
	}

	seen := make(map[string]int, len(doc.Nodes))
	for _, n := range doc.Nodes {
		seen[n.ID]++
		if _, ok := stats.Degree[n.ID]; !ok {
			stats.Degree[n.ID] = 0
		}
	}
	for id, count := range seen {
		if count > 1 {
			stats.DuplicateIDs = append(stats.DuplicateIDs, id)
		}
	}
	sort.Strings(stats.DuplicateIDs)

	for _, e := range doc.Edges {
		stats.Degree[e.Source]++
		stats.Degree[e.Target]++
	}

	for id, degree := range stats.Degree {
		if degree == 0 {
			stats.IsolatedIDs = append(stats.IsolatedIDs, id)
		}
		if degree > stats.MaxDegree {
			stats.MaxDegree = degree
		}
	}
	sort.Strings(stats.IsolatedIDs)

	return stats
}
