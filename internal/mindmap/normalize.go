package mindmap

import "fmt"

// Normalize validates a decoded document tree and coerces it into the
// canonical Document shape. Returns a *SchemaError naming the first offending
// field when the document is unusable, and a warning list for entries that
// were dropped without failing the whole document.
//
// Field policy, deliberately asymmetric:
//   - "nodes" is required and must be an array; a mindmap without nodes is
//     not a mindmap, so this fails hard. An empty array is still valid.
//   - "edges" is optional; missing or mistyped edges degrade to an empty
//     edge list rather than rejecting an otherwise usable document.
//   - individual malformed or dangling edges are skipped with a warning
//     (partial mindmap beats total failure for untrusted generated output).
func Normalize(raw map[string]any) (*Document, []string, error) {
	var warnings []string

	nodesVal, ok := raw["nodes"]
	if !ok {
		return nil, nil, &SchemaError{Field: "nodes", Reason: "required field is missing"}
	}
	nodesSeq, ok := nodesVal.([]any)
	if !ok {
		return nil, nil, &SchemaError{Field: "nodes", Reason: fmt.Sprintf("expected an array, got %T", nodesVal)}
	}

	doc := &Document{
		Nodes: make([]Node, 0, len(nodesSeq)),
	}

	for i, entry := range nodesSeq {
		obj, ok := entry.(map[string]any)
		if !ok {
			return nil, nil, &SchemaError{
				Field:  fmt.Sprintf("nodes[%d]", i),
				Reason: fmt.Sprintf("expected an object, got %T", entry),
			}
		}

		id, ok := obj["id"].(string)
		if !ok || id == "" {
			return nil, nil, &SchemaError{
				Field:  fmt.Sprintf("nodes[%d].id", i),
				Reason: "required string is missing",
			}
		}
		label, ok := obj["label"].(string)
		if !ok || label == "" {
			return nil, nil, &SchemaError{
				Field:  fmt.Sprintf("nodes[%d].label", i),
				Reason: "required string is missing",
			}
		}

		// Optional fields never fail: a non-string explanation is treated as
		// absent, and resources are coerced to one canonical shape.
		explanation, _ := obj["explanation"].(string)

		doc.Nodes = append(doc.Nodes, Node{
			ID:          id,
			Label:       label,
			Explanation: explanation,
			Resources:   coerceResources(obj["resources"]),
		})
	}

	ids := doc.NodeIDs()

	edgesSeq, ok := raw["edges"].([]any)
	if !ok {
		if _, present := raw["edges"]; present {
			warnings = append(warnings, fmt.Sprintf("edges: expected an array, got %T; treating as empty", raw["edges"]))
		}
		doc.Edges = []Edge{}
		return doc, warnings, nil
	}

	doc.Edges = make([]Edge, 0, len(edgesSeq))
	for i, entry := range edgesSeq {
		obj, ok := entry.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("edges[%d]: not an object, skipped", i))
			continue
		}
		source, ok := obj["source"].(string)
		if !ok || source == "" {
			warnings = append(warnings, fmt.Sprintf("edges[%d]: missing string source, skipped", i))
			continue
		}
		target, ok := obj["target"].(string)
		if !ok || target == "" {
			warnings = append(warnings, fmt.Sprintf("edges[%d]: missing string target, skipped", i))
			continue
		}
		if !ids[source] || !ids[target] {
			warnings = append(warnings, fmt.Sprintf("edges[%d]: %s -> %s references a missing node, skipped", i, source, target))
			continue
		}
		doc.Edges = append(doc.Edges, Edge{Source: source, Target: target})
	}

	return doc, warnings, nil
}

// coerceResources folds the three shapes the service emits for "resources"
// (absent, single string, array) into one ordered string slice. Non-string
// array elements are dropped; the source is untrusted free text, so that is
// a silent filter, not an error.
func coerceResources(v any) []string {
	switch val := v.(type) {
	case nil:
		return []string{}
	case string:
		return []string{val}
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
