package mindmap

import (
	"errors"
	"strings"
	"testing"
)

func decodeForTest(t *testing.T, s string) map[string]any {
	t.Helper()
	doc, err := Decode(s)
	if err != nil {
		t.Fatalf("test fixture does not decode: %v", err)
	}
	return doc
}

func TestNormalize_TwoNodesOneEdge(t *testing.T) {
	raw := decodeForTest(t, `{
		"nodes": [{"id":"1","label":"A"},{"id":"2","label":"B"}],
		"edges": [{"source":"1","target":"2"}]
	}`)

	doc, warnings, err := Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(doc.Nodes) != 2 || len(doc.Edges) != 1 {
		t.Fatalf("got %d nodes, %d edges", len(doc.Nodes), len(doc.Edges))
	}
	if doc.Nodes[1].Label != "B" {
		t.Errorf("node order not preserved: %+v", doc.Nodes)
	}
}

func TestNormalize_MissingNodes(t *testing.T) {
	_, _, err := Normalize(decodeForTest(t, `{"edges":[]}`))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("want *SchemaError, got %v", err)
	}
	if schemaErr.Field != "nodes" {
		t.Errorf("error should name nodes, got %q", schemaErr.Field)
	}
}

func TestNormalize_NodesNotArray(t *testing.T) {
	_, _, err := Normalize(decodeForTest(t, `{"nodes":"oops"}`))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("want *SchemaError, got %v", err)
	}
}

func TestNormalize_EmptyNodesIsValid(t *testing.T) {
	doc, _, err := Normalize(decodeForTest(t, `{"nodes":[]}`))
	if err != nil {
		t.Fatalf("empty mindmap should be legal: %v", err)
	}
	if len(doc.Nodes) != 0 || len(doc.Edges) != 0 {
		t.Errorf("expected empty document, got %+v", doc)
	}
}

func TestNormalize_NodeMissingID(t *testing.T) {
	_, _, err := Normalize(decodeForTest(t, `{"nodes":[{"label":"A"}]}`))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("want *SchemaError, got %v", err)
	}
	if !strings.Contains(schemaErr.Field, "nodes[0]") {
		t.Errorf("error should name the node position, got %q", schemaErr.Field)
	}
}

func TestNormalize_NodeMissingLabel(t *testing.T) {
	_, _, err := Normalize(decodeForTest(t, `{"nodes":[{"id":"1","label":"A"},{"id":"2"}]}`))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("want *SchemaError, got %v", err)
	}
	if schemaErr.Field != "nodes[1].label" {
		t.Errorf("got field %q", schemaErr.Field)
	}
}

func TestNormalize_ExplanationDefaultsEmpty(t *testing.T) {
	doc, _, err := Normalize(decodeForTest(t, `{"nodes":[{"id":"1","label":"A","explanation":42}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Nodes[0].Explanation != "" {
		t.Errorf("non-string explanation should default to empty, got %q", doc.Nodes[0].Explanation)
	}
}

func TestNormalize_ResourcesScalar(t *testing.T) {
	doc, _, err := Normalize(decodeForTest(t, `{"nodes":[{"id":"1","label":"A","resources":"x"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	got := doc.Nodes[0].Resources
	if len(got) != 1 || got[0] != "x" {
		t.Errorf("scalar resources should coerce to single-element slice, got %v", got)
	}
}

func TestNormalize_ResourcesAbsent(t *testing.T) {
	doc, _, err := Normalize(decodeForTest(t, `{"nodes":[{"id":"1","label":"A"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	got := doc.Nodes[0].Resources
	if got == nil || len(got) != 0 {
		t.Errorf("absent resources should coerce to empty slice, got %v", got)
	}
}

func TestNormalize_ResourcesFiltersNonStrings(t *testing.T) {
	doc, _, err := Normalize(decodeForTest(t, `{"nodes":[{"id":"1","label":"A","resources":["a",2,null,"b"]}]}`))
	if err != nil {
		t.Fatal(err)
	}
	got := doc.Nodes[0].Resources
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("got %v", got)
	}
}

func TestNormalize_MissingEdgesIsEmpty(t *testing.T) {
	doc, warnings, err := Normalize(decodeForTest(t, `{"nodes":[{"id":"1","label":"A"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("missing edges should not warn, got %v", warnings)
	}
	if doc.Edges == nil || len(doc.Edges) != 0 {
		t.Errorf("expected empty edge slice, got %v", doc.Edges)
	}
}

func TestNormalize_EdgesWrongTypeWarns(t *testing.T) {
	doc, warnings, err := Normalize(decodeForTest(t, `{"nodes":[{"id":"1","label":"A"}],"edges":"oops"}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Edges) != 0 {
		t.Errorf("expected empty edges, got %v", doc.Edges)
	}
	if len(warnings) != 1 {
		t.Errorf("expected one warning, got %v", warnings)
	}
}

func TestNormalize_MalformedEdgeSkipped(t *testing.T) {
	doc, warnings, err := Normalize(decodeForTest(t, `{
		"nodes": [{"id":"1","label":"A"},{"id":"2","label":"B"}],
		"edges": [{"source":"1"},{"source":"1","target":"2"},"junk"]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Edges) != 1 {
		t.Fatalf("expected the one valid edge to survive, got %v", doc.Edges)
	}
	if len(warnings) != 2 {
		t.Errorf("expected two warnings, got %v", warnings)
	}
}

func TestNormalize_DanglingEdgeSkipped(t *testing.T) {
	doc, warnings, err := Normalize(decodeForTest(t, `{
		"nodes": [{"id":"1","label":"A"}],
		"edges": [{"source":"1","target":"99"}]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Edges) != 0 {
		t.Errorf("dangling edge should be skipped, got %v", doc.Edges)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "missing node") {
		t.Errorf("warning should name the missing reference, got %v", warnings)
	}
}

func TestNormalize_DuplicateIDsKeptInSequence(t *testing.T) {
	doc, _, err := Normalize(decodeForTest(t, `{
		"nodes": [{"id":"1","label":"First"},{"id":"1","label":"Second"}]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Nodes) != 2 {
		t.Errorf("duplicates stay in the ordered sequence, got %d nodes", len(doc.Nodes))
	}
}
