package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mindmapai/mindweave/internal/mindmap"
	"mindmapai/mindweave/internal/openai"
	"mindmapai/mindweave/internal/orchestrate"
	"mindmapai/mindweave/internal/probe"
	"mindmapai/mindweave/internal/session"
)

type stubClient struct {
	replies []string
	errs    []error
	calls   int
}

func (c *stubClient) ChatCompletion(_ context.Context, _ []openai.Message) (string, error) {
	i := c.calls
	c.calls++
	if i < len(c.errs) && c.errs[i] != nil {
		return "", c.errs[i]
	}
	if i < len(c.replies) {
		return c.replies[i], nil
	}
	return "", errors.New("stub exhausted")
}

func testServer(t *testing.T, client orchestrate.ChatCompleter) *Server {
	t.Helper()
	sess := session.New()
	svc := orchestrate.NewService(client, nil, 0)
	prober := probe.New(time.Second, nil, 0, nil)
	return NewServer(svc, sess, prober, nil)
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, testServer(t, &stubClient{}), http.MethodGet, "/api/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestGenerate_Success(t *testing.T) {
	s := testServer(t, &stubClient{replies: []string{
		`{"nodes":[{"id":"1","label":"A"},{"id":"2","label":"B"}],"edges":[{"source":"1","target":"2"}]}`,
	}})

	rec := doRequest(t, s, http.MethodPost, "/api/mindmap", `{"topic":"graph theory"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var resp mindmapResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Document.Nodes) != 2 || len(resp.Render.Nodes) != 2 {
		t.Errorf("response incomplete: %+v", resp)
	}

	// The document is now current state.
	rec = doRequest(t, s, http.MethodGet, "/api/mindmap", "")
	if rec.Code != http.StatusOK {
		t.Errorf("GET after generate: status %d", rec.Code)
	}
}

func TestGenerate_MissingTopic(t *testing.T) {
	rec := doRequest(t, testServer(t, &stubClient{}), http.MethodPost, "/api/mindmap", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d", rec.Code)
	}
}

func TestGenerate_UpstreamGarbageKeepsPriorDocument(t *testing.T) {
	s := testServer(t, &stubClient{replies: []string{
		`{"nodes":[{"id":"1","label":"Keep"}]}`,
		"no json here, sorry",
	}})

	doRequest(t, s, http.MethodPost, "/api/mindmap", `{"topic":"first"}`)
	rec := doRequest(t, s, http.MethodPost, "/api/mindmap", `{"topic":"second"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status %d", rec.Code)
	}

	rec = doRequest(t, s, http.MethodGet, "/api/mindmap/nodes/1", "")
	if rec.Code != http.StatusOK {
		t.Errorf("prior document should survive a failed regeneration, status %d", rec.Code)
	}
}

func TestGetMindmap_BeforeGeneration(t *testing.T) {
	rec := doRequest(t, testServer(t, &stubClient{}), http.MethodGet, "/api/mindmap", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status %d", rec.Code)
	}
}

func TestGetNode_Detail(t *testing.T) {
	s := testServer(t, &stubClient{})
	doRequest(t, s, http.MethodPost, "/api/mindmap/example", `{}`)

	rec := doRequest(t, s, http.MethodGet, "/api/mindmap/nodes/3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var node mindmap.Node
	if err := json.Unmarshal(rec.Body.Bytes(), &node); err != nil {
		t.Fatal(err)
	}
	if node.Label != "Online Courses" || len(node.Resources) != 2 {
		t.Errorf("got %+v", node)
	}

	rec = doRequest(t, s, http.MethodGet, "/api/mindmap/nodes/99", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown node: status %d", rec.Code)
	}
}

func TestExample_PrefillsTopic(t *testing.T) {
	s := testServer(t, &stubClient{})
	doRequest(t, s, http.MethodPost, "/api/mindmap/example", `{}`)

	rec := doRequest(t, s, http.MethodGet, "/api/topic", "")
	var resp map[string]string
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if !strings.Contains(resp["topic"], "manufacturing") {
		t.Errorf("topic buffer not pre-filled: %q", resp["topic"])
	}
}

func TestChat_RoundTrip(t *testing.T) {
	s := testServer(t, &stubClient{replies: []string{"Nodes are concepts."}})

	rec := doRequest(t, s, http.MethodPost, "/api/chat", `{"message":"what are nodes?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, s, http.MethodGet, "/api/chat", "")
	var resp struct {
		Transcript []session.Turn `json:"transcript"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Transcript) != 2 {
		t.Errorf("transcript length %d, want 2", len(resp.Transcript))
	}
}

func TestChat_UpstreamFailure(t *testing.T) {
	s := testServer(t, &stubClient{errs: []error{errors.New("rate limited")}})

	rec := doRequest(t, s, http.MethodPost, "/api/chat", `{"message":"hello"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status %d", rec.Code)
	}

	// No synthetic assistant turn was appended.
	rec = doRequest(t, s, http.MethodGet, "/api/chat", "")
	var resp struct {
		Transcript []session.Turn `json:"transcript"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.Transcript) != 1 {
		t.Errorf("transcript: %+v", resp.Transcript)
	}
}

func TestProbe_Validation(t *testing.T) {
	rec := doRequest(t, testServer(t, &stubClient{}), http.MethodPost, "/api/probe", `{"url":"not a url"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d", rec.Code)
	}
}

func TestStats_Endpoint(t *testing.T) {
	s := testServer(t, &stubClient{})
	doRequest(t, s, http.MethodPost, "/api/mindmap/example", `{}`)

	rec := doRequest(t, s, http.MethodGet, "/api/mindmap/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var stats mindmap.Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatal(err)
	}
	if stats.NodeCount != 4 || stats.EdgeCount != 3 {
		t.Errorf("got %+v", stats)
	}
}
