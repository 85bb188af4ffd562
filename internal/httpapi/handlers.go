package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"mindmapai/mindweave/internal/mindmap"
	"mindmapai/mindweave/internal/render"
	"mindmapai/mindweave/internal/session"
)

type generateRequest struct {
	Topic string `json:"topic" validate:"required,min=1,max=2000"`
}

type chatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=4000"`
}

type topicRequest struct {
	Topic string `json:"topic" validate:"max=2000"`
}

type probeRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type mindmapResponse struct {
	Document *mindmap.Document `json:"document"`
	Render   render.Payload    `json:"render"`
	Warnings []string          `json:"warnings,omitempty"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "session": s.sess.ID()})
}

// handleGenerate runs the topic round-trip. A failed generation reports the
// error and leaves the previously generated document in place.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	doc, warnings, err := s.svc.GenerateMindmap(r.Context(), s.sess, req.Topic)
	if err != nil {
		// Whether the upstream service failed outright or returned garbage,
		// the fault is upstream; the held document is untouched.
		s.logger.Warn("generation failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, mindmapResponse{
		Document: doc,
		Render:   render.Build(doc, s.renderOpts),
		Warnings: warnings,
	})
}

func (s *Server) handleGetMindmap(w http.ResponseWriter, r *http.Request) {
	doc := s.sess.Document()
	if doc == nil {
		writeError(w, http.StatusNotFound, "no mindmap generated yet")
		return
	}
	writeJSON(w, http.StatusOK, mindmapResponse{
		Document: doc,
		Render:   render.Build(doc, s.renderOpts),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	doc := s.sess.Document()
	if doc == nil {
		writeError(w, http.StatusNotFound, "no mindmap generated yet")
		return
	}
	writeJSON(w, http.StatusOK, mindmap.ComputeStats(doc))
}

// handleGetNode serves the detail panel for a selection event.
func (s *Server) handleGetNode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	node, ok := s.sess.FindNodeByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "node not found: "+id)
		return
	}
	writeJSON(w, http.StatusOK, node)
}

func (s *Server) handleExample(w http.ResponseWriter, r *http.Request) {
	doc := mindmap.Example()
	s.sess.ReplaceDocument(doc)
	s.sess.SetPendingTopic("AI skills needed in the manufacturing industry")

	writeJSON(w, http.StatusOK, mindmapResponse{
		Document: doc,
		Render:   render.Build(doc, s.renderOpts),
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	reply, err := s.svc.Chat(r.Context(), s.sess, req.Message)
	if err != nil {
		if errors.Is(err, session.ErrEmptyMessage) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Warn("chat failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"transcript": s.sess.Transcript()})
}

func (s *Server) handleGetTopic(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"topic": s.sess.PendingTopic()})
}

func (s *Server) handlePutTopic(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	s.sess.SetPendingTopic(req.Topic)
	writeJSON(w, http.StatusOK, map[string]string{"topic": req.Topic})
}

func (s *Server) handleProbe(w http.ResponseWriter, r *http.Request) {
	var req probeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	reachable := s.prober.Check(r.Context(), req.URL)
	writeJSON(w, http.StatusOK, map[string]any{"url": req.URL, "reachable": reachable})
}

// decodeAndValidate reads a JSON body into dst and validates it. On failure
// it writes the 400 response and returns false.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "validation error: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
