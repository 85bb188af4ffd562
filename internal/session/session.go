package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"mindmapai/mindweave/internal/mindmap"
)

// Role attributes a transcript turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in the conversation transcript. Turns are append-only;
// once inserted they are never mutated or reordered.
type Turn struct {
	Role    Role   `json:"role"`
	Message string `json:"message"`
}

var (
	// ErrEmptyMessage rejects appending a turn with no message text.
	ErrEmptyMessage = errors.New("turn message is empty")

	// ErrInvalidRole rejects transcript roles other than user/assistant.
	// The system framing is composed per request, never stored.
	ErrInvalidRole = errors.New("transcript role must be user or assistant")
)

// Session holds the state of one interactive mindmapping session: the current
// document, the conversation transcript, and the editable topic buffer. It is
// an explicitly owned value; the owner passes it to each interaction handler.
//
// The mutex serializes the owner's cooperative request cycles; a failed
// regeneration never touches the stored document.
type Session struct {
	mu sync.Mutex

	id           string
	doc          *mindmap.Document
	byID         map[string]int
	byLabel      map[string]int
	transcript   []Turn
	pendingTopic string
}

// New creates an empty session with a fresh identifier.
func New() *Session {
	return &Session{id: uuid.NewString()}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// ReplaceDocument swaps the current document wholesale and rebuilds the
// lookup indexes. With duplicate IDs or labels the later occurrence wins in
// the index while the ordered sequence keeps every entry for display.
func (s *Session) ReplaceDocument(doc *mindmap.Document) {
	byID := make(map[string]int, len(doc.Nodes))
	byLabel := make(map[string]int, len(doc.Nodes))
	for i, n := range doc.Nodes {
		byID[n.ID] = i
		byLabel[n.Label] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	s.byID = byID
	s.byLabel = byLabel
}

// Document returns the current document, or nil before the first successful
// generation.
func (s *Session) Document() *mindmap.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// FindNodeByID looks up a node by its identifier.
func (s *Session) FindNodeByID(id string) (mindmap.Node, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return mindmap.Node{}, false
	}
	i, ok := s.byID[id]
	if !ok {
		return mindmap.Node{}, false
	}
	return s.doc.Nodes[i], true
}

// FindNodeByLabel looks up a node by display label. Labels are a presentation
// convenience, not guaranteed unique; the last node with the label wins.
func (s *Session) FindNodeByLabel(label string) (mindmap.Node, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return mindmap.Node{}, false
	}
	i, ok := s.byLabel[label]
	if !ok {
		return mindmap.Node{}, false
	}
	return s.doc.Nodes[i], true
}

// AppendTurn appends one turn to the transcript.
func (s *Session) AppendTurn(role Role, message string) error {
	if role != RoleUser && role != RoleAssistant {
		return ErrInvalidRole
	}
	if message == "" {
		return ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, Turn{Role: role, Message: message})
	return nil
}

// Transcript returns a copy of the conversation so far.
func (s *Session) Transcript() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// SetPendingTopic stores the editable topic input buffer, e.g. when the
// example-loading action pre-fills it.
func (s *Session) SetPendingTopic(topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingTopic = topic
}

// PendingTopic returns the current topic input buffer.
func (s *Session) PendingTopic() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingTopic
}
