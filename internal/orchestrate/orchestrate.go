// Package orchestrate wires the generation service, the response pipeline,
// and the session model into the two user-facing round-trips: generate a
// mindmap and exchange a chat turn.
package orchestrate

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mindmapai/mindweave/internal/mindmap"
	"mindmapai/mindweave/internal/openai"
	"mindmapai/mindweave/internal/prompt"
	"mindmapai/mindweave/internal/session"
)

// ChatCompleter is the slice of the openai client this package needs.
type ChatCompleter interface {
	ChatCompletion(ctx context.Context, messages []openai.Message) (string, error)
}

// Service runs the interaction round-trips against one session.
type Service struct {
	client   ChatCompleter
	logger   *zap.Logger
	maxTurns int // transcript turns resubmitted per chat request; <=0 unbounded
}

// NewService builds a service. A nil logger disables logging.
func NewService(client ChatCompleter, logger *zap.Logger, maxTurns int) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger, maxTurns: maxTurns}
}

// GenerateMindmap runs one topic round-trip: prompt, completion, parse. On
// success the session's document is replaced; on any failure the session is
// left exactly as it was, so a failed regeneration never destroys a previous
// result.
func (s *Service) GenerateMindmap(ctx context.Context, sess *session.Session, topic string) (*mindmap.Document, []string, error) {
	if topic == "" {
		return nil, nil, fmt.Errorf("topic is empty")
	}

	raw, err := s.client.ChatCompletion(ctx, []openai.Message{
		{Role: string(session.RoleSystem), Content: prompt.System},
		{Role: string(session.RoleUser), Content: prompt.Mindmap(topic)},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("generating mindmap: %w", err)
	}

	doc, warnings, err := mindmap.Parse(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing mindmap response: %w", err)
	}
	for _, w := range warnings {
		s.logger.Warn("mindmap normalization", zap.String("warning", w))
	}

	sess.ReplaceDocument(doc)
	sess.SetPendingTopic(topic)

	s.logger.Info("mindmap generated",
		zap.String("session", sess.ID()),
		zap.Int("nodes", len(doc.Nodes)),
		zap.Int("edges", len(doc.Edges)),
	)
	return doc, warnings, nil
}

// Chat runs one conversation round-trip: append the user turn, compose the
// bounded message sequence, call the service, append the reply. A failed call
// appends no synthetic assistant turn and leaves the transcript valid.
func (s *Service) Chat(ctx context.Context, sess *session.Session, message string) (string, error) {
	if err := sess.AppendTurn(session.RoleUser, message); err != nil {
		return "", err
	}

	framing := prompt.ChatSystem(sess.Document())
	reply, err := s.client.ChatCompletion(ctx, toMessages(sess.Compose(framing, s.maxTurns)))
	if err != nil {
		return "", fmt.Errorf("chat turn: %w", err)
	}

	if err := sess.AppendTurn(session.RoleAssistant, reply); err != nil {
		return "", fmt.Errorf("recording assistant turn: %w", err)
	}
	return reply, nil
}

func toMessages(turns []session.Turn) []openai.Message {
	out := make([]openai.Message, len(turns))
	for i, t := range turns {
		out[i] = openai.Message{Role: string(t.Role), Content: t.Message}
	}
	return out
}
