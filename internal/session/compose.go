package session

// Compose builds the ordered message sequence for the next chat request: the
// system framing first, then transcript turns in insertion order. The newly
// appended user turn is already in the transcript when this runs.
//
// maxTurns bounds how much history is resubmitted; only the most recent
// maxTurns turns are kept (the source behavior never truncated, which grows
// cost without bound on long sessions). maxTurns <= 0 means unbounded.
func (s *Session) Compose(systemPrompt string, maxTurns int) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.transcript
	if maxTurns > 0 && len(history) > maxTurns {
		history = history[len(history)-maxTurns:]
	}

	out := make([]Turn, 0, len(history)+1)
	out = append(out, Turn{Role: RoleSystem, Message: systemPrompt})
	out = append(out, history...)
	return out
}
