package mindmap

import "strings"

// Unwrap strips conversational wrapping from a raw generation response and
// returns the substring believed to hold the JSON document. The service is
// asked for bare JSON but often wraps it in a markdown code fence or
// surrounds it with prose anyway, so:
//
//  1. leading/trailing whitespace is trimmed
//  2. a leading ``` fence line (with optional language tag) and a trailing
//     closing fence line are dropped
//  3. everything outside the first '{' and the last '}' is discarded
//
// Returns ErrEmptyResponse when nothing is left to parse and
// ErrMalformedResponse when no object boundaries exist. The result is a
// candidate only; it has not been validated as well-formed JSON.
func Unwrap(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", ErrEmptyResponse
	}

	text = strings.TrimSpace(stripFence(text))
	if text == "" {
		return "", ErrEmptyResponse
	}

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < 0 || end < start {
		return "", ErrMalformedResponse
	}

	return text[start : end+1], nil
}

// stripFence removes a markdown code-fence wrapper if present. The opening
// fence must be the first line; the closing fence must be the last non-empty
// line. Anything else is left alone.
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	lines = lines[1:] // drop the opening fence (and its language tag)

	// Walk back over trailing blank lines to find the closing fence.
	last := len(lines) - 1
	for last >= 0 && strings.TrimSpace(lines[last]) == "" {
		last--
	}
	if last >= 0 && strings.HasPrefix(strings.TrimSpace(lines[last]), "```") {
		lines = lines[:last]
	}

	return strings.Join(lines, "\n")
}
