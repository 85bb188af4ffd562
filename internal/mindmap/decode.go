package mindmap

import (
	"encoding/json"
	"errors"
)

// Decode parses an unwrapped candidate string as a generic JSON object tree.
// Any syntax violation is surfaced as a *DecodeError; nothing is retried here.
// The upstream generation call is non-deterministic, so retry is a caller
// policy, not a decoder one.
func Decode(candidate string) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		var syn *json.SyntaxError
		if errors.As(err, &syn) {
			return nil, &DecodeError{Offset: syn.Offset, Err: err}
		}
		var typ *json.UnmarshalTypeError
		if errors.As(err, &typ) {
			return nil, &DecodeError{Offset: typ.Offset, Err: err}
		}
		return nil, &DecodeError{Err: err}
	}
	return doc, nil
}
