package mindmap

import (
	"errors"
	"fmt"
)

// Failures in the response pipeline. All of these are recoverable: the caller
// reports them and keeps whatever document it already had.
var (
	// ErrEmptyResponse means the service returned no usable text at all.
	ErrEmptyResponse = errors.New("empty response from generation service")

	// ErrMalformedResponse means no JSON object boundaries were found in the
	// response text.
	ErrMalformedResponse = errors.New("no JSON object found in response")
)

// DecodeError reports a JSON syntax failure in the extracted candidate text.
type DecodeError struct {
	Offset int64 // byte offset of the syntax error, 0 if unknown
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("decoding mindmap JSON at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("decoding mindmap JSON: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// SchemaError reports the first field of a decoded document that violates the
// mindmap schema.
type SchemaError struct {
	Field  string // e.g. "nodes", "nodes[2].id"
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid mindmap document: %s: %s", e.Field, e.Reason)
}
