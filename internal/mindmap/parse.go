package mindmap

// Parse runs the full response pipeline: unwrap the raw service text, decode
// the candidate JSON, and normalize it into a canonical Document. Warnings
// describe entries that were dropped without failing the document.
//
// Clean JSON passes through unchanged, so Parse also accepts documents that
// were never wrapped in the first place.
func Parse(raw string) (*Document, []string, error) {
	candidate, err := Unwrap(raw)
	if err != nil {
		return nil, nil, err
	}

	decoded, err := Decode(candidate)
	if err != nil {
		return nil, nil, err
	}

	return Normalize(decoded)
}
