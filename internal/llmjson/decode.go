package llmjson

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoCandidate is returned when the text contains nothing that looks like JSON.
var ErrNoCandidate = errors.New("no json candidate found in response")

// ParseError is returned when every candidate failed to decode into a JSON object.
type ParseError struct {
	Candidates int
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse json response (%d candidates): %v", e.Candidates, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Decode extracts candidates from raw and returns the first one that decodes into a JSON object.
func Decode(raw string) (map[string]any, error) {
	candidates := Candidates(raw)
	if len(candidates) == 0 {
		return nil, ErrNoCandidate
	}

	var lastErr error
	for _, candidate := range candidates {
		var data map[string]any
		if err := json.Unmarshal([]byte(candidate), &data); err != nil {
			lastErr = err
			continue
		}
		if data == nil {
			lastErr = errors.New("json value is not an object")
			continue
		}
		return data, nil
	}

	return nil, &ParseError{Candidates: len(candidates), Err: lastErr}
}
