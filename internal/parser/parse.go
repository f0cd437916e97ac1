package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"unicode/utf8"
)

var (
	ErrMalformedJSON     = errors.New("malformed json")
	ErrInvalidBodyFormat = errors.New("body is not a json object")
)

// MessageResponse is the body of every non-data response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ParsePlayerData checks that data holds exactly one JSON object and returns it
// compacted. Key order and number formatting are kept as submitted. JSON text
// must be UTF-8, so bytes that are not are rejected rather than stored.
func ParsePlayerData(data []byte) (json.RawMessage, error) {
	if !utf8.Valid(data) || !json.Valid(data) {
		return nil, ErrMalformedJSON
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrInvalidBodyFormat
	}
	compacted := &bytes.Buffer{}
	if err := json.Compact(compacted, trimmed); err != nil {
		return nil, ErrMalformedJSON
	}
	return compacted.Bytes(), nil
}
