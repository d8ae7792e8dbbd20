package api

import (
	"encoding/json"
	"fmt"
)

// Envelope is the response wrapper every backend endpoint uses. Success is
// declared through the boolean rather than the HTTP status alone.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// decodeData unmarshals the envelope's data payload into T. A payload that
// does not match the expected shape is reported as ErrBadResponse.
func decodeData[T any](env *Envelope) (T, error) {
	var v T
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return v, nil
}
