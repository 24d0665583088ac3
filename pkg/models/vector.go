package models

import "encoding/json"

// Vector is an embedding: an ordered, fixed-length sequence of floats.
// Lengths must match across profiles for similarity to be meaningful; the
// service does not enforce this.
type Vector []float64

// DecodeVector decodes an embedding column value. The backend may return the
// vector as a native JSON array or as a string-encoded array; any other
// shape, and any decode failure, is uniformly treated as absent.
func DecodeVector(raw json.RawMessage) (Vector, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, false
	}

	var vec Vector
	if err := json.Unmarshal(raw, &vec); err == nil {
		return vec, true
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, false
	}
	if err := json.Unmarshal([]byte(encoded), &vec); err != nil {
		return nil, false
	}
	return vec, true
}
