package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Profile is an attendee's profile row. Embedding is kept raw until decoded
// with DecodeVector, since the backend may hand it back in more than one
// shape.
type Profile struct {
	ID        uuid.UUID       `json:"id"`
	Hobbies   []string        `json:"hobbies"`
	About     string          `json:"about,omitempty"`
	Embedding json.RawMessage `json:"embedding,omitempty"`
}

// Event is an event row. Code is the join code encoded into the QR link.
type Event struct {
	ID    uuid.UUID `json:"id"`
	Code  string    `json:"code"`
	QRURL string    `json:"qr_url,omitempty"`
}

// Attendance associates a user with an event's roster. Read-only from this
// service's perspective.
type Attendance struct {
	EventID uuid.UUID `json:"event_id"`
	UserID  uuid.UUID `json:"user_id"`
}

// Match is a directional match row created by match computation.
type Match struct {
	UserID         uuid.UUID `json:"user_id"`
	MatchUserID    uuid.UUID `json:"match_user_id"`
	EventID        uuid.UUID `json:"event_id"`
	WhyMeet        string    `json:"why_meet"`
	ThingsInCommon string    `json:"things_in_common"`
	DiveDeeper     string    `json:"dive_deeper"`
}

// MatchResult is a persisted match as returned to the caller, including the
// raw similarity score that ranked it.
type MatchResult struct {
	MatchUserID    uuid.UUID `json:"match_user_id"`
	Similarity     float64   `json:"similarity"`
	WhyMeet        string    `json:"why_meet"`
	ThingsInCommon string    `json:"things_in_common"`
	DiveDeeper     string    `json:"dive_deeper"`
}

// Recap is a per (event, user) row holding a generated recap image URL.
type Recap struct {
	EventID  uuid.UUID `json:"event_id"`
	UserID   uuid.UUID `json:"user_id"`
	RecapURL string    `json:"recap_url"`
}
