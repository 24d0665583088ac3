package models

import (
	"context"

	"github.com/google/uuid"
)

type ProfileStore interface {
	// GetProfile returns the profile for userID, or a NotFoundError.
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	// GetProfiles batch-fetches the profiles for the given ids. Missing rows
	// are simply absent from the result.
	GetProfiles(ctx context.Context, ids []uuid.UUID) ([]Profile, error)
	// UpdateEmbedding writes the embedding vector onto the user's profile.
	// Last write wins.
	UpdateEmbedding(ctx context.Context, userID uuid.UUID, vector Vector) error
}

type EventStore interface {
	// GetEvent returns the event row, or a NotFoundError.
	GetEvent(ctx context.Context, eventID uuid.UUID) (*Event, error)
	UpdateEventQRURL(ctx context.Context, eventID uuid.UUID, qrURL string) error
}

type AttendeeStore interface {
	// GetAttendeeIDs returns the user ids on the event roster, in roster
	// order.
	GetAttendeeIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error)
}

type MatchStore interface {
	InsertMatch(ctx context.Context, match *Match) error
	// DeleteMatchesForUser clears a user's prior matches for an event so a
	// recompute replaces them instead of accumulating duplicates.
	DeleteMatchesForUser(ctx context.Context, userID, eventID uuid.UUID) error
}

type RecapStore interface {
	// UpsertRecapURL creates or updates the (event, user) recap row.
	UpsertRecapURL(ctx context.Context, eventID, userID uuid.UUID, recapURL string) error
}

// BackendStore is the full row-store surface of the managed backend.
type BackendStore interface {
	ProfileStore
	EventStore
	AttendeeStore
	MatchStore
	RecapStore
}

// ObjectStorage is a path-addressed blob store with public URL retrieval.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, path string, data []byte, contentType string) error
	PublicURL(bucket, path string) string
}

// EmbeddingClient turns free text into an embedding vector.
type EmbeddingClient interface {
	EmbedText(ctx context.Context, text string) (Vector, error)
}
