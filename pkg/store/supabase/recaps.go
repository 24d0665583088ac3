package supabase

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/getmingle/mingle/pkg/models"
)

// UpsertRecapURL creates or updates the (event, user) recap row, so the
// returned URL always refers to a persisted record.
func (c *Client) UpsertRecapURL(ctx context.Context, eventID, userID uuid.UUID, recapURL string) error {
	query := url.Values{"on_conflict": {"event_id,user_id"}}
	rows := []models.Recap{{
		EventID:  eventID,
		UserID:   userID,
		RecapURL: recapURL,
	}}
	return c.insert(ctx, "recaps", query, preferUpsert, rows)
}
