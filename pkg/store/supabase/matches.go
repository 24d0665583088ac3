package supabase

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/getmingle/mingle/pkg/models"
)

func (c *Client) InsertMatch(ctx context.Context, match *models.Match) error {
	return c.insert(ctx, "matches", nil, preferMinimal, []*models.Match{match})
}

func (c *Client) DeleteMatchesForUser(ctx context.Context, userID, eventID uuid.UUID) error {
	query := url.Values{
		"user_id":  {"eq." + userID.String()},
		"event_id": {"eq." + eventID.String()},
	}
	return c.delete(ctx, "matches", query)
}
