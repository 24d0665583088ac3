package supabase

import (
	"context"
	"net/url"

	"github.com/google/uuid"
)

func (c *Client) GetAttendeeIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	query := url.Values{
		"select":   {"user_id"},
		"event_id": {"eq." + eventID.String()},
	}

	var rows []struct {
		UserID uuid.UUID `json:"user_id"`
	}
	if err := c.selectRows(ctx, "event_attendees", query, &rows); err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		if row.UserID == uuid.Nil {
			continue
		}
		ids = append(ids, row.UserID)
	}
	return ids, nil
}
