package supabase

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/getmingle/mingle/pkg/models"
)

func (c *Client) GetEvent(ctx context.Context, eventID uuid.UUID) (*models.Event, error) {
	query := url.Values{
		"select": {"id,code,qr_url"},
		"id":     {"eq." + eventID.String()},
	}
	var event models.Event
	if err := c.selectSingle(ctx, "events", query, &event, "event"); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) UpdateEventQRURL(ctx context.Context, eventID uuid.UUID, qrURL string) error {
	query := url.Values{"id": {"eq." + eventID.String()}}
	patch := map[string]any{"qr_url": qrURL}
	return c.update(ctx, "events", query, patch)
}
