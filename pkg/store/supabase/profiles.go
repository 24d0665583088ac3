package supabase

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/getmingle/mingle/pkg/models"
)

func (c *Client) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	query := url.Values{
		"select": {"*"},
		"id":     {"eq." + userID.String()},
	}
	var profile models.Profile
	if err := c.selectSingle(ctx, "profiles", query, &profile, "user profile"); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) GetProfiles(ctx context.Context, ids []uuid.UUID) ([]models.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	idStrings := make([]string, len(ids))
	for i, id := range ids {
		idStrings[i] = id.String()
	}
	query := url.Values{
		"select": {"*"},
		"id":     {"in.(" + strings.Join(idStrings, ",") + ")"},
	}

	var profiles []models.Profile
	if err := c.selectRows(ctx, "profiles", query, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (c *Client) UpdateEmbedding(ctx context.Context, userID uuid.UUID, vector models.Vector) error {
	query := url.Values{"id": {"eq." + userID.String()}}
	patch := map[string]any{"embedding": vector}
	return c.update(ctx, "profiles", query, patch)
}
