package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmingle/mingle/config"
	"github.com/getmingle/mingle/pkg/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Supabase.URL = srv.URL
	cfg.Supabase.AnonKey = "test-anon-key"
	cfg.Supabase.TimeoutSeconds = 5
	cfg.Supabase.RetryMax = 0

	client, err := NewClient(cfg)
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(&config.Config{})
	assert.Error(t, err)
}

func TestGetProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/rest/v1/profiles", r.URL.Path)
			assert.Equal(t, "eq."+userID.String(), r.URL.Query().Get("id"))
			assert.Equal(t, acceptSingle, r.Header.Get("Accept"))
			assert.Equal(t, "test-anon-key", r.Header.Get("apikey"))
			assert.Equal(t, "Bearer test-anon-key", r.Header.Get("Authorization"))

			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":        userID.String(),
				"hobbies":   []string{"chess"},
				"embedding": []float64{1, 0},
			})
		})

		profile, err := client.GetProfile(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, userID, profile.ID)
		assert.Equal(t, []string{"chess"}, profile.Hobbies)

		vec, ok := models.DecodeVector(profile.Embedding)
		assert.True(t, ok)
		assert.Equal(t, models.Vector{1, 0}, vec)
	})

	t.Run("NotFound", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			// PostgREST answers 406 when a single-object request matches no rows
			w.WriteHeader(http.StatusNotAcceptable)
		})

		_, err := client.GetProfile(context.Background(), userID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("BackendFailure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.GetProfile(context.Background(), userID)
		assert.ErrorIs(t, err, models.ErrStorage)
	})
}

func TestGetProfiles(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/profiles", r.URL.Path)
		assert.Equal(t, "in.("+a.String()+","+b.String()+")", r.URL.Query().Get("id"))

		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": a.String()},
			{"id": b.String()},
		})
	})

	profiles, err := client.GetProfiles(context.Background(), []uuid.UUID{a, b})
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, a, profiles[0].ID)
	assert.Equal(t, b, profiles[1].ID)
}

func TestGetProfilesEmptyInputSkipsRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	profiles, err := client.GetProfiles(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestUpdateEmbedding(t *testing.T) {
	userID := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/rest/v1/profiles", r.URL.Path)
		assert.Equal(t, "eq."+userID.String(), r.URL.Query().Get("id"))
		assert.Equal(t, preferMinimal, r.Header.Get("Prefer"))

		var patch map[string][]float64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		assert.Equal(t, []float64{0.5, -0.5}, patch["embedding"])

		w.WriteHeader(http.StatusNoContent)
	})

	err := client.UpdateEmbedding(context.Background(), userID, models.Vector{0.5, -0.5})
	assert.NoError(t, err)
}

func TestGetAttendeeIDs(t *testing.T) {
	eventID := uuid.New()
	a, b := uuid.New(), uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/event_attendees", r.URL.Path)
		assert.Equal(t, "eq."+eventID.String(), r.URL.Query().Get("event_id"))
		assert.Equal(t, "user_id", r.URL.Query().Get("select"))

		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"user_id": a.String()},
			{"user_id": nil},
			{"user_id": b.String()},
		})
	})

	ids, err := client.GetAttendeeIDs(context.Background(), eventID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)
}

func TestInsertMatch(t *testing.T) {
	match := &models.Match{
		UserID:      uuid.New(),
		MatchUserID: uuid.New(),
		EventID:     uuid.New(),
		WhyMeet:     "You share interests in chess",
		DiveDeeper:  "Discuss projects and collaboration opportunities.",
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/matches", r.URL.Path)
		assert.Equal(t, preferMinimal, r.Header.Get("Prefer"))

		var rows []models.Match
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rows))
		require.Len(t, rows, 1)
		assert.Equal(t, match.MatchUserID, rows[0].MatchUserID)

		w.WriteHeader(http.StatusCreated)
	})

	assert.NoError(t, client.InsertMatch(context.Background(), match))
}

func TestDeleteMatchesForUser(t *testing.T) {
	userID, eventID := uuid.New(), uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/rest/v1/matches", r.URL.Path)
		assert.Equal(t, "eq."+userID.String(), r.URL.Query().Get("user_id"))
		assert.Equal(t, "eq."+eventID.String(), r.URL.Query().Get("event_id"))
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.DeleteMatchesForUser(context.Background(), userID, eventID))
}

func TestGetEvent(t *testing.T) {
	eventID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rest/v1/events", r.URL.Path)
			assert.Equal(t, "id,code,qr_url", r.URL.Query().Get("select"))

			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":   eventID.String(),
				"code": "MIX42",
			})
		})

		event, err := client.GetEvent(context.Background(), eventID)
		require.NoError(t, err)
		assert.Equal(t, "MIX42", event.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotAcceptable)
		})

		_, err := client.GetEvent(context.Background(), eventID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestUpsertRecapURL(t *testing.T) {
	eventID, userID := uuid.New(), uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/recaps", r.URL.Path)
		assert.Equal(t, "event_id,user_id", r.URL.Query().Get("on_conflict"))
		assert.Equal(t, preferUpsert, r.Header.Get("Prefer"))

		var rows []models.Recap
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "https://cdn.example/recap.png", rows[0].RecapURL)

		w.WriteHeader(http.StatusCreated)
	})

	err := client.UpsertRecapURL(context.Background(), eventID, userID, "https://cdn.example/recap.png")
	assert.NoError(t, err)
}

func TestUpload(t *testing.T) {
	payload := []byte("png-bytes")

	t.Run("OK", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/storage/v1/object/qr_codes/events/abc.png", r.URL.Path)
			assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
			assert.Equal(t, "true", r.Header.Get("x-upsert"))

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Equal(t, payload, body)

			w.WriteHeader(http.StatusOK)
		})

		err := client.Upload(context.Background(), "qr_codes", "events/abc.png", payload, "image/png")
		assert.NoError(t, err)
	})

	t.Run("Failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		err := client.Upload(context.Background(), "qr_codes", "events/abc.png", payload, "image/png")
		assert.ErrorIs(t, err, models.ErrStorage)
	})
}

func TestPublicURL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	url := client.PublicURL("recaps", "recaps/e/u.png")
	assert.Equal(t, client.projectURL+"/storage/v1/object/public/recaps/recaps/e/u.png", url)
}
