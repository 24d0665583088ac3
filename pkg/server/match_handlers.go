package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/getmingle/mingle/pkg/matcher"
	"github.com/getmingle/mingle/pkg/models"
)

type ComputeMatchesRequest struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	EventID uuid.UUID `json:"event_id" validate:"required"`
}

type ComputeMatchesResponse struct {
	Matches []models.MatchResult `json:"matches"`
}

type RecomputeMatchesRequest struct {
	EventID uuid.UUID `json:"event_id" validate:"required"`
}

type RecomputeMatchesResponse struct {
	Recomputed int `json:"recomputed"`
}

func newMatcher(appState *models.AppState) *matcher.Matcher {
	return matcher.New(
		appState.Store,
		appState.Config.Match.TopK,
		appState.Config.Match.MaxSharedHobbies,
	)
}

// ComputeMatchesHandler ranks the event's other attendees against the
// user's embedding and persists the top matches.
func ComputeMatchesHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ComputeMatchesRequest
		if err := decodeJSON(r, &req); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		if appState.Store == nil {
			handleError(w, models.NewNotConfiguredError("Supabase"))
			return
		}

		results, err := newMatcher(appState).ComputeForUser(r.Context(), req.UserID, req.EventID)
		if err != nil {
			handleError(w, err)
			return
		}

		if results == nil {
			results = []models.MatchResult{}
		}
		if err := encodeJSON(w, ComputeMatchesResponse{Matches: results}); err != nil {
			renderError(w, err, http.StatusInternalServerError)
		}
	}
}

// RecomputeMatchesHandler recomputes matches for every attendee of the
// event, sequentially, and returns the total persisted count.
func RecomputeMatchesHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecomputeMatchesRequest
		if err := decodeJSON(r, &req); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		if appState.Store == nil {
			handleError(w, models.NewNotConfiguredError("Supabase"))
			return
		}

		total, err := newMatcher(appState).RecomputeEvent(r.Context(), req.EventID)
		if err != nil {
			handleError(w, err)
			return
		}

		if err := encodeJSON(w, RecomputeMatchesResponse{Recomputed: total}); err != nil {
			renderError(w, err, http.StatusInternalServerError)
		}
	}
}
