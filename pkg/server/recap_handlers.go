package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/getmingle/mingle/pkg/imaging"
	"github.com/getmingle/mingle/pkg/models"
)

const recapTitle = "Event Recap"

type RecapResponse struct {
	RecapURL string `json:"recap_url"`
}

// CreateRecapHandler renders the placeholder recap card, uploads it to
// storage keyed by (event, user), and persists the public URL on the recap
// row.
func CreateRecapHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := uuidFromURL(r, w, "eventId")
		if eventID == uuid.Nil {
			return
		}
		userID := uuidFromURL(r, w, "userId")
		if userID == uuid.Nil {
			return
		}

		if appState.Store == nil || appState.Storage == nil {
			handleError(w, models.NewNotConfiguredError("Supabase"))
			return
		}

		png, err := imaging.RenderRecapCard(recapTitle)
		if err != nil {
			handleError(w, err)
			return
		}

		path := fmt.Sprintf("recaps/%s/%s.png", eventID, userID)
		bucket := appState.Config.Supabase.RecapBucket
		if err := appState.Storage.Upload(r.Context(), bucket, path, png, "image/png"); err != nil {
			handleError(w, err)
			return
		}

		recapURL := appState.Storage.PublicURL(bucket, path)
		if err := appState.Store.UpsertRecapURL(r.Context(), eventID, userID, recapURL); err != nil {
			handleError(w, err)
			return
		}

		if err := encodeJSON(w, RecapResponse{RecapURL: recapURL}); err != nil {
			renderError(w, err, http.StatusInternalServerError)
		}
	}
}
