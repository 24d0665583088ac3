package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/getmingle/mingle/pkg/imaging"
	"github.com/getmingle/mingle/pkg/models"
)

type EventQRResponse struct {
	QRURL string `json:"qr_url"`
}

// CreateEventQRHandler renders the event's join link as a QR code, uploads
// it to storage at a deterministic path, and persists the public URL on the
// event row.
func CreateEventQRHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := uuidFromURL(r, w, "eventId")
		if eventID == uuid.Nil {
			return
		}

		if appState.Store == nil || appState.Storage == nil {
			handleError(w, models.NewNotConfiguredError("Supabase"))
			return
		}

		event, err := appState.Store.GetEvent(r.Context(), eventID)
		if err != nil {
			handleError(w, err)
			return
		}

		joinURL := fmt.Sprintf("%s?code=%s", appState.Config.Match.JoinURLPath, event.Code)
		png, err := imaging.RenderQR(joinURL)
		if err != nil {
			handleError(w, err)
			return
		}

		path := fmt.Sprintf("events/%s.png", eventID)
		bucket := appState.Config.Supabase.QRBucket
		if err := appState.Storage.Upload(r.Context(), bucket, path, png, "image/png"); err != nil {
			handleError(w, err)
			return
		}

		qrURL := appState.Storage.PublicURL(bucket, path)
		if err := appState.Store.UpdateEventQRURL(r.Context(), eventID, qrURL); err != nil {
			handleError(w, err)
			return
		}

		if err := encodeJSON(w, EventQRResponse{QRURL: qrURL}); err != nil {
			renderError(w, err, http.StatusInternalServerError)
		}
	}
}
