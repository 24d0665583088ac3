package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/getmingle/mingle/pkg/models"
)

type CreateEmbeddingRequest struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Hobbies string    `json:"hobbies" validate:"required"`
	About   string    `json:"about"`
}

type CreateEmbeddingResponse struct {
	Success   bool          `json:"success"`
	Embedding models.Vector `json:"embedding"`
}

// CreateEmbeddingHandler builds a text blob from the user's hobbies and
// about fields, embeds it with the configured provider, and persists the
// vector on the user's profile. Last write wins.
func CreateEmbeddingHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateEmbeddingRequest
		if err := decodeJSON(r, &req); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		if appState.EmbeddingClient == nil || appState.Store == nil {
			handleError(w, models.NewNotConfiguredError("OpenAI/Supabase"))
			return
		}

		text := strings.TrimSpace(fmt.Sprintf("Hobbies: %s\nAbout: %s", req.Hobbies, req.About))

		vector, err := appState.EmbeddingClient.EmbedText(r.Context(), text)
		if err != nil {
			handleError(w, err)
			return
		}

		if err := appState.Store.UpdateEmbedding(r.Context(), req.UserID, vector); err != nil {
			handleError(w, err)
			return
		}

		if err := encodeJSON(w, CreateEmbeddingResponse{Success: true, Embedding: vector}); err != nil {
			renderError(w, err, http.StatusInternalServerError)
		}
	}
}
