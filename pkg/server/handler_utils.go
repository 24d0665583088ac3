package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/getmingle/mingle/pkg/models"
)

// APIError represents an error response body.
type APIError struct {
	Message string `json:"message"`
}

var validate = validator.New()

// encodeJSON encodes data into JSON and writes it to the response writer.
func encodeJSON(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(data)
}

// decodeJSON decodes a JSON request body into the provided data struct and
// validates it.
func decodeJSON(r *http.Request, data interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		return err
	}
	return validate.Struct(data)
}

// renderError renders an error response with the given status.
func renderError(w http.ResponseWriter, err error, status int) {
	if status != http.StatusNotFound {
		// Don't log not found errors
		log.Error(err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(APIError{Message: err.Error()}); encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

// handleError maps error kinds to HTTP statuses and renders the response.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		renderError(w, err, http.StatusNotFound)
	case errors.Is(err, models.ErrBadRequest):
		renderError(w, err, http.StatusBadRequest)
	default:
		// ErrNotConfigured, ErrExternalService, ErrStorage and anything
		// unexpected all surface as internal errors.
		renderError(w, err, http.StatusInternalServerError)
	}
}

// uuidFromURL parses a UUID from a URL parameter. If the UUID is invalid, an
// error is rendered and uuid.Nil is returned.
func uuidFromURL(r *http.Request, w http.ResponseWriter, paramName string) uuid.UUID {
	value := chi.URLParam(r, paramName)
	id, err := uuid.Parse(value)
	if err != nil {
		renderError(
			w,
			fmt.Errorf("unable to parse %s: %w", paramName, err),
			http.StatusBadRequest,
		)
		return uuid.Nil
	}
	return id
}
