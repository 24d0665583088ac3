package server

import (
	"fmt"
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/getmingle/mingle/internal"
	"github.com/getmingle/mingle/pkg/models"
)

var log = internal.GetLogger()

const ReadHeaderTimeout = 5 * time.Second

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) *http.Server {
	router := setupRouter(appState)
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", appState.Config.Server.Host, appState.Config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

func setupRouter(appState *models.AppState) *chi.Mux {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(SendVersion)
	router.Use(middleware.Heartbeat("/healthz"))
	// Trust is delegated to the backend's row-level security; the API itself
	// is open to any origin.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	router.Route("/api", func(r chi.Router) {
		r.Post("/embedding", CreateEmbeddingHandler(appState))
		r.Route("/matches", func(r chi.Router) {
			r.Post("/compute", ComputeMatchesHandler(appState))
			r.Post("/recompute", RecomputeMatchesHandler(appState))
		})
		r.Post("/event/{eventId}/qr", CreateEventQRHandler(appState))
		r.Post("/recap/{eventId}/{userId}", CreateRecapHandler(appState))
	})

	return router
}
