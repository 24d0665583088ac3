package models

import (
	"github.com/getmingle/mingle/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
//
// Clients are nil when their credentials were absent at startup; handlers
// that need them fail the request with a NotConfiguredError.
type AppState struct {
	EmbeddingClient EmbeddingClient
	Store           BackendStore
	Storage         ObjectStorage
	Config          *config.Config
}
