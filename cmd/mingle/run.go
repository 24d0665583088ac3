package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/getmingle/mingle/config"
	"github.com/getmingle/mingle/pkg/llms"
	"github.com/getmingle/mingle/pkg/models"
	"github.com/getmingle/mingle/pkg/server"
	"github.com/getmingle/mingle/pkg/store/supabase"
)

// run is the entrypoint for the mingle server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring mingle: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting mingle server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState := NewAppState(cfg)

	srv := server.Create(appState)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}

// NewAppState creates an AppState struct from the config file / ENV and
// constructs the external clients. Missing credentials are logged, not
// fatal: the server boots and the affected handlers fail per-request.
func NewAppState(cfg *config.Config) *models.AppState {
	appState := &models.AppState{Config: cfg}

	embeddings, err := llms.NewOpenAIEmbeddingsClient(cfg)
	if err != nil {
		log.Warnf("Embedding client not configured: %s", err)
	} else {
		appState.EmbeddingClient = embeddings
	}

	backend, err := supabase.NewClient(cfg)
	if err != nil {
		log.Warnf("Backend client not configured: %s", err)
	} else {
		appState.Store = backend
		appState.Storage = backend
	}

	return appState
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		dumpConfigToStdout(cfg)
		os.Exit(0)
	}
}

func dumpConfigToStdout(cfg *config.Config) {
	redacted := *cfg
	redacted.LLM.OpenAIAPIKey = "**redacted**"
	redacted.Supabase.AnonKey = "**redacted**"

	out, err := json.MarshalIndent(redacted, "", "  ")
	if err != nil {
		log.Fatalf("Error dumping config: %s", err)
	}
	fmt.Println(string(out))
}
