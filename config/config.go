package config

import (
	"errors"
	"strings"

	"github.com/getmingle/mingle/internal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

// LoadConfig loads the config file and ENV variables into a Config struct
func LoadConfig(configFile string) (*Config, error) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("MINGLE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Warn("No config file found. Using defaults and environment variables")
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	// Credentials accept a primary or fallback (frontend-style) variable name.
	bindings := map[string][]string{
		"llm.openai_api_key": {"OPENAI_API_KEY", "VITE_OPENAI_API_KEY"},
		"supabase.url":       {"SUPABASE_URL", "VITE_SUPABASE_URL"},
		"supabase.anon_key":  {"SUPABASE_ANON_KEY", "VITE_SUPABASE_PUBLISHABLE_KEY"},
	}
	for key, envVars := range bindings {
		if err := viper.BindEnv(append([]string{key}, envVars...)...); err != nil {
			log.Fatalf("Error binding environment variable: %s", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("llm.embedding_model", "text-embedding-3-small")
	viper.SetDefault("llm.timeout_seconds", 30)
	viper.SetDefault("llm.max_attempts", 3)
	viper.SetDefault("supabase.qr_bucket", "qr_codes")
	viper.SetDefault("supabase.recap_bucket", "recaps")
	viper.SetDefault("supabase.timeout_seconds", 10)
	viper.SetDefault("supabase.retry_max", 2)
	viper.SetDefault("match.top_k", 5)
	viper.SetDefault("match.max_shared_hobbies", 4)
	viper.SetDefault("match.join_url_path", "/join-event")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("log.level", "info")
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Warn(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	log.Info("Log level set to: ", level)
}
