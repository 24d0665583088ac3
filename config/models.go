package config

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	LLM      LLMConfig      `mapstructure:"llm"`
	Supabase SupabaseConfig `mapstructure:"supabase"`
	Match    MatchConfig    `mapstructure:"match"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

type LLMConfig struct {
	// OpenAIAPIKey is loaded from ENV not config file.
	OpenAIAPIKey   string `mapstructure:"openai_api_key"`
	EmbeddingModel string `mapstructure:"embedding_model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxAttempts    int    `mapstructure:"max_attempts"`
}

// SupabaseConfig configures the managed backend. URL and AnonKey are loaded
// from ENV not config file.
type SupabaseConfig struct {
	URL            string `mapstructure:"url"`
	AnonKey        string `mapstructure:"anon_key"`
	QRBucket       string `mapstructure:"qr_bucket"`
	RecapBucket    string `mapstructure:"recap_bucket"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	RetryMax       int    `mapstructure:"retry_max"`
}

type MatchConfig struct {
	// TopK is the number of matches persisted per attendee.
	TopK int `mapstructure:"top_k"`
	// MaxSharedHobbies caps the hobby overlap listed in the match text.
	MaxSharedHobbies int `mapstructure:"max_shared_hobbies"`
	// JoinURLPath is the relative link encoded into event QR codes.
	JoinURLPath string `mapstructure:"join_url_path"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}
