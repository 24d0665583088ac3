package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "text-embedding-3-small", cfg.LLM.EmbeddingModel)
	assert.Equal(t, "qr_codes", cfg.Supabase.QRBucket)
	assert.Equal(t, "recaps", cfg.Supabase.RecapBucket)
	assert.Equal(t, 5, cfg.Match.TopK)
	assert.Equal(t, 4, cfg.Match.MaxSharedHobbies)
	assert.Equal(t, "/join-event", cfg.Match.JoinURLPath)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Run("PrimaryCredentialNames", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-primary")
		t.Setenv("SUPABASE_URL", "https://abc.supabase.co")
		t.Setenv("SUPABASE_ANON_KEY", "anon-primary")

		cfg, err := LoadConfig("")
		require.NoError(t, err)

		assert.Equal(t, "sk-primary", cfg.LLM.OpenAIAPIKey)
		assert.Equal(t, "https://abc.supabase.co", cfg.Supabase.URL)
		assert.Equal(t, "anon-primary", cfg.Supabase.AnonKey)
	})

	t.Run("FallbackCredentialNames", func(t *testing.T) {
		t.Setenv("VITE_OPENAI_API_KEY", "sk-fallback")
		t.Setenv("VITE_SUPABASE_URL", "https://xyz.supabase.co")
		t.Setenv("VITE_SUPABASE_PUBLISHABLE_KEY", "anon-fallback")

		cfg, err := LoadConfig("")
		require.NoError(t, err)

		assert.Equal(t, "sk-fallback", cfg.LLM.OpenAIAPIKey)
		assert.Equal(t, "https://xyz.supabase.co", cfg.Supabase.URL)
		assert.Equal(t, "anon-fallback", cfg.Supabase.AnonKey)
	})

	t.Run("PrimaryWinsOverFallback", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-primary")
		t.Setenv("VITE_OPENAI_API_KEY", "sk-fallback")

		cfg, err := LoadConfig("")
		require.NoError(t, err)

		assert.Equal(t, "sk-primary", cfg.LLM.OpenAIAPIKey)
	})

	t.Run("PrefixedOverrides", func(t *testing.T) {
		t.Setenv("MINGLE_MATCH_TOP_K", "3")
		t.Setenv("MINGLE_LOG_LEVEL", "debug")

		cfg, err := LoadConfig("")
		require.NoError(t, err)

		assert.Equal(t, 3, cfg.Match.TopK)
		assert.Equal(t, "debug", cfg.Log.Level)
	})
}
