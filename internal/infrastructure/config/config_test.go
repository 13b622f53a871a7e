package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 85, cfg.RiskCritical)
	assert.Equal(t, 70, cfg.RiskHigh)
	assert.Equal(t, 45, cfg.RiskMedium)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("LLM_PROVIDER", "google")
	t.Setenv("GOOGLE_API_KEY", "g-key")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
	assert.Equal(t, "gemini", cfg.LLMProvider)
	assert.Equal(t, "g-key", cfg.GeminiAPIKey)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoadConfig_GeminiKeyWins(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "explicit")
	t.Setenv("GOOGLE_API_KEY", "fallback")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "explicit", cfg.GeminiAPIKey)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown provider", env: map[string]string{"LLM_PROVIDER": "anthropic"}},
		{name: "unordered thresholds", env: map[string]string{"RISK_HIGH": "90"}},
		{name: "bad duration", env: map[string]string{"JWT_TTL": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
