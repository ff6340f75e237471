package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvWithFallback(t *testing.T) {
	tests := []struct {
		name          string
		primary       string
		primaryValue  string
		fallback      string
		fallbackValue string
		expected      string
	}{
		{
			name:          "primary exists",
			primary:       "TEST_PRIMARY_VAR",
			primaryValue:  "primary_value",
			fallback:      "TEST_FALLBACK_VAR",
			fallbackValue: "fallback_value",
			expected:      "primary_value",
		},
		{
			name:          "primary empty, fallback exists",
			primary:       "TEST_PRIMARY_EMPTY",
			primaryValue:  "",
			fallback:      "TEST_FALLBACK_EXISTS",
			fallbackValue: "fallback_value",
			expected:      "fallback_value",
		},
		{
			name:          "both empty",
			primary:       "TEST_BOTH_EMPTY_P",
			primaryValue:  "",
			fallback:      "TEST_BOTH_EMPTY_F",
			fallbackValue: "",
			expected:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.primaryValue != "" {
				os.Setenv(tt.primary, tt.primaryValue)
				defer os.Unsetenv(tt.primary)
			}
			if tt.fallbackValue != "" {
				os.Setenv(tt.fallback, tt.fallbackValue)
				defer os.Unsetenv(tt.fallback)
			}

			result := getEnvWithFallback(tt.primary, tt.fallback)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLoad_DefaultPort(t *testing.T) {
	os.Unsetenv("PORT")

	config := Load()
	assert.Equal(t, "8080", config.Port)
}

func TestLoad_CustomPort(t *testing.T) {
	os.Setenv("PORT", "3000")
	defer os.Unsetenv("PORT")

	config := Load()
	assert.Equal(t, "3000", config.Port)
}

func TestLoad_DefaultContentBackend(t *testing.T) {
	os.Unsetenv("CONTENT_BACKEND")

	config := Load()
	assert.Equal(t, "gemini", config.ContentBackend)
}

func TestLoad_AllEnvVars(t *testing.T) {
	vars := map[string]string{
		"SERPAPI_KEY":     "serp-key",
		"HUNTER_API_KEY":  "hunter-key",
		"SUPABASE_URL":    "https://test.supabase.co",
		"SUPABASE_KEY":    "supa-key",
		"WORKER_SECRET":   "worker-secret",
		"CONTENT_BACKEND": "openrouter",
	}
	for k, v := range vars {
		os.Setenv(k, v)
		defer os.Unsetenv(k)
	}

	config := Load()

	assert.Equal(t, "serp-key", config.SerpAPIKey)
	assert.Equal(t, "hunter-key", config.HunterAPIKey)
	assert.Equal(t, "https://test.supabase.co", config.SupabaseURL)
	assert.Equal(t, "supa-key", config.SupabaseKey)
	assert.Equal(t, "worker-secret", config.WorkerSecret)
	assert.Equal(t, "openrouter", config.ContentBackend)
}

func TestLoad_SupabaseSecretKeyPrecedence(t *testing.T) {
	os.Setenv("SUPABASE_SECRET_KEY", "secret-key")
	os.Setenv("SUPABASE_KEY", "anon-key")
	defer os.Unsetenv("SUPABASE_SECRET_KEY")
	defer os.Unsetenv("SUPABASE_KEY")

	config := Load()
	assert.Equal(t, "secret-key", config.SupabaseKey)
}

func TestLoad_MissingOptionalVars(t *testing.T) {
	for _, k := range []string{"HUNTER_API_KEY", "FIRECRAWL_API_KEY", "WORKER_SECRET"} {
		os.Unsetenv(k)
	}

	config := Load()

	assert.Empty(t, config.HunterAPIKey)
	assert.Empty(t, config.FirecrawlAPIKey)
	assert.Empty(t, config.WorkerSecret)
}
