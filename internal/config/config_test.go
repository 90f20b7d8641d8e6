package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SCOUTDESK_DATABASE_URL", "")
	t.Setenv("DEBUG", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("API_PORT", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.HasDatabase())
	assert.Equal(t, 5001, cfg.APIPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.Debug)
	assert.True(t, cfg.RateLimitEnabled)
	assert.Equal(t, 15*time.Second, cfg.FetchTimeout)
	assert.True(t, cfg.CacheEnabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DEBUG", "true")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("API_PORT", "8080")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://scout.example, https://staging.scout.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 8080, cfg.APIPort)
	assert.Equal(t,
		[]string{"https://scout.example", "https://staging.scout.example"},
		cfg.CORSAllowOrigins)
}

func TestSupportedLanguagesTable(t *testing.T) {
	codes := make(map[string]bool)
	for _, l := range SupportedLanguages {
		assert.NotEmpty(t, l.Name)
		assert.Contains(t, l.Domain, "transfermarkt")
		codes[l.Code] = true
	}
	assert.Len(t, codes, 6)
}
