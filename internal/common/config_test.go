package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "http://localhost:4000/api", cfg.Backend.BaseURL)
	assert.Equal(t, 10, cfg.Backend.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Backend.GetTimeout())
	assert.Equal(t, 5*time.Minute, cfg.Session.GetQuoteTTL())
	assert.Equal(t, 10000.00, cfg.Trading.StartingBalance)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigMergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[backend]
base_url = "https://api.acutrader.example/api"
timeout = "10s"

[trading]
starting_balance = 25000.0
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.acutrader.example/api", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.GetTimeout())
	assert.Equal(t, 25000.0, cfg.Trading.StartingBalance)
	assert.Equal(t, 10, cfg.Backend.RateLimit, "unset fields keep defaults")
}

func TestLoadConfigMissingFileSkipped(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/config.toml")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000/api", cfg.Backend.BaseURL)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("ACUTRADER_BACKEND_URL", "http://staging:4000/api")
	t.Setenv("ACUTRADER_STARTING_BALANCE", "50000")
	t.Setenv("ACUTRADER_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://staging:4000/api", cfg.Backend.BaseURL)
	assert.Equal(t, 50000.0, cfg.Trading.StartingBalance)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestGetTimeoutMalformedFallsBack(t *testing.T) {
	c := BackendConfig{Timeout: "soon"}
	assert.Equal(t, 30*time.Second, c.GetTimeout())
}
