package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://api.kraken.com", cfg.BaseURL)
	assert.Equal(t, "0", cfg.APIVersion)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
base_url: https://api.example.test
timeout_sec: 5
proxy: socks5://127.0.0.1:9050
rate_limit:
  limit: 20
  decay_per_sec: 0.5
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.test", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, "socks5://127.0.0.1:9050", cfg.Proxy)
	assert.Equal(t, 20.0, cfg.RateLimit.Limit)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "base_url: https://file.example.test\n")
	t.Setenv("KRAKEN_BASE_URL", "https://env.example.test")
	t.Setenv("KRAKEN_API_KEY", "key")
	t.Setenv("KRAKEN_API_SECRET", "c2VjcmV0")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.test", cfg.BaseURL)
	assert.Equal(t, "key", cfg.APIKey)
}

func TestValidateRejectsTwoOTPMethods(t *testing.T) {
	path := writeConfig(t, "otp_static: pw\notp_app_key: E452ZYHEX22AXGKIFUGQVPXF\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejectsHalfCredentials(t *testing.T) {
	path := writeConfig(t, "api_key: only-key\n")
	_, err := Load(path)
	assert.Error(t, err)
}
