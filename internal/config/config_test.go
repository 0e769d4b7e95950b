package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jrsteele09/go-social-client/internal/config"
	"github.com/stretchr/testify/require"
)

// TestDefaults checks the values used when nothing is configured
func TestDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("MOCK_PORT", "")
	c := config.New()

	require.Equal(t, "https://v2.api.noroff.dev", c.GetAPIBaseURL())
	require.Equal(t, "X-Noroff-API-Key", c.GetAPIKeyHeader())
	require.Equal(t, ":8090", c.GetMockPort())
	require.Equal(t, 15*time.Second, c.GetRequestTimeout())
	require.Equal(t, 20, c.GetProfilePostsLimit())
}

// TestEnvOverridesFile checks precedence: env var, then YAML file, then default
func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.yaml")
	err := os.WriteFile(path, []byte("api_base_url: http://file.example\nlog_level: DEBUG\nrequest_timeout: 3s\n"), 0o600)
	require.NoError(t, err)

	t.Setenv("API_BASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REQUEST_TIMEOUT", "")

	c, err := config.NewFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "http://file.example", c.GetAPIBaseURL())
	require.Equal(t, "debug", c.GetLogLevel())
	require.Equal(t, 3*time.Second, c.GetRequestTimeout())

	t.Setenv("API_BASE_URL", "http://env.example")
	require.Equal(t, "http://env.example", c.GetAPIBaseURL())
}

// TestNewFromFile_Invalid reports unreadable and malformed files
func TestNewFromFile_Invalid(t *testing.T) {
	_, err := config.NewFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- just\n- a list\n"), 0o600))
	_, err = config.NewFromFile(path)
	require.Error(t, err)
}

// TestBadTimeoutFallsBack ignores unparseable durations
func TestBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")
	require.Equal(t, 15*time.Second, config.New().GetRequestTimeout())
}
