package enterprise

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://localhost:9443", cfg.BaseURL)
	assert.Equal(t, "admin@redis.local", cfg.Username)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 32, cfg.MaxConnections)
	assert.False(t, cfg.Insecure)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"http base url", func(c *Config) { c.BaseURL = "http://127.0.0.1:8080" }, false},
		{"missing base url", func(c *Config) { c.BaseURL = "" }, true},
		{"not a url", func(c *Config) { c.BaseURL = "not a url" }, true},
		{"wrong scheme", func(c *Config) { c.BaseURL = "ftp://cluster" }, true},
		{"no host", func(c *Config) { c.BaseURL = "https://" }, true},
		{"fragment", func(c *Config) { c.BaseURL = "https://cluster#x" }, true},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, true},
		{"negative connections", func(c *Config) { c.MaxConnections = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{BaseURL: "https://cluster:9443"}.withDefaults()

	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultMaxConnections, cfg.MaxConnections)
	assert.Equal(t, DefaultUserAgent(), cfg.UserAgent)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("TEST_RE_PASSWORD", "s3cret")

	path := filepath.Join(t.TempDir(), "cluster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: https://cluster.example:9443
username: ops@example.com
password: ${TEST_RE_PASSWORD}
insecure: true
timeout: 10s
`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://cluster.example:9443", cfg.BaseURL)
	assert.Equal(t, "ops@example.com", cfg.Username)
	assert.Equal(t, "s3cret", cfg.Password)
	assert.True(t, cfg.Insecure)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, DefaultMaxConnections, cfg.MaxConnections)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfig)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [unterminated"), 0o600))
	_, err = LoadConfig(path)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvURL, "https://re.example:9443")
	t.Setenv(EnvUser, "ops@example.com")
	t.Setenv(EnvPassword, "pw")
	t.Setenv(EnvInsecure, "true")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://re.example:9443", cfg.BaseURL)
	assert.Equal(t, "ops@example.com", cfg.Username)
	assert.Equal(t, "pw", cfg.Password)
	assert.True(t, cfg.Insecure)
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvURL, "")
	t.Setenv(EnvUser, "")
	t.Setenv(EnvInsecure, "")
	t.Setenv(EnvPassword, "pw")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultUsername, cfg.Username)
	assert.False(t, cfg.Insecure)
}

func TestConfigFromEnvErrors(t *testing.T) {
	t.Setenv(EnvPassword, "")
	require.NoError(t, os.Unsetenv(EnvPassword))

	_, err := ConfigFromEnv()
	assert.ErrorIs(t, err, ErrConfig)

	t.Setenv(EnvPassword, "pw")
	t.Setenv(EnvInsecure, "maybe")

	_, err = ConfigFromEnv()
	assert.ErrorIs(t, err, ErrConfig)
}
