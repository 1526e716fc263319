package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"carbid"}, args...)
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://localhost:4002", c.APIBaseURL)
	assert.Equal(t, "https://car-auction-bidding.onrender.com", c.PushURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, 5*time.Second, c.BidConfirmTimeout)
	assert.Equal(t, SessionSQLite, c.SessionBackend)
	assert.Equal(t, SinkNone, c.NotifySink)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("CARBID_API_URL", "https://api.example")
	t.Setenv("CARBID_SOCKET_URL", "https://push.example")
	t.Setenv("CARBID_BID_CONFIRM", "2s")
	t.Setenv("CARBID_SESSION_BACKEND", "redis")

	c := defaults()
	parseEnv(c)

	assert.Equal(t, "https://api.example", c.APIBaseURL)
	assert.Equal(t, "https://push.example", c.PushURL)
	assert.Equal(t, 2*time.Second, c.BidConfirmTimeout)
	assert.Equal(t, SessionRedis, c.SessionBackend)
	assert.Equal(t, 30*time.Second, c.RequestTimeout, "unset vars keep defaults")
}

func TestParseEnv_BadDurationPanics(t *testing.T) {
	t.Setenv("CARBID_REQUEST_TIMEOUT", "forever")
	require.Panics(t, func() { parseEnv(defaults()) })
}

func TestDotEnvFeedsParseEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CARBID_LOG_LEVEL=debug\n"), 0o600))
	t.Setenv("CARBID_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("CARBID_LOG_LEVEL"))

	require.NoError(t, godotenv.Load(path))
	t.Cleanup(func() { _ = os.Unsetenv("CARBID_LOG_LEVEL") })

	c := defaults()
	parseEnv(c)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "carbid.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
		"api_url": "http://json:1",
		"request_timeout": "10s",
		"bid_confirm_timeout": 3000000000,
		"notify_sink": "log"
	}`), 0o600))

	tomlPath := filepath.Join(dir, "carbid.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(`
api_url = "http://toml:1"
socket_url = "http://toml:2"
request_timeout = "15s"
session_backend = "redis"
`), 0o600))

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`{ nope`), 0o600))

	t.Run("json", func(t *testing.T) {
		withArgs(t, "-c", jsonPath)
		c := defaults()
		parseFile(c)

		assert.Equal(t, "http://json:1", c.APIBaseURL)
		assert.Equal(t, 10*time.Second, c.RequestTimeout)
		assert.Equal(t, 3*time.Second, c.BidConfirmTimeout)
		assert.Equal(t, SinkLog, c.NotifySink)
		assert.Equal(t, "https://car-auction-bidding.onrender.com", c.PushURL)
	})

	t.Run("toml", func(t *testing.T) {
		withArgs(t, "-config", tomlPath)
		c := defaults()
		parseFile(c)

		assert.Equal(t, "http://toml:1", c.APIBaseURL)
		assert.Equal(t, "http://toml:2", c.PushURL)
		assert.Equal(t, 15*time.Second, c.RequestTimeout)
		assert.Equal(t, SessionRedis, c.SessionBackend)
	})

	t.Run("no file leaves config untouched", func(t *testing.T) {
		withArgs(t)
		c := defaults()
		parseFile(c)
		assert.Empty(t, cmp.Diff(defaults(), c))
	})

	t.Run("invalid file panics", func(t *testing.T) {
		withArgs(t, "-c", badPath)
		require.Panics(t, func() { parseFile(defaults()) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		withArgs(t, "-c", filepath.Join(dir, "absent.json"))
		require.Panics(t, func() { parseFile(defaults()) })
	})
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		mutate      func(c *Config)
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://api:9", "-s", "http://push:9", "-t", "7s", "-b", "1s", "-d", "x.db", "-l", "debug"},
			mutate: func(c *Config) {
				c.APIBaseURL = "http://api:9"
				c.PushURL = "http://push:9"
				c.RequestTimeout = 7 * time.Second
				c.BidConfirmTimeout = time.Second
				c.DBPath = "x.db"
				c.LogLevel = "debug"
			},
		},
		{
			name:   "foreign flags ignored",
			args:   []string{"-c", "cfg.json", "-a", "http://api:9"},
			mutate: func(c *Config) { c.APIBaseURL = "http://api:9" },
		},
		{
			name:        "bad duration",
			args:        []string{"-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)
			c := defaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(c) })
				return
			}

			require.NotPanics(t, func() { parseFlags(c) })
			want := defaults()
			tt.mutate(want)
			assert.Empty(t, cmp.Diff(want, c))
		})
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carbid.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_url":"http://file","socket_url":"http://file-push"}`), 0o600))

	t.Setenv("CARBID_API_URL", "http://env")
	t.Setenv("CARBID_SOCKET_URL", "http://env-push")
	t.Setenv("CARBID_DB", "env.db")
	withArgs(t, "-c", path, "-a", "http://flag")

	cfg := LoadConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "http://flag", cfg.APIBaseURL)
	assert.Equal(t, "http://file-push", cfg.PushURL)
	assert.Equal(t, "env.db", cfg.DBPath)
}
