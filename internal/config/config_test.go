package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDatabasePath(t *testing.T) {
	path := DefaultDatabasePath()
	assert.Equal(t, "devdigger.db", filepath.Base(path))
	assert.Equal(t, "devdigger", filepath.Base(filepath.Dir(path)))
	assert.True(t, filepath.IsAbs(path))
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "no-such.env"))
	require.NoError(t, err)

	assert.Equal(t, DefaultDatabasePath(), cfg.DBPath())
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "INFO", cfg.LogLevel())
	assert.Equal(t, LogFormatPretty, cfg.LogFormat())
	assert.Equal(t, DefaultSearchLimit, cfg.SearchLimit())
	assert.False(t, cfg.ChatEndpoint().Configured())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/dig.db")
	t.Setenv("PORT", "9999")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CHAT_ENDPOINT_API_KEY", "sk-test")
	t.Setenv("CHAT_ENDPOINT_MODEL", "gpt-4o")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/dig.db", cfg.DBPath())
	assert.Equal(t, 9999, cfg.Port())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())

	chat := cfg.ChatEndpoint()
	assert.True(t, chat.Configured())
	assert.Equal(t, "gpt-4o", chat.Model())
}

func TestAppConfig_Apply(t *testing.T) {
	cfg := NewAppConfig().Apply(
		WithDBPath("/data/d.db"),
		WithHost("127.0.0.1"),
		WithPort(8099),
	)

	assert.Equal(t, "/data/d.db", cfg.DBPath())
	assert.Equal(t, "127.0.0.1:8099", cfg.Addr())
}

func TestAppConfig_ApplyIgnoresZeroValues(t *testing.T) {
	cfg := NewAppConfig().Apply(WithDBPath(""), WithHost(""), WithPort(0))

	assert.Equal(t, DefaultDatabasePath(), cfg.DBPath())
	assert.Equal(t, DefaultHost, cfg.Host())
	assert.Equal(t, DefaultPort, cfg.Port())
}

func TestParseLogFormat(t *testing.T) {
	assert.Equal(t, LogFormatJSON, parseLogFormat("json"))
	assert.Equal(t, LogFormatJSON, parseLogFormat("JSON"))
	assert.Equal(t, LogFormatPretty, parseLogFormat("pretty"))
	assert.Equal(t, LogFormatPretty, parseLogFormat("anything-else"))
}
