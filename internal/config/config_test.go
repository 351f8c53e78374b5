package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"

	"yoth.dev/onekit-go/locale"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, 64, cfg.Server.Workers)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadWithoutPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onekit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
locale: en_GB
timezone: Europe/London
log:
  level: debug
  human: true
server:
  addr: 127.0.0.1:9090
  workers: 8
  read_timeout: 3s
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "en_GB", cfg.Locale)
	require.True(t, cfg.LocaleValue().Equal(locale.EnGB))
	require.Equal(t, "Europe/London", cfg.Location().String())
	require.Equal(t, "debug", cfg.Log.Level)
	require.True(t, cfg.Log.Human)
	require.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	require.Equal(t, 8, cfg.Server.Workers)
	require.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	// untouched keys keep their defaults
	require.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"unknown locale", "locale: xx_YY", "Config.Locale"},
		{"unknown timezone", "timezone: Mars/Olympus", "Config.Timezone"},
		{"bad level", "log: {level: loud}", "Config.Log.Level"},
		{"no workers", "server: {workers: 0}", "Config.Server.Workers"},
		{"bad addr", "server: {addr: nowhere}", "Config.Server.Addr"},
		{"negative timeout", "server: {read_timeout: -1s}", "Config.Server.ReadTimeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), Default())
			require.ErrorIs(t, err, ErrInvalidConfig)
			require.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("server: [unclosed"), Default())
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFallbacks(t *testing.T) {
	cfg := Default()
	require.Equal(t, time.Local, cfg.Location())
	require.True(t, cfg.LocaleValue().Equal(locale.Current()))
}
