package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/beacon/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
services:
  - url: https://api.example.com/health
    timeout: 1000
  - url: http://intranet.local
    timeout: 250.5
`

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(WebhookEnvVar, "")
	path := writeFile(t, "beacon.yaml", minimalConfig)

	cfg, err := LoadConfig(Options{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.Monitor.Interval)
	assert.Zero(t, cfg.Monitor.ProbeTimeout)
	assert.False(t, cfg.Monitor.RunImmediately)
	assert.Equal(t, "127.0.0.1:8090", cfg.Server.Listen)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.True(t, cfg.Telemetry.Metrics)
	assert.Empty(t, cfg.Notify.WebhookURL)

	require.Len(t, cfg.Services, 2)
	assert.Equal(t, domain.ServiceConfig{URL: "https://api.example.com/health", TimeoutThresholdMs: 1000}, cfg.Services[0])
	assert.Equal(t, 250.5, cfg.Services[1].TimeoutThresholdMs)
}

func TestLoadConfig_FileValues(t *testing.T) {
	t.Setenv(WebhookEnvVar, "https://hooks.example.com/from-env")
	path := writeFile(t, "beacon.yaml", `
monitor:
  interval: 30s
  probe_timeout: 10s
  run_immediately: true
notify:
  webhook_url: https://hooks.example.com/from-file
server:
  listen: ""
logging:
  level: debug
  format: json
services:
  - url: https://api.example.com
    timeout: 800
`)

	cfg, err := LoadConfig(Options{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Monitor.Interval)
	assert.Equal(t, 10*time.Second, cfg.Monitor.ProbeTimeout)
	assert.True(t, cfg.Monitor.RunImmediately)
	assert.Equal(t, "https://hooks.example.com/from-file", cfg.Notify.WebhookURL)
	assert.Empty(t, cfg.Server.Listen)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfig_WebhookFromEnvironment(t *testing.T) {
	t.Setenv(WebhookEnvVar, "https://hooks.example.com/from-env")
	path := writeFile(t, "beacon.yaml", minimalConfig)

	cfg, err := LoadConfig(Options{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, "https://hooks.example.com/from-env", cfg.Notify.WebhookURL)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	t.Setenv(WebhookEnvVar, "")
	require.NoError(t, os.Unsetenv(WebhookEnvVar))
	t.Cleanup(func() { _ = os.Unsetenv(WebhookEnvVar) })

	path := writeFile(t, "beacon.yaml", minimalConfig)
	envFile := writeFile(t, ".env", "SLACK_WEBHOOK_URL=https://hooks.example.com/dotenv\n")

	cfg, err := LoadConfig(Options{ConfigPath: path, EnvFile: envFile})
	require.NoError(t, err)

	assert.Equal(t, "https://hooks.example.com/dotenv", cfg.Notify.WebhookURL)
}

func TestLoadConfig_MissingEnvFile(t *testing.T) {
	path := writeFile(t, "beacon.yaml", minimalConfig)

	_, err := LoadConfig(Options{ConfigPath: path, EnvFile: filepath.Join(t.TempDir(), "missing.env")})
	assert.ErrorIs(t, err, domain.ErrConfigLoadFailed)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv(WebhookEnvVar, "")
	t.Setenv("BEACON_MONITOR_INTERVAL", "45s")
	t.Setenv("BEACON_SERVER_LISTEN", "127.0.0.1:9999")
	path := writeFile(t, "beacon.yaml", minimalConfig)

	cfg, err := LoadConfig(Options{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, 45*time.Second, cfg.Monitor.Interval)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Listen)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(Options{ConfigPath: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.ErrorIs(t, err, domain.ErrConfigLoadFailed)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv(WebhookEnvVar, "")

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "no services",
			content: "monitor:\n  interval: 1m\n",
			wantErr: domain.ErrNoServices,
		},
		{
			name: "duplicate url",
			content: `
services:
  - url: https://a.example.com
    timeout: 100
  - url: https://a.example.com
    timeout: 200
`,
			wantErr: domain.ErrDuplicateService,
		},
		{
			name: "missing timeout",
			content: `
services:
  - url: https://a.example.com
`,
			wantErr: domain.ErrInvalidService,
		},
		{
			name: "bad scheme",
			content: `
services:
  - url: ftp://a.example.com
    timeout: 100
`,
			wantErr: domain.ErrInvalidService,
		},
		{
			name: "zero interval",
			content: `
monitor:
  interval: 0s
services:
  - url: https://a.example.com
    timeout: 100
`,
			wantErr: domain.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "beacon.yaml", tt.content)
			_, err := LoadConfig(Options{ConfigPath: path})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfig_LoggingConfig(t *testing.T) {
	var cfg Config
	cfg.Logging.Level = "warn"
	cfg.Logging.File.Enabled = true
	cfg.Logging.File.MaxSize = 5

	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	lc := cfg.LoggingConfig()

	assert.Equal(t, "warn", lc.Level)
	assert.True(t, lc.File.Enabled)
	assert.Equal(t, filepath.Join("/tmp/state", "beacon", "beacon.log"), lc.File.Path)
	assert.Equal(t, 5, lc.File.MaxSize)

	cfg.Logging.File.Path = "/var/log/beacon.log"
	assert.Equal(t, "/var/log/beacon.log", cfg.LoggingConfig().File.Path)
}
