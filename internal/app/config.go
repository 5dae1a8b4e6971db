// Package app provides the application initialization and wiring.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/bnema/beacon/internal/adapters/out/telemetry"
	"github.com/bnema/beacon/internal/domain"
	"github.com/bnema/beacon/internal/logging"
	"github.com/bnema/beacon/internal/usecase/scheduler"
)

// WebhookEnvVar names the environment variable holding the notification sink.
const WebhookEnvVar = "SLACK_WEBHOOK_URL"

// Config holds the application configuration.
type Config struct {
	Monitor struct {
		Interval       time.Duration `mapstructure:"interval"`
		ProbeTimeout   time.Duration `mapstructure:"probe_timeout"`
		RunImmediately bool          `mapstructure:"run_immediately"`
	} `mapstructure:"monitor"`

	Notify struct {
		WebhookURL string `mapstructure:"webhook_url"`
	} `mapstructure:"notify"`

	Server struct {
		Listen string `mapstructure:"listen"`
	} `mapstructure:"server"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`

	Telemetry telemetry.Config `mapstructure:"telemetry"`

	Services []domain.ServiceConfig `mapstructure:"services"`
}

// Options selects where configuration is read from.
type Options struct {
	ConfigPath string
	EnvFile    string
}

// LoadConfig reads the env file, the config file and BEACON_* overrides, then
// validates the result.
func LoadConfig(opts Options) (Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return Config{}, err
	}

	v := viper.New()
	if err := loadConfig(v, opts.ConfigPath); err != nil {
		return Config{}, fmt.Errorf("%w: %w", domain.ErrConfigLoadFailed, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: failed to unmarshal config: %w", domain.ErrConfigLoadFailed, err)
	}

	// The sink endpoint is read once; the config file wins over the environment.
	if cfg.Notify.WebhookURL == "" {
		cfg.Notify.WebhookURL = os.Getenv(WebhookEnvVar)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the parts of the configuration that cannot be defaulted.
func (c Config) Validate() error {
	if c.Monitor.Interval <= 0 {
		return fmt.Errorf("%w: monitor.interval must be positive, got %s", domain.ErrInvalidConfig, c.Monitor.Interval)
	}
	if c.Monitor.ProbeTimeout < 0 {
		return fmt.Errorf("%w: monitor.probe_timeout must not be negative", domain.ErrInvalidConfig)
	}
	if len(c.Services) == 0 {
		return domain.ErrNoServices
	}

	seen := make(map[string]struct{}, len(c.Services))
	for i, svc := range c.Services {
		if err := svc.Validate(); err != nil {
			return fmt.Errorf("services[%d]: %w", i, err)
		}
		if _, dup := seen[svc.URL]; dup {
			return fmt.Errorf("services[%d]: %w: %s", i, domain.ErrDuplicateService, svc.URL)
		}
		seen[svc.URL] = struct{}{}
	}
	return nil
}

// LoggingConfig maps the logging section onto the logger setup.
func (c Config) LoggingConfig() logging.Config {
	return logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
		File: logging.FileConfig{
			Enabled:    c.Logging.File.Enabled,
			Path:       resolveLogFilePath(c),
			MaxSize:    c.Logging.File.MaxSize,
			MaxBackups: c.Logging.File.MaxBackups,
			MaxAge:     c.Logging.File.MaxAge,
			Compress:   true,
		},
	}
}

// resolveLogFilePath returns the configured log file path or a default under
// the state directory.
func resolveLogFilePath(c Config) string {
	if c.Logging.File.Path != "" {
		return c.Logging.File.Path
	}
	if c.Logging.File.Enabled {
		return filepath.Join(DefaultStateDir(), "beacon.log")
	}
	return ""
}

// loadEnvFile loads KEY=VALUE pairs without overriding variables that are
// already set. A missing default .env is not an error.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: failed to load env file %s: %w", domain.ErrConfigLoadFailed, path, err)
	}
	return nil
}

// loadConfig loads configuration from file and sets defaults.
func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("monitor.interval", scheduler.DefaultInterval)
	v.SetDefault("monitor.probe_timeout", time.Duration(0))
	v.SetDefault("monitor.run_immediately", false)
	v.SetDefault("notify.webhook_url", "")
	v.SetDefault("server.listen", "127.0.0.1:8090")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.max_size", 10)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.metrics", true)
	v.SetDefault("telemetry.traces", false)
	v.SetDefault("telemetry.trace_sample_rate", 1.0)
	v.SetDefault("telemetry.export_interval", 60*time.Second)

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("BEACON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}
