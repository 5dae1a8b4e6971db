// Package logging configures the zerolog logger and provides context-scoped
// loggers with a fixed set of field names.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration.
type Config struct {
	Level  string     `mapstructure:"level"`
	Format string     `mapstructure:"format"` // "console" or "json"
	File   FileConfig `mapstructure:"file"`
}

// FileConfig configures the optional rotating log file.
type FileConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// New builds a logger writing to out. An invalid level falls back to info.
func New(cfg Config, out io.Writer) zerolog.Logger {
	return zerolog.New(consoleWriter(cfg, out)).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
}

// Setup builds the application logger from cfg. When file logging is enabled
// the returned cleanup closes the rotating file; it is never nil.
func Setup(cfg Config) (zerolog.Logger, func(), error) {
	noop := func() {}

	if !cfg.File.Enabled {
		return New(cfg, os.Stderr), noop, nil
	}

	if cfg.File.Path == "" {
		return zerolog.Nop(), noop, fmt.Errorf("logging.file.path is required when file logging is enabled")
	}

	// Owner-only permissions on the log directory.
	if err := os.MkdirAll(filepath.Dir(cfg.File.Path), 0700); err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("failed to create logs directory: %w", err)
	}

	fileWriter := &lumberjack.Logger{
		Filename:   cfg.File.Path,
		MaxSize:    cfg.File.MaxSize,
		MaxBackups: cfg.File.MaxBackups,
		MaxAge:     cfg.File.MaxAge,
		Compress:   cfg.File.Compress,
	}

	// The file always gets JSON lines; the console follows the configured format.
	multi := zerolog.MultiLevelWriter(consoleWriter(cfg, os.Stderr), fileWriter)

	log := zerolog.New(multi).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	cleanup := func() {
		_ = fileWriter.Close()
	}

	log.Debug().
		Str("log_file", cfg.File.Path).
		Str("level", log.GetLevel().String()).
		Msg("file logging initialized")

	return log, cleanup, nil
}

func parseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return level
}

func consoleWriter(cfg Config, out io.Writer) io.Writer {
	if cfg.Format == "json" {
		return out
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
}
