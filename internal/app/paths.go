package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultStateDir returns the directory used for log files when no path is
// configured. Uses ~/.local/state/beacon, /var/lib/beacon as fallback.
func DefaultStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "beacon")
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state", "beacon")
	}
	return "/var/lib/beacon"
}

// ConfigureViper sets up viper with standard config file search paths.
// Config file: beacon.{yaml,toml,json}
// Search paths (in order): current directory, user config dir, /etc/beacon
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}

	v.SetConfigName("beacon")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "beacon"))
	}
	v.AddConfigPath("/etc/beacon")
}
