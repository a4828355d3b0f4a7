package config

import (
	"os"
	"path/filepath"
	"time"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Defaults.
const (
	DefaultAPIURL          = "http://localhost:8000"
	DefaultRefreshInterval = 30 * time.Second
	DefaultNotifyTTL       = 3 * time.Second
	DefaultLogFileName     = "sentinel.log"
)

// Color modes for output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the resolved client configuration.
type Config struct {
	Version int           `yaml:"version" mapstructure:"version"`
	API     APIConfig     `yaml:"api" mapstructure:"api"`
	Refresh RefreshConfig `yaml:"refresh" mapstructure:"refresh"`
	Notify  NotifyConfig  `yaml:"notify" mapstructure:"notify"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`

	// LogFile receives log output while the dashboard owns the terminal.
	// Supports ~ and ${HOME}.
	LogFile string `yaml:"log_file" mapstructure:"log_file"`
}

// APIConfig locates the backend.
type APIConfig struct {
	// URL is the backend base address; API paths are appended to it.
	URL string `yaml:"url" mapstructure:"url"`

	// Timeout bounds each HTTP request. Zero leaves it to the network stack.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// RefreshConfig controls the dashboard polling cadence.
type RefreshConfig struct {
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// NotifyConfig controls transient messages.
type NotifyConfig struct {
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		API: APIConfig{
			URL: DefaultAPIURL,
		},
		Refresh: RefreshConfig{
			Interval: DefaultRefreshInterval,
		},
		Notify: NotifyConfig{
			TTL: DefaultNotifyTTL,
		},
		Output: OutputConfig{
			Color: ColorAuto,
		},
		LogFile: DefaultLogFile(),
	}
}

// DefaultLogFile is sentinel.log in the system temp directory.
func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), DefaultLogFileName)
}
