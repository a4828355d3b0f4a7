package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/sentinel-lite/sentinel/internal/errors"
)

const (
	// GlobalConfigDir is the directory for the config file, relative to home.
	GlobalConfigDir = ".config/sentinel"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. SENTINEL_API_URL.
	EnvPrefix = "SENTINEL"
	// PathEnv names a config file when --config isn't given.
	PathEnv = "SENTINEL_CONFIG"
)

// DefaultPath returns ~/.config/sentinel/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine your home directory",
			"Pass a config file explicitly with --config")
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile), nil
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. $SENTINEL_CONFIG
// 3. ~/.config/sentinel/config.yaml
//
// An explicit path that doesn't exist is an error. Otherwise a missing file
// returns "" so callers fall back to defaults.
func Find(explicit string) (string, error) {
	if explicit == "" {
		explicit = os.Getenv(PathEnv)
	}
	if explicit != "" {
		explicit = ExpandPath(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path, or run 'sentinel config init --config "+explicit+"'")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	global, err := DefaultPath()
	if err != nil {
		return "", nil
	}
	if _, err := os.Stat(global); err == nil {
		return global, nil
	}
	return "", nil
}

// Load reads config from the specified path, with defaults and SENTINEL_*
// environment overrides applied.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'sentinel config init' to create one, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// LoadOrDefault finds and loads the config file, or returns defaults (with
// environment overrides) when there is none.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		cfg, err := parseConfig(newViper(), "environment")
		return cfg, "", err
	}

	cfg, err := Load(path)
	return cfg, path, err
}

// newViper returns a viper instance with every key defaulted, so that
// AutomaticEnv can override keys the file doesn't mention.
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("api.url", d.API.URL)
	v.SetDefault("api.timeout", d.API.Timeout)
	v.SetDefault("refresh.interval", d.Refresh.Interval)
	v.SetDefault("notify.ttl", d.Notify.TTL)
	v.SetDefault("output.color", d.Output.Color)
	v.SetDefault("log_file", d.LogFile)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, source string) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax and duration values (e.g. 30s) in "+source)
	}

	cfg.API.URL = strings.TrimRight(strings.TrimSpace(cfg.API.URL), "/")
	cfg.Output.Color = strings.ToLower(strings.TrimSpace(cfg.Output.Color))
	cfg.LogFile = ExpandPath(cfg.LogFile)

	return cfg, nil
}
