package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sentinel-lite/sentinel/internal/config"
)

// ConfigFileCheck reports which config file is in use.
type ConfigFileCheck struct {
	ConfigPath string // Explicit path, or empty to search
	TargetPath string // Where --fix writes a default config
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return CategoryConfig }

func (c *ConfigFileCheck) Run(context.Context) CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Error finding config: %v", err),
			Suggestion: "Check the --config path or $" + config.PathEnv,
		}
	}

	if path == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No config file, using defaults and environment",
			Suggestion: "Run 'sentinel config init' to write one",
			Fixable:    c.TargetPath != "",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Config file: " + path,
	}
}

// Fix writes the default config to TargetPath. An existing file is kept.
func (c *ConfigFileCheck) Fix(context.Context) error {
	if c.TargetPath == "" {
		return nil
	}
	return config.WriteDefault(c.TargetPath, false)
}

// ConfigValidCheck loads the resolved settings and validates them.
type ConfigValidCheck struct {
	ConfigPath string
}

func (c *ConfigValidCheck) Name() string     { return "config_valid" }
func (c *ConfigValidCheck) Category() string { return CategoryConfig }

func (c *ConfigValidCheck) Run(context.Context) CheckResult {
	cfg, _, err := config.LoadOrDefault(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Failed to load config: %v", err),
			Suggestion: "Check the YAML syntax and duration values",
		}
	}

	if err := config.Validate(cfg); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Invalid settings: %v", err),
			Suggestion: "Fix the value with 'sentinel config set <key> <value>'",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Settings valid (api.url %s, refresh every %s)", cfg.API.URL, cfg.Refresh.Interval),
	}
}

func (c *ConfigValidCheck) Fix(context.Context) error {
	return nil // Bad values need a human
}

// LogFileCheck verifies the dashboard can write its log file.
type LogFileCheck struct {
	Path string
}

func (c *LogFileCheck) Name() string     { return "log_file" }
func (c *LogFileCheck) Category() string { return CategoryConfig }

func (c *LogFileCheck) Run(context.Context) CheckResult {
	if c.Path == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No log_file configured",
			Suggestion: "Set log_file so dashboard errors are kept",
		}
	}

	dir := filepath.Dir(c.Path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Log directory doesn't exist: " + dir,
			Suggestion: "It will be created by --fix",
			Fixable:    true,
		}
	}

	f, err := os.OpenFile(c.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Can't write %s: %v", c.Path, err),
			Suggestion: "Point log_file at a writable location",
		}
	}
	f.Close()

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Log file: " + c.Path,
	}
}

// Fix creates the log directory.
func (c *LogFileCheck) Fix(context.Context) error {
	if c.Path == "" {
		return nil
	}
	return os.MkdirAll(filepath.Dir(c.Path), 0o755)
}

// NewConfigChecks returns the CONFIG category. target is where --fix writes a
// default config; logFile is the resolved log_file setting.
func NewConfigChecks(explicit, target, logFile string) []Check {
	return []Check{
		&ConfigFileCheck{ConfigPath: explicit, TargetPath: target},
		&ConfigValidCheck{ConfigPath: explicit},
		&LogFileCheck{Path: logFile},
	}
}
