package doctor

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SENTINEL_CONFIG", "")
	t.Setenv("SENTINEL_API_URL", "")
	return home
}

func TestConfigFileCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit path missing", func(t *testing.T) {
		isolateHome(t)
		check := &ConfigFileCheck{ConfigPath: filepath.Join(t.TempDir(), "nonexistent.yaml")}
		result := check.Run(ctx)

		if result.Status != StatusFail {
			t.Errorf("expected StatusFail, got %v", result.Status)
		}
	})

	t.Run("no file is a fixable warning", func(t *testing.T) {
		home := isolateHome(t)
		target := filepath.Join(home, ".config", "sentinel", "config.yaml")
		check := &ConfigFileCheck{TargetPath: target}

		result := check.Run(ctx)
		if result.Status != StatusWarn || !result.Fixable {
			t.Fatalf("expected fixable StatusWarn, got %v (fixable=%v)", result.Status, result.Fixable)
		}

		if err := check.Fix(ctx); err != nil {
			t.Fatalf("Fix() error: %v", err)
		}
		if _, err := os.Stat(target); err != nil {
			t.Fatalf("expected config written at %s: %v", target, err)
		}
		if result := check.Run(ctx); result.Status != StatusPass {
			t.Errorf("expected StatusPass after fix, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("config found", func(t *testing.T) {
		isolateHome(t)
		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(cfgPath, []byte("api:\n  url: http://10.0.0.5:8000\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		result := (&ConfigFileCheck{ConfigPath: cfgPath}).Run(ctx)
		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("name and category", func(t *testing.T) {
		check := &ConfigFileCheck{}
		if check.Name() != "config_file" {
			t.Errorf("expected name 'config_file', got %s", check.Name())
		}
		if check.Category() != CategoryConfig {
			t.Errorf("expected category 'CONFIG', got %s", check.Category())
		}
	})
}

func TestConfigValidCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults are valid", func(t *testing.T) {
		isolateHome(t)
		result := (&ConfigValidCheck{}).Run(ctx)
		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		isolateHome(t)
		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(cfgPath, []byte("output:\n  color: rainbow\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		result := (&ConfigValidCheck{ConfigPath: cfgPath}).Run(ctx)
		if result.Status != StatusFail {
			t.Errorf("expected StatusFail, got %v", result.Status)
		}
	})

	t.Run("bad yaml", func(t *testing.T) {
		isolateHome(t)
		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(cfgPath, []byte("api: [unclosed\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		result := (&ConfigValidCheck{ConfigPath: cfgPath}).Run(ctx)
		if result.Status != StatusFail {
			t.Errorf("expected StatusFail, got %v", result.Status)
		}
	})
}

func TestLogFileCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("writable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sentinel.log")
		result := (&LogFileCheck{Path: path}).Run(ctx)
		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("missing directory is fixable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "sentinel.log")
		check := &LogFileCheck{Path: path}

		result := check.Run(ctx)
		if result.Status != StatusWarn || !result.Fixable {
			t.Fatalf("expected fixable StatusWarn, got %v", result.Status)
		}
		if err := check.Fix(ctx); err != nil {
			t.Fatal(err)
		}
		if result := check.Run(ctx); result.Status != StatusPass {
			t.Errorf("expected StatusPass after fix, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		if result := (&LogFileCheck{}).Run(ctx); result.Status != StatusWarn {
			t.Errorf("expected StatusWarn, got %v", result.Status)
		}
	})
}

func TestNewConfigChecks(t *testing.T) {
	checks := NewConfigChecks("", "/tmp/config.yaml", "/tmp/sentinel.log")
	if len(checks) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(checks))
	}
	for _, c := range checks {
		if c.Category() != CategoryConfig {
			t.Errorf("%s: expected category CONFIG, got %s", c.Name(), c.Category())
		}
	}
}
