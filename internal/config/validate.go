package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/sentinel-lite/sentinel/internal/errors"
)

// MinRefreshInterval is the shortest accepted refresh.interval.
const MinRefreshInterval = time.Second

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but sentinel only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade sentinel, or lower 'version' in your config")
	}

	if err := validateAPI(cfg.API); err != nil {
		return err
	}

	if cfg.Refresh.Interval < MinRefreshInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("refresh.interval %s is too short", cfg.Refresh.Interval),
			fmt.Sprintf("Use at least %s, e.g. 'interval: 30s'.", MinRefreshInterval))
	}

	if cfg.Notify.TTL <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("notify.ttl must be positive, got %s", cfg.Notify.TTL),
			"Try 'ttl: 3s'.")
	}

	switch cfg.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("output.color '%s' isn't a color mode", cfg.Output.Color),
			"Use one of: auto, always, never.")
	}

	return nil
}

func validateAPI(api APIConfig) error {
	if api.URL == "" {
		return errors.New(errors.ErrConfig,
			"api.url is empty",
			"Set it in your config, with --api-url, or via SENTINEL_API_URL.")
	}

	u, err := url.Parse(api.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		cause := err
		if cause == nil {
			cause = fmt.Errorf("need an http or https URL with a host")
		}
		return errors.WrapWithCode(cause, errors.ErrConfig,
			fmt.Sprintf("api.url '%s' isn't a valid backend address", api.URL),
			"Use something like http://localhost:8000.")
	}

	if api.Timeout < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("api.timeout can't be negative (%s)", api.Timeout),
			"Use 0 for no timeout, or a duration like 10s.")
	}
	return nil
}
