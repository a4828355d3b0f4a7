package doctor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sentinel-lite/sentinel/internal/api"
	"github.com/sentinel-lite/sentinel/internal/util"
)

// Prober is the part of api.Client the API checks need.
type Prober interface {
	Do(ctx context.Context, path string, out interface{}, opts ...api.RequestOption) error
	BaseURL() string
}

// HealthCheck calls the backend's health endpoint.
type HealthCheck struct {
	Client Prober
}

func (c *HealthCheck) Name() string     { return "api_health" }
func (c *HealthCheck) Category() string { return CategoryAPI }

func (c *HealthCheck) Run(ctx context.Context) CheckResult {
	var health api.Health
	start := time.Now()
	err := c.Client.Do(ctx, api.PathHealth, &health)
	latency := time.Since(start)

	if err != nil {
		return failedRequest(c.Name(), c.Client.BaseURL(), api.PathHealth, err)
	}

	if !health.Healthy() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Backend at %s reports status '%s'", c.Client.BaseURL(), util.FirstNonEmpty(health.Status, "none")),
			Suggestion: "Check the backend logs",
			Latency:    latency,
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Backend at %s is %s (%s)", c.Client.BaseURL(), health.Status, formatLatency(latency)),
		Latency: latency,
	}
}

func (c *HealthCheck) Fix(context.Context) error {
	return nil
}

// EndpointCheck verifies one collection endpoint answers with JSON.
type EndpointCheck struct {
	Client Prober
	Label  string
	Path   string
	Query  url.Values
}

func (c *EndpointCheck) Name() string     { return "api" + c.Path }
func (c *EndpointCheck) Category() string { return CategoryAPI }

func (c *EndpointCheck) Run(ctx context.Context) CheckResult {
	var body json.RawMessage
	start := time.Now()
	err := c.Client.Do(ctx, c.Path, &body, api.WithQuery(c.Query))
	latency := time.Since(start)

	if err != nil {
		return failedRequest(c.Name(), c.Client.BaseURL(), c.Path, err)
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%s: OK (%s)", c.Label, formatLatency(latency)),
		Latency: latency,
	}
}

func (c *EndpointCheck) Fix(context.Context) error {
	return nil
}

func failedRequest(name, baseURL, path string, err error) CheckResult {
	switch status := api.StatusCode(err); {
	case status == http.StatusNotFound:
		return CheckResult{
			Name:       name,
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s isn't served by %s", path, baseURL),
			Suggestion: "Check api.url points at a Sentinel backend",
		}
	case status != 0:
		return CheckResult{
			Name:       name,
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s returned %d %s", path, status, http.StatusText(status)),
			Suggestion: "Check the backend logs",
		}
	case api.IsMalformed(err):
		return CheckResult{
			Name:       name,
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s answered without the expected JSON body", path),
			Suggestion: "Check api.url points at a Sentinel backend",
		}
	}
	return CheckResult{
		Name:       name,
		Status:     StatusFail,
		Message:    fmt.Sprintf("Can't reach %s: %v", baseURL, rootCause(err)),
		Suggestion: "Check the backend is running and api.url is correct",
	}
}

// rootCause returns the innermost error so messages don't repeat the
// structured error's own text.
func rootCause(err error) error {
	for {
		u, ok := err.(interface{ Unwrap() error })
		if !ok || u.Unwrap() == nil {
			return err
		}
		err = u.Unwrap()
	}
}

func formatLatency(d time.Duration) string {
	if d < time.Millisecond {
		return "<1ms"
	}
	return d.Round(time.Millisecond).String()
}

// NewAPIChecks returns the API category: health first, then every endpoint
// the dashboard reads. Paged collections ask for a single record.
func NewAPIChecks(client Prober) []Check {
	one := url.Values{"limit": {"1"}}
	return []Check{
		&HealthCheck{Client: client},
		&EndpointCheck{Client: client, Label: "Dashboard", Path: api.PathDashboard},
		&EndpointCheck{Client: client, Label: "Hosts", Path: api.PathHosts},
		&EndpointCheck{Client: client, Label: "Events", Path: api.PathEvents, Query: one},
		&EndpointCheck{Client: client, Label: "Rules", Path: api.PathRules},
		&EndpointCheck{Client: client, Label: "Alerts", Path: api.PathAlerts, Query: one},
	}
}
