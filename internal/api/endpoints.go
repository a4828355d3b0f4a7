package api

import (
	"context"
	"net/http"
	"net/url"
)

// Paths consumed from the backend.
const (
	PathHealth    = "/api/health"
	PathDashboard = "/api/dashboard"
	PathHosts     = "/api/hosts"
	PathEvents    = "/api/events"
	PathRules     = "/api/rules"
	PathAlerts    = "/api/alerts"
)

func itemPath(collection string, id ID) string {
	return collection + "/" + url.PathEscape(id.String())
}

// Health calls GET /api/health.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.Do(ctx, PathHealth, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// Dashboard fetches the summary counters.
func (c *Client) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.Do(ctx, PathDashboard, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Hosts lists every host.
func (c *Client) Hosts(ctx context.Context) ([]Host, error) {
	var hosts []Host
	if err := c.Do(ctx, PathHosts, &hosts); err != nil {
		return nil, err
	}
	return hosts, nil
}

// CreateHost registers a host.
func (c *Client) CreateHost(ctx context.Context, in HostInput) (*Host, error) {
	var h Host
	if err := c.Do(ctx, PathHosts, &h, WithMethod(http.MethodPost), WithBody(in)); err != nil {
		return nil, err
	}
	return &h, nil
}

// DeleteHost removes a host.
func (c *Client) DeleteHost(ctx context.Context, id ID) error {
	return c.Do(ctx, itemPath(PathHosts, id), nil, WithMethod(http.MethodDelete))
}

// Events lists events matching the filter.
func (c *Client) Events(ctx context.Context, f EventFilter) ([]Event, error) {
	var events []Event
	if err := c.Do(ctx, PathEvents, &events, WithQuery(f.Values())); err != nil {
		return nil, err
	}
	return events, nil
}

// Rules lists every rule.
func (c *Client) Rules(ctx context.Context) ([]Rule, error) {
	var rules []Rule
	if err := c.Do(ctx, PathRules, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// CreateRule adds a rule.
func (c *Client) CreateRule(ctx context.Context, in RuleInput) (*Rule, error) {
	var r Rule
	if err := c.Do(ctx, PathRules, &r, WithMethod(http.MethodPost), WithBody(in)); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateRule applies a partial update. The response body is ignored when the
// backend returns none.
func (c *Client) UpdateRule(ctx context.Context, id ID, in RuleUpdate) (*Rule, error) {
	var r Rule
	if err := c.Do(ctx, itemPath(PathRules, id), &r, WithMethod(http.MethodPut), WithBody(in)); err != nil {
		return nil, err
	}
	return &r, nil
}

// DeleteRule removes a rule.
func (c *Client) DeleteRule(ctx context.Context, id ID) error {
	return c.Do(ctx, itemPath(PathRules, id), nil, WithMethod(http.MethodDelete))
}

// Alerts lists alerts matching the filter.
func (c *Client) Alerts(ctx context.Context, f AlertFilter) ([]Alert, error) {
	var alerts []Alert
	if err := c.Do(ctx, PathAlerts, &alerts, WithQuery(f.Values())); err != nil {
		return nil, err
	}
	return alerts, nil
}

// UpdateAlert applies a partial update, typically a status change.
func (c *Client) UpdateAlert(ctx context.Context, id ID, in AlertUpdate) (*Alert, error) {
	var a Alert
	if err := c.Do(ctx, itemPath(PathAlerts, id), &a, WithMethod(http.MethodPut), WithBody(in)); err != nil {
		return nil, err
	}
	return &a, nil
}
