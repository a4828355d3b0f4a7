package dashboard

import (
	"context"

	"github.com/sentinel-lite/sentinel/internal/api"
)

// API is the subset of the backend the dashboard uses. *api.Client
// implements it.
type API interface {
	Dashboard(ctx context.Context) (*api.DashboardStats, error)
	Hosts(ctx context.Context) ([]api.Host, error)
	CreateHost(ctx context.Context, in api.HostInput) (*api.Host, error)
	DeleteHost(ctx context.Context, id api.ID) error
	Events(ctx context.Context, f api.EventFilter) ([]api.Event, error)
	Rules(ctx context.Context) ([]api.Rule, error)
	CreateRule(ctx context.Context, in api.RuleInput) (*api.Rule, error)
	UpdateRule(ctx context.Context, id api.ID, in api.RuleUpdate) (*api.Rule, error)
	DeleteRule(ctx context.Context, id api.ID) error
	Alerts(ctx context.Context, f api.AlertFilter) ([]api.Alert, error)
	UpdateAlert(ctx context.Context, id api.ID, in api.AlertUpdate) (*api.Alert, error)
}

var _ API = (*api.Client)(nil)
