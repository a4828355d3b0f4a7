package api

import (
	"net/url"
	"strconv"
)

// Host is a monitored machine.
type Host struct {
	ID        ID        `json:"id"`
	Hostname  string    `json:"hostname"`
	Platform  string    `json:"platform"`
	OSVersion *string   `json:"os_version"`
	LastSeen  Timestamp `json:"last_seen"`
	CreatedAt Timestamp `json:"created_at"`
}

// Event is a single security event reported by a host. At most one of the
// detail groups (process, file, network) is expected to be populated.
type Event struct {
	ID        ID        `json:"id"`
	HostID    ID        `json:"host_id"`
	EventType string    `json:"event_type"`
	Severity  string    `json:"severity"`
	EventTime Timestamp `json:"event_time"`

	ProcName *string `json:"proc_name"`
	ProcPID  *int    `json:"proc_pid"`
	FilePath *string `json:"file_path"`
	NetRAddr *string `json:"net_raddr"`
	NetRPort *int    `json:"net_rport"`
}

// HasProcess reports whether the process detail group is populated.
func (e Event) HasProcess() bool {
	return e.ProcName != nil && *e.ProcName != ""
}

// HasFile reports whether the file detail group is populated.
func (e Event) HasFile() bool {
	return e.FilePath != nil && *e.FilePath != ""
}

// HasNetwork reports whether the network detail group is populated.
func (e Event) HasNetwork() bool {
	return e.NetRAddr != nil && *e.NetRAddr != ""
}

// RuleDefinition describes what a rule matches.
type RuleDefinition struct {
	Type    string `json:"type"`
	Pattern string `json:"pattern"`
}

// Rule is a detection rule.
type Rule struct {
	ID         ID             `json:"id"`
	Name       string         `json:"name"`
	Version    string         `json:"version,omitempty"`
	Enabled    bool           `json:"enabled"`
	Definition RuleDefinition `json:"definition"`
	CreatedAt  Timestamp      `json:"created_at"`
	UpdatedAt  Timestamp      `json:"updated_at"`
}

// AlertStatus is the triage state of an alert.
type AlertStatus string

const (
	AlertNew           AlertStatus = "new"
	AlertInProgress    AlertStatus = "in_progress"
	AlertResolved      AlertStatus = "resolved"
	AlertFalsePositive AlertStatus = "false_positive"
)

// AlertStatuses lists the statuses a user can assign, in display order.
var AlertStatuses = []AlertStatus{AlertNew, AlertInProgress, AlertResolved, AlertFalsePositive}

// Label returns a human-readable form of the status.
func (s AlertStatus) Label() string {
	switch s {
	case AlertNew:
		return "New"
	case AlertInProgress:
		return "In Progress"
	case AlertResolved:
		return "Resolved"
	case AlertFalsePositive:
		return "False Positive"
	case "":
		return ""
	default:
		return string(s)
	}
}

// Known reports whether s is one of the assignable statuses.
func (s AlertStatus) Known() bool {
	for _, known := range AlertStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseAlertStatus accepts the wire value or a short alias.
func ParseAlertStatus(s string) (AlertStatus, bool) {
	switch s {
	case "new", "n":
		return AlertNew, true
	case "in_progress", "in-progress", "i":
		return AlertInProgress, true
	case "resolved", "r":
		return AlertResolved, true
	case "false_positive", "false-positive", "f":
		return AlertFalsePositive, true
	}
	return "", false
}

// Alert is raised when a rule matches events on a host.
type Alert struct {
	ID          ID          `json:"id"`
	RuleID      ID          `json:"rule_id"`
	HostID      ID          `json:"host_id"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	Severity    string      `json:"severity"`
	Status      AlertStatus `json:"status"`
	FirstSeen   Timestamp   `json:"first_seen"`
	LastSeen    Timestamp   `json:"last_seen"`
}

// DashboardStats are the summary counters shown on the dashboard section.
// RecentEvents and HighAlerts are optional; older backends omit them.
type DashboardStats struct {
	TotalHosts   int  `json:"total_hosts"`
	TotalEvents  int  `json:"total_events"`
	TotalRules   int  `json:"total_rules"`
	TotalAlerts  int  `json:"total_alerts"`
	RecentEvents *int `json:"recent_events,omitempty"`
	HighAlerts   *int `json:"high_alerts,omitempty"`
}

// Health is the backend's health check response.
type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Healthy reports whether the backend described itself as healthy.
func (h Health) Healthy() bool {
	return h.Status == "healthy" || h.Status == "ok"
}

// HostInput is the body of POST /api/hosts.
type HostInput struct {
	Hostname  string `json:"hostname"`
	Platform  string `json:"platform"`
	OSVersion string `json:"os_version,omitempty"`
}

// RuleInput is the body of POST /api/rules.
type RuleInput struct {
	Name       string         `json:"name"`
	Definition RuleDefinition `json:"definition"`
}

// RuleUpdate is a partial update for PUT /api/rules/{id}. Nil fields are
// left out of the body.
type RuleUpdate struct {
	Name    *string `json:"name,omitempty"`
	Enabled *bool   `json:"enabled,omitempty"`
}

// AlertUpdate is a partial update for PUT /api/alerts/{id}.
type AlertUpdate struct {
	Status AlertStatus `json:"status,omitempty"`
}

// EventFilter narrows GET /api/events. Zero fields are not sent.
type EventFilter struct {
	EventType string
	Severity  string
	HostID    ID
	Skip      int
	Limit     int
}

// Values encodes the filter as query parameters.
func (f EventFilter) Values() url.Values {
	v := url.Values{}
	if f.EventType != "" {
		v.Set("event_type", f.EventType)
	}
	if f.Severity != "" {
		v.Set("severity", f.Severity)
	}
	if !f.HostID.IsZero() {
		v.Set("host_id", f.HostID.String())
	}
	addPaging(v, f.Skip, f.Limit)
	return v
}

// IsZero reports whether no field narrows the query.
func (f EventFilter) IsZero() bool {
	return f == EventFilter{}
}

// AlertFilter narrows GET /api/alerts. Zero fields are not sent.
type AlertFilter struct {
	Severity string
	Status   AlertStatus
	Skip     int
	Limit    int
}

// Values encodes the filter as query parameters.
func (f AlertFilter) Values() url.Values {
	v := url.Values{}
	if f.Severity != "" {
		v.Set("severity", f.Severity)
	}
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	addPaging(v, f.Skip, f.Limit)
	return v
}

// IsZero reports whether no field narrows the query.
func (f AlertFilter) IsZero() bool {
	return f == AlertFilter{}
}

func addPaging(v url.Values, skip, limit int) {
	if skip > 0 {
		v.Set("skip", strconv.Itoa(skip))
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
}

// String returns a pointer to s, for optional request fields.
func String(s string) *string {
	return &s
}

// Bool returns a pointer to b, for optional request fields.
func Bool(b bool) *bool {
	return &b
}
