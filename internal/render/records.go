package render

import (
	"github.com/sentinel-lite/sentinel/internal/api"
)

// Placeholder texts for empty collections.
const (
	EmptyHosts  = "No hosts found"
	EmptyEvents = "No events found"
	EmptyRules  = "No rules found"
	EmptyAlerts = "No alerts found"
)

// HostColumns are the columns of the hosts table.
var HostColumns = []Column{
	{Title: "ID", Width: 6},
	{Title: "Hostname", Width: 24},
	{Title: "Platform", Width: 12},
	{Title: "OS Version", Width: 16},
	{Title: "Last Seen", Width: 20},
}

// Hosts renders the hosts table.
func Hosts(hosts []api.Host) Table {
	t := Table{Title: "Hosts", Columns: HostColumns}
	if len(hosts) == 0 {
		t.Rows = []Row{placeholder(HostColumns, EmptyHosts)}
		return t
	}
	t.Rows = make([]Row, 0, len(hosts))
	for _, h := range hosts {
		t.Rows = append(t.Rows, Row{
			Key:   h.ID,
			Label: orFallback(h.Hostname, h.ID.String()),
			Cells: []Cell{
				cell(idOrFallback(h.ID, FallbackNA)),
				cell(orFallback(h.Hostname, FallbackUnknown)),
				cell(orFallback(h.Platform, FallbackUnknown)),
				cell(ptrOrFallback(h.OSVersion, FallbackNA)),
				cell(timeOrFallback(h.LastSeen)),
			},
		})
	}
	return t
}

// EventColumns are the columns of the events table.
var EventColumns = []Column{
	{Title: "ID", Width: 6},
	{Title: "Host", Width: 8},
	{Title: "Type", Width: 12},
	{Title: "Severity", Width: 10},
	{Title: "Time", Width: 20},
	{Title: "Details", Width: 36},
}

// Events renders the events table.
func Events(events []api.Event) Table {
	t := Table{Title: "Events", Columns: EventColumns}
	if len(events) == 0 {
		t.Rows = []Row{placeholder(EventColumns, EmptyEvents)}
		return t
	}
	t.Rows = make([]Row, 0, len(events))
	for _, e := range events {
		t.Rows = append(t.Rows, Row{
			Key: e.ID,
			Cells: []Cell{
				cell(idOrFallback(e.ID, FallbackNA)),
				cell(idOrFallback(e.HostID, FallbackUnknown)),
				cell(orFallback(e.EventType, FallbackUnknown)),
				severityCell(e.Severity),
				cell(timeOrFallback(e.EventTime)),
				detailCell(e),
			},
		})
	}
	return t
}

// EventDetail picks the one detail group to show for an event: process
// first, else file, else network, else FallbackNoDetails. Groups are never
// combined.
func EventDetail(e api.Event) string {
	switch {
	case e.HasProcess():
		s := "Process: " + *e.ProcName
		if e.ProcPID != nil {
			s += " (PID " + itoa(*e.ProcPID) + ")"
		}
		return s
	case e.HasFile():
		return "File: " + *e.FilePath
	case e.HasNetwork():
		s := "Network: " + *e.NetRAddr
		if e.NetRPort != nil {
			s += ":" + itoa(*e.NetRPort)
		}
		return s
	default:
		return FallbackNoDetails
	}
}

func detailCell(e api.Event) Cell {
	d := EventDetail(e)
	if d == FallbackNoDetails {
		return toned(d, ToneMuted)
	}
	return cell(d)
}

// RuleColumns are the columns of the rules table.
var RuleColumns = []Column{
	{Title: "ID", Width: 6},
	{Title: "Name", Width: 24},
	{Title: "Type", Width: 12},
	{Title: "Pattern", Width: 28},
	{Title: "Status", Width: 10},
}

// Rule status labels.
const (
	RuleEnabled  = "Enabled"
	RuleDisabled = "Disabled"
)

// Row states for rules.
const (
	StateEnabled  = "enabled"
	StateDisabled = "disabled"
)

// Rules renders the rules table.
func Rules(rules []api.Rule) Table {
	t := Table{Title: "Rules", Columns: RuleColumns}
	if len(rules) == 0 {
		t.Rows = []Row{placeholder(RuleColumns, EmptyRules)}
		return t
	}
	t.Rows = make([]Row, 0, len(rules))
	for _, r := range rules {
		status, state := toned(RuleDisabled, ToneMuted), StateDisabled
		if r.Enabled {
			status, state = toned(RuleEnabled, ToneSuccess), StateEnabled
		}
		t.Rows = append(t.Rows, Row{
			Key:   r.ID,
			Label: orFallback(r.Name, r.ID.String()),
			State: state,
			Cells: []Cell{
				cell(idOrFallback(r.ID, FallbackNA)),
				cell(orFallback(r.Name, FallbackUnknown)),
				cell(orFallback(r.Definition.Type, FallbackUnknown)),
				cell(orFallback(r.Definition.Pattern, FallbackNA)),
				status,
			},
		})
	}
	return t
}

// AlertColumns are the columns of the alerts table.
var AlertColumns = []Column{
	{Title: "ID", Width: 6},
	{Title: "Title", Width: 32},
	{Title: "Severity", Width: 10},
	{Title: "Status", Width: 16},
	{Title: "First Seen", Width: 20},
}

// StatusTone maps an alert status to a tone.
func StatusTone(s api.AlertStatus) Tone {
	switch s {
	case api.AlertNew:
		return ToneWarning
	case api.AlertInProgress:
		return ToneInfo
	case api.AlertResolved:
		return ToneSuccess
	case api.AlertFalsePositive:
		return ToneMuted
	default:
		return ToneDefault
	}
}

// Alerts renders the alerts table.
func Alerts(alerts []api.Alert) Table {
	t := Table{Title: "Alerts", Columns: AlertColumns}
	if len(alerts) == 0 {
		t.Rows = []Row{placeholder(AlertColumns, EmptyAlerts)}
		return t
	}
	t.Rows = make([]Row, 0, len(alerts))
	for _, a := range alerts {
		t.Rows = append(t.Rows, Row{
			Key:   a.ID,
			Label: orFallback(a.Title, a.ID.String()),
			State: string(a.Status),
			Cells: []Cell{
				cell(idOrFallback(a.ID, FallbackNA)),
				cell(orFallback(a.Title, FallbackUnknown)),
				severityCell(a.Severity),
				toned(orFallback(a.Status.Label(), FallbackUnknown), StatusTone(a.Status)),
				cell(timeOrFallback(a.FirstSeen)),
			},
		})
	}
	return t
}
