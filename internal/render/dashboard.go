package render

import "github.com/sentinel-lite/sentinel/internal/api"

// DashboardColumns are the columns of the counters table.
var DashboardColumns = []Column{
	{Title: "Metric", Width: 20},
	{Title: "Value", Width: 10},
}

// Dashboard renders the summary counters. A nil snapshot (nothing loaded yet)
// shows every required counter as FallbackNA. Optional counters appear only
// when the backend sent them.
func Dashboard(stats *api.DashboardStats) Table {
	t := Table{Title: "Dashboard", Columns: DashboardColumns}

	counter := func(label string, v *int, tone Tone) Row {
		value := FallbackNA
		if v != nil {
			value = itoa(*v)
		}
		return Row{Cells: []Cell{cell(label), toned(value, tone)}}
	}

	if stats == nil {
		for _, label := range []string{"Total Hosts", "Total Events", "Total Rules", "Total Alerts"} {
			t.Rows = append(t.Rows, counter(label, nil, ToneMuted))
		}
		return t
	}

	t.Rows = []Row{
		counter("Total Hosts", &stats.TotalHosts, ToneDefault),
		counter("Total Events", &stats.TotalEvents, ToneDefault),
		counter("Total Rules", &stats.TotalRules, ToneDefault),
		counter("Total Alerts", &stats.TotalAlerts, alertTone(stats.TotalAlerts)),
	}
	if stats.RecentEvents != nil {
		t.Rows = append(t.Rows, counter("Recent Events (24h)", stats.RecentEvents, ToneInfo))
	}
	if stats.HighAlerts != nil {
		t.Rows = append(t.Rows, counter("High Severity Alerts", stats.HighAlerts, alertTone(*stats.HighAlerts)))
	}
	return t
}

func alertTone(n int) Tone {
	if n > 0 {
		return ToneWarning
	}
	return ToneSuccess
}
