package dashboard

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sentinel-lite/sentinel/internal/api"
	"github.com/sentinel-lite/sentinel/internal/notify"
	"github.com/sentinel-lite/sentinel/internal/render"
)

// action runs a mutating call off the update loop and reports back with an
// actionDoneMsg owned by section.
func (m *Model) action(section Section, success, failure string, call func(ctx context.Context, client API) error) tea.Cmd {
	ctx, client := m.ctx, m.api
	return func() tea.Msg {
		err := call(ctx, client)
		return actionDoneMsg{section: section, success: success, failure: failure, err: err}
	}
}

// applyAction notifies the outcome. Success reloads the owning section and
// the dashboard counters; failure changes nothing else.
func (m *Model) applyAction(msg actionDoneMsg) tea.Cmd {
	if msg.err != nil {
		m.log.Error("%s: %v", msg.failure, msg.err)
		return m.notify(msg.failure, notify.Error)
	}

	cmds := []tea.Cmd{m.notify(msg.success, notify.Success)}
	if msg.section != SectionDashboard {
		cmds = append(cmds, m.load(msg.section))
	}
	cmds = append(cmds, m.load(SectionDashboard))
	return tea.Batch(cmds...)
}

func (m *Model) submitForm(f *form) tea.Cmd {
	v := f.values()
	switch f.kind {
	case formAddHost:
		in := api.HostInput{Hostname: v["hostname"], Platform: v["platform"], OSVersion: v["os_version"]}
		return m.action(SectionHosts, "Host added", "Error adding host", func(ctx context.Context, c API) error {
			_, err := c.CreateHost(ctx, in)
			return err
		})

	case formAddRule:
		in := api.RuleInput{
			Name:       v["name"],
			Definition: api.RuleDefinition{Type: v["type"], Pattern: v["pattern"]},
		}
		return m.action(SectionRules, "Rule added", "Error adding rule", func(ctx context.Context, c API) error {
			_, err := c.CreateRule(ctx, in)
			return err
		})

	case formFilterEvents:
		m.eventFilter = api.EventFilter{
			EventType: v["event_type"],
			Severity:  v["severity"],
			HostID:    api.NewID(v["host_id"]),
		}
		return tea.Batch(m.filterNotice("Event", m.eventFilter.IsZero()), m.load(SectionEvents))

	case formFilterAlerts:
		status := api.AlertStatus(v["status"])
		if parsed, ok := api.ParseAlertStatus(v["status"]); ok {
			status = parsed
		}
		m.alertFilter = api.AlertFilter{Severity: v["severity"], Status: status}
		return tea.Batch(m.filterNotice("Alert", m.alertFilter.IsZero()), m.load(SectionAlerts))
	}
	return nil
}

// filterNotice announces a filter change. An empty submission clears it.
func (m *Model) filterNotice(kind string, cleared bool) tea.Cmd {
	if cleared {
		return m.notify(kind+" filter cleared", notify.Info)
	}
	return m.notify(kind+" filter applied", notify.Info)
}

func (m *Model) askDeleteHost() tea.Cmd {
	row, ok := m.selectedRow()
	if !ok {
		return nil
	}
	id := row.Key
	m.ask(fmt.Sprintf("Delete host %s?", row.Label),
		m.action(SectionHosts, "Host deleted", "Error deleting host", func(ctx context.Context, c API) error {
			return c.DeleteHost(ctx, id)
		}))
	return nil
}

func (m *Model) askDeleteRule() tea.Cmd {
	row, ok := m.selectedRow()
	if !ok {
		return nil
	}
	id := row.Key
	m.ask(fmt.Sprintf("Delete rule %s?", row.Label),
		m.action(SectionRules, "Rule deleted", "Error deleting rule", func(ctx context.Context, c API) error {
			return c.DeleteRule(ctx, id)
		}))
	return nil
}

func (m *Model) ask(message string, action tea.Cmd) {
	m.confirm = &confirmPrompt{message: message, action: action}
	m.mode = ModeConfirm
	m.showHelp = false
}

// toggleSelectedRule sends the opposite of the enabled state last rendered
// for the selected rule.
func (m *Model) toggleSelectedRule() tea.Cmd {
	row, ok := m.selectedRow()
	if !ok {
		return nil
	}
	id := row.Key
	enable := row.State != render.StateEnabled
	success := "Rule disabled"
	if enable {
		success = "Rule enabled"
	}
	return m.action(SectionRules, success, "Error updating rule", func(ctx context.Context, c API) error {
		_, err := c.UpdateRule(ctx, id, api.RuleUpdate{Enabled: api.Bool(enable)})
		return err
	})
}

func (m *Model) setSelectedAlertStatus(status api.AlertStatus) tea.Cmd {
	row, ok := m.selectedRow()
	if !ok {
		return nil
	}
	id := row.Key
	return m.action(SectionAlerts, "Alert status updated", "Error updating alert", func(ctx context.Context, c API) error {
		_, err := c.UpdateAlert(ctx, id, api.AlertUpdate{Status: status})
		return err
	})
}
