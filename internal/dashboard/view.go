package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sentinel-lite/sentinel/internal/api"
	"github.com/sentinel-lite/sentinel/internal/render"
	"github.com/sentinel-lite/sentinel/internal/ui"
	"github.com/sentinel-lite/sentinel/internal/util"
)

// chromeLines is the height taken by everything except table rows: header,
// tabs, table heading and divider, filter line, footer and spacing.
const chromeLines = 9

// render assembles the full frame. Modal overlays replace the body.
func (m Model) render() string {
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.mode {
	case ModeForm:
		b.WriteString(m.renderForm())
	case ModeConfirm:
		b.WriteString(m.renderConfirm())
	case ModeStatus:
		b.WriteString(m.renderStatusPicker())
	default:
		b.WriteString(m.renderSection())
	}

	if notes := m.renderNotifications(); notes != "" {
		b.WriteString("\n")
		b.WriteString(notes)
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the title line with the backend address and the
// loading indicator.
func (m Model) renderHeader() string {
	title := TitleStyle.Render("sentinel")
	if m.opts.Version != "" {
		title += " " + LabelStyle.Render(m.opts.Version)
	}
	if m.opts.APIURL != "" {
		title += LabelStyle.Render(" | " + m.opts.APIURL)
	}
	return title + " " + ui.LoadingIndicator(m.spinner, m.anyLoading())
}

func (m Model) anyLoading() bool {
	for _, st := range m.sections {
		if st.loading {
			return true
		}
	}
	return false
}

// renderTabs draws one tab per section; only the active one is highlighted.
func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(Sections))
	for i, s := range Sections {
		label := fmt.Sprintf("%d %s", i+1, s.Title())
		if s == m.active {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderSection draws the active section only.
func (m Model) renderSection() string {
	st := m.sections[m.active]
	if !st.loaded {
		return ui.LoadingLine(m.spinner, "Loading "+m.active.loadNoun())
	}

	var b strings.Builder
	if line := m.filterLine(); line != "" {
		b.WriteString(FilterStyle.Render(line))
		b.WriteString("\n")
	}

	table, selected := windowRows(st.table, st.selected, m.visibleRows())
	if m.active == SectionDashboard {
		selected = -1
	}
	b.WriteString(ui.RenderTable(table, ui.WithSelected(selected), ui.WithMaxWidth(m.width)))

	if !st.loadedAt.IsZero() {
		b.WriteString(LabelStyle.Render("updated " + st.loadedAt.Format("15:04:05")))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) visibleRows() int {
	n := m.height - chromeLines - m.notes.Len()
	if n < 3 {
		return 3
	}
	return n
}

// windowRows returns the slice of t that keeps selected in view and the
// selection's index within it.
func windowRows(t render.Table, selected, limit int) (render.Table, int) {
	if limit <= 0 || len(t.Rows) <= limit {
		return t, selected
	}
	start := 0
	if selected >= limit {
		start = selected - limit + 1
	}
	end := start + limit
	if end > len(t.Rows) {
		end = len(t.Rows)
	}
	out := t
	out.Rows = t.Rows[start:end]
	return out, selected - start
}

// filterLine describes active filters, or "" when none apply.
func (m Model) filterLine() string {
	var parts []string
	switch m.active {
	case SectionEvents:
		f := m.eventFilter
		if f.IsZero() {
			return ""
		}
		parts = appendFilter(parts, "type", f.EventType)
		parts = appendFilter(parts, "severity", f.Severity)
		parts = appendFilter(parts, "host", f.HostID.String())
	case SectionAlerts:
		f := m.alertFilter
		if f.IsZero() {
			return ""
		}
		parts = appendFilter(parts, "severity", f.Severity)
		parts = appendFilter(parts, "status", string(f.Status))
	}
	if len(parts) == 0 {
		return ""
	}
	return "Filter: " + strings.Join(parts, ", ") + " (c to clear)"
}

func appendFilter(parts []string, name, value string) []string {
	if value == "" {
		return parts
	}
	return append(parts, name+"="+value)
}

// renderNotifications stacks active notifications, oldest first.
func (m Model) renderNotifications() string {
	active := m.notes.Active()
	if len(active) == 0 {
		return ""
	}
	lines := make([]string, len(active))
	for i, n := range active {
		lines[i] = notificationStyle(n.Kind).Render(notificationSymbol(n.Kind) + " " + n.Message)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderForm() string {
	f := m.form
	if f == nil {
		return ""
	}
	lines := []string{ModalTitleStyle.Render(f.title)}
	for i, fld := range f.fields {
		label := FieldLabelStyle.Render(fld.label)
		if i == f.focus {
			label = FocusedLabelStyle.Render(fld.label)
		}
		lines = append(lines, label+" "+fld.input.View())
	}
	if f.err != "" {
		lines = append(lines, "", ErrorTextStyle.Render(f.err))
	}
	lines = append(lines, "", LabelStyle.Render("enter next/submit | tab move | esc cancel"))
	return ModalStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderConfirm() string {
	if m.confirm == nil {
		return ""
	}
	body := m.confirm.message + "\n\n" + LabelStyle.Render("y confirm | n cancel")
	return ModalStyle.Render(body)
}

func (m Model) renderStatusPicker() string {
	row, _ := m.selectedRow()
	lines := []string{ModalTitleStyle.Render("Set status for " + util.FirstNonEmpty(row.Label, row.Key.String()))}
	if current := api.AlertStatus(row.State); current != "" && !current.Known() {
		lines = append(lines, LabelStyle.Render("Current: "+string(current)+" (not assignable here)"))
	}
	for _, s := range api.AlertStatuses {
		key := string(s)[:1]
		line := FieldLabelStyle.Render(key) + s.Label()
		if string(s) == row.State {
			line += LabelStyle.Render(" (current)")
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", LabelStyle.Render("esc cancel"))
	return ModalStyle.Render(strings.Join(lines, "\n"))
}

// renderFooter renders the keyboard help footer for the active section.
func (m Model) renderFooter() string {
	hints := []string{"q quit", "1-5 section", "r refresh"}
	switch m.active {
	case SectionHosts:
		hints = append(hints, "a add", "d delete")
	case SectionRules:
		hints = append(hints, "a add", "t toggle", "d delete")
	case SectionEvents:
		hints = append(hints, "f filter")
	case SectionAlerts:
		hints = append(hints, "s status", "f filter")
	}
	hints = append(hints, "? help")
	return FooterStyle.Render(strings.Join(hints, " | "))
}
