package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sentinel-lite/sentinel/internal/ui"
)

// HelpBinding represents a single keyboard shortcut entry.
type HelpBinding struct {
	Key  string
	Desc string
}

// helpBindings defines all keyboard shortcuts shown in the help overlay.
var helpBindings = []HelpBinding{
	{Key: "1-5", Desc: "Show section"},
	{Key: "Tab / S-Tab", Desc: "Next / previous section"},
	{Key: "r", Desc: "Reload section"},
	{Key: "up / k", Desc: "Select previous row"},
	{Key: "down / j", Desc: "Select next row"},
	{Key: "Home / End", Desc: "First / last row"},
	{Key: "a", Desc: "Add host or rule"},
	{Key: "d", Desc: "Delete host or rule"},
	{Key: "t", Desc: "Enable / disable rule"},
	{Key: "s", Desc: "Set alert status"},
	{Key: "f / c", Desc: "Filter / clear filter"},
	{Key: "Esc", Desc: "Close"},
	{Key: "?", Desc: "Toggle this help"},
	{Key: "q / Ctrl+C", Desc: "Quit"},
}

var (
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true).
			Width(14)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)
)

// renderHelpOverlay renders a centered help box with keyboard shortcuts.
func (m Model) renderHelpOverlay() string {
	lines := []string{ModalTitleStyle.Render("Keyboard Shortcuts")}
	for _, binding := range helpBindings {
		lines = append(lines, helpKeyStyle.Render(binding.Key)+helpDescStyle.Render(binding.Desc))
	}
	lines = append(lines, "", LabelStyle.Render("Press ? to close"))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		ModalStyle.Render(strings.Join(lines, "\n")),
		lipgloss.WithWhitespaceChars(" "),
	)
}
