package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sentinel-lite/sentinel/internal/notify"
	"github.com/sentinel-lite/sentinel/internal/ui"
)

// Dashboard chrome reuses the CLI palette so both surfaces follow the
// terminal theme.
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorError).
			Bold(true)

	TabStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	FilterStyle = lipgloss.NewStyle().
			Foreground(ui.ColorInfo)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorSecondary).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary).
			Bold(true).
			MarginBottom(1)

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Width(12)

	FocusedLabelStyle = FieldLabelStyle.
				Foreground(ui.ColorInfo).
				Bold(true)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ui.ColorError)
)

// notificationStyle colors a notification by kind.
func notificationStyle(k notify.Kind) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)
	switch k {
	case notify.Success:
		return base.Foreground(ui.ColorSuccess)
	case notify.Error:
		return base.Foreground(ui.ColorError).Bold(true)
	default:
		return base.Foreground(ui.ColorInfo)
	}
}

// notificationSymbol prefixes a notification by kind.
func notificationSymbol(k notify.Kind) string {
	switch k {
	case notify.Success:
		return ui.SymbolSuccess
	case notify.Error:
		return ui.SymbolFail
	default:
		return ui.SymbolInfo
	}
}
