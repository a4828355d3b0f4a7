package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/sentinel-lite/sentinel/internal/render"
)

// Semantic colors use ANSI codes so they follow the terminal's theme.
const (
	ColorSuccess  lipgloss.Color = "2" // Green
	ColorError    lipgloss.Color = "1" // Red
	ColorWarning  lipgloss.Color = "3" // Yellow
	ColorInfo     lipgloss.Color = "6" // Cyan
	ColorCritical lipgloss.Color = "5" // Magenta
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// ToneColor maps a render tone to a palette color.
func ToneColor(t render.Tone) lipgloss.Color {
	switch t {
	case render.ToneMuted:
		return ColorMuted
	case render.ToneInfo:
		return ColorInfo
	case render.ToneSuccess:
		return ColorSuccess
	case render.ToneWarning:
		return ColorWarning
	case render.ToneDanger:
		return ColorError
	case render.ToneCritical:
		return ColorCritical
	default:
		return ColorPrimary
	}
}

// ToneStyle returns the cell style for a tone. Critical is also bold.
func ToneStyle(t render.Tone) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(ToneColor(t))
	if t == render.ToneCritical {
		s = s.Bold(true)
	}
	return s
}

// SuccessStyle colors confirmation output.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSuccess)
}

// ErrorStyle colors failures.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

// WarningStyle colors warnings.
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWarning)
}

// InfoStyle colors informational output.
func InfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorInfo)
}

// MutedStyle is for secondary text.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// DisableColors switches lipgloss to monochrome output (--no-color).
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ForceColors enables ANSI colors even when stdout isn't a terminal
// (output.color: always).
func ForceColors() {
	lipgloss.SetColorProfile(termenv.ANSI256)
}
