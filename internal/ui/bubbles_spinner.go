package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerFrames is the animation used inside Bubble Tea programs. It matches
// the CLI spinner so both surfaces look the same.
var SpinnerFrames = spinner.Spinner{
	Frames: spinnerFrames,
	FPS:    spinnerInterval,
}

// NewLoadingSpinner returns a bubbles spinner for "Loading..." indicators.
// The owner forwards spinner.TickMsg to its Update while a load is pending.
func NewLoadingSpinner() spinner.Model {
	sp := spinner.New()
	sp.Spinner = SpinnerFrames
	sp.Style = lipgloss.NewStyle().Foreground(ColorSecondary)
	return sp
}

// LoadingLine renders a spinner frame and label, e.g. "⣾ Loading hosts...".
func LoadingLine(sp spinner.Model, label string) string {
	return sp.View() + " " + label + "..."
}

// idleFrame is shown in place of a spinner when nothing is loading.
const idleFrame = " "

// LoadingIndicator renders the spinner while loading, or a blank of the same
// width when idle so surrounding layout doesn't shift.
func LoadingIndicator(sp spinner.Model, loading bool) string {
	if loading {
		return sp.View()
	}
	return idleFrame
}
