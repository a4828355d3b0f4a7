package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo contains information to display in the header.
type HeaderInfo struct {
	Version string // e.g. "v0.3.0"
	Tagline string // optional
	APIURL  string // optional backend address
}

// HeaderWidth is the default width of the header divider.
const HeaderWidth = 50

// RenderHeader renders the branded title block printed by `sentinel version`.
// The dashboard draws its own single-line header.
func RenderHeader(info HeaderInfo) string {
	titleStyle := lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	versionStyle := lipgloss.NewStyle().Foreground(ColorInfo)

	var b strings.Builder
	b.WriteString(titleStyle.Render("sentinel"))
	if info.Version != "" {
		b.WriteString(" ")
		b.WriteString(versionStyle.Render(info.Version))
	}
	b.WriteString("\n")

	if info.Tagline != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(ColorSecondary).Render(info.Tagline))
		b.WriteString("\n")
	}
	if info.APIURL != "" {
		b.WriteString(MutedStyle().Render(info.APIURL))
		b.WriteString("\n")
	}

	b.WriteString(MutedStyle().Render(strings.Repeat("━", HeaderWidth)))
	b.WriteString("\n")
	return b.String()
}
