// Package ui provides the terminal presentation layer shared by the
// dashboard and the one-shot CLI commands.
//
// # Table adapters
//
// Renderers in internal/render describe a table declaratively. Two adapters
// turn that description into text:
//
//	RenderTable      - styled, width-aware, tone-colored (TUI and terminals)
//	RenderPlainTable - no escape codes, no truncation (pipes, redirects)
//
// # Color Scheme
//
// Colors are ANSI codes so they follow the user's terminal theme:
//
//	ColorSuccess   (green)   - resolved, enabled, confirmations
//	ColorError     (red)     - high severity, failures
//	ColorWarning   (yellow)  - medium severity, new alerts
//	ColorInfo      (cyan)    - low severity, in-progress alerts
//	ColorCritical  (magenta) - critical severity
//	ColorMuted     (gray)    - placeholders, fallbacks, secondary text
//
// Use DisableColors() to switch to monochrome output (for --no-color).
//
// # Spinners
//
// Spinner animates a status line for CLI requests; NewLoadingSpinner returns
// the equivalent bubbles component for the dashboard.
package ui
