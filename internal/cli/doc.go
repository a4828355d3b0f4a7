// Package cli implements the sentinel command-line interface.
//
// Running "sentinel" with no subcommand opens the interactive dashboard
// (see package dashboard). Every other command is a one-shot call against
// the backend that prints a table, or a JSON envelope with --json.
//
// # Command Structure
//
//	sentinel [dashboard]             - Interactive dashboard
//	sentinel stats                   - Dashboard counters
//	sentinel watch                   - Reprint a section every interval
//	sentinel health                  - Backend health check
//	sentinel hosts [add|delete]      - Monitored hosts
//	sentinel events                  - Security events, filterable
//	sentinel rules [add|toggle|delete] - Detection rules
//	sentinel alerts [set-status]     - Alerts, filterable
//	sentinel config [init|show|set|path]
//	sentinel doctor [--fix]          - Diagnose config, backend and terminal
//	sentinel completion <shell>
//	sentinel version
//
// # Settings
//
// loadSettings resolves the config file (--config, $SENTINEL_CONFIG, then
// ~/.config/sentinel/config.yaml), applies SENTINEL_* environment overrides
// and finally --api-url. A missing default file is not an error.
//
// # Output and Errors
//
// Tables are styled on a terminal and plain when piped. With --json every
// command writes a JSONEnvelope, and failures carry a machine-readable code.
// Execute maps failures to exit codes: 2 for config and input problems,
// 3 for backend failures, 1 otherwise.
//
// # Prompts
//
// Deletes ask for confirmation and alerts set-status asks for a status when
// one isn't given. Both use huh forms and refuse to prompt without a
// terminal.
package cli
