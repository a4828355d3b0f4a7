// Package dashboard implements the interactive Sentinel terminal dashboard.
//
// The dashboard shows one section at a time: counters, hosts, events, rules
// or alerts. It uses the Bubble Tea framework (Model-Update-View), so every
// state change happens in Update and no locking is needed.
//
// # Message Flow
//
//  1. Init requests the counters and arms tickMsg (default 30s)
//  2. Activating a section calls load(), which issues one sequence number and
//     one fetch command for that section
//  3. loadedMsg arrives; it is applied only if its sequence number is the
//     latest issued for the section, otherwise it is dropped
//  4. Failed loads raise an "Error loading ..." notification and keep the
//     previous render
//  5. Mutating actions report an actionDoneMsg; success reloads the owning
//     section and the counters
//
// Notifications are dismissed by a per-notification tea.Tick, so expiring
// one never touches another.
//
// # Keyboard Shortcuts
//
//	1-5, Tab    - Switch section
//	r           - Reload section
//	j/k, ↑/↓    - Move selection
//	a / d       - Add / delete (hosts, rules)
//	t           - Enable or disable the selected rule
//	s           - Set the selected alert's status
//	f / c       - Filter / clear filter (events, alerts)
//	?           - Toggle help overlay
//	q, Ctrl+C   - Quit
package dashboard
