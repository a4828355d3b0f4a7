package dashboard

import "strings"

// Section is one of the dashboard's mutually exclusive views.
type Section int

const (
	SectionDashboard Section = iota
	SectionHosts
	SectionEvents
	SectionRules
	SectionAlerts

	sectionCount
)

// Sections lists every section in tab order.
var Sections = []Section{SectionDashboard, SectionHosts, SectionEvents, SectionRules, SectionAlerts}

var sectionNames = [sectionCount]string{
	SectionDashboard: "dashboard",
	SectionHosts:     "hosts",
	SectionEvents:    "events",
	SectionRules:     "rules",
	SectionAlerts:    "alerts",
}

var sectionTitles = [sectionCount]string{
	SectionDashboard: "Dashboard",
	SectionHosts:     "Hosts",
	SectionEvents:    "Events",
	SectionRules:     "Rules",
	SectionAlerts:    "Alerts",
}

// String returns the lowercase section name used on the command line.
func (s Section) String() string {
	if s.valid() {
		return sectionNames[s]
	}
	return "unknown"
}

// Title is the tab label.
func (s Section) Title() string {
	if s.valid() {
		return sectionTitles[s]
	}
	return "Unknown"
}

// loadNoun is the object of "Error loading ...".
func (s Section) loadNoun() string {
	if s == SectionDashboard {
		return "dashboard"
	}
	return s.String()
}

// Next cycles forward, wrapping around.
func (s Section) Next() Section {
	return Section((int(s) + 1) % int(sectionCount))
}

// Prev cycles backward, wrapping around.
func (s Section) Prev() Section {
	return Section((int(s) + int(sectionCount) - 1) % int(sectionCount))
}

func (s Section) valid() bool {
	return s >= 0 && s < sectionCount
}

// ParseSection accepts a section name (case-insensitive) or its 1-based
// position.
func ParseSection(name string) (Section, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range sectionNames {
		if name == n {
			return Section(i), true
		}
	}
	if len(name) == 1 && name[0] >= '1' && name[0] < '1'+byte(sectionCount) {
		return Section(name[0] - '1'), true
	}
	return SectionDashboard, false
}
