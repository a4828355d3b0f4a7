package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sentinel-lite/sentinel/internal/api"
)

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeyRefresh     = "r"
	KeyNextSection = "tab"
	KeyPrevSection = "shift+tab"
	KeySelectPrev  = "up"
	KeySelectPrevK = "k"
	KeySelectNext  = "down"
	KeySelectNextJ = "j"
	KeySelectFirst = "home"
	KeySelectLast  = "end"
	KeyCollapse    = "esc"
	KeyToggleHelp  = "?"

	KeyAdd         = "a"
	KeyDelete      = "d"
	KeyToggle      = "t"
	KeySetStatus   = "s"
	KeyFilter      = "f"
	KeyClearFilter = "c"

	KeyConfirm    = "y"
	KeyConfirmAlt = "enter"
	KeyDeny       = "n"
)

// statusKeys maps the keys offered while picking an alert status.
var statusKeys = map[string]api.AlertStatus{
	"n": api.AlertNew,
	"i": api.AlertInProgress,
	"r": api.AlertResolved,
	"f": api.AlertFalsePositive,
}

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	if key == KeyQuitAlt {
		m.quitting = true
		return true, tea.Quit
	}

	// Modal modes swallow every key.
	switch m.mode {
	case ModeForm:
		return true, m.handleFormKey(msg)
	case ModeConfirm:
		return true, m.handleConfirmKey(key)
	case ModeStatus:
		return true, m.handleStatusKey(key)
	}

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key == KeyCollapse {
		m.showHelp = false
		return true, nil
	}

	if s, ok := ParseSection(key); ok && len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return true, m.Activate(s)
	}

	switch key {
	case KeyQuit:
		m.quitting = true
		return true, tea.Quit

	case KeyRefresh:
		return true, m.load(m.active)

	case KeyNextSection:
		return true, m.Activate(m.active.Next())

	case KeyPrevSection:
		return true, m.Activate(m.active.Prev())

	case KeySelectPrev, KeySelectPrevK:
		if st := &m.sections[m.active]; st.selected > 0 {
			st.selected--
		}
		return true, nil

	case KeySelectNext, KeySelectNextJ:
		st := &m.sections[m.active]
		if st.selected < st.table.RecordCount()-1 {
			st.selected++
		}
		return true, nil

	case KeySelectFirst:
		m.sections[m.active].selected = 0
		return true, nil

	case KeySelectLast:
		st := &m.sections[m.active]
		st.selected = clampSelection(st.table.RecordCount()-1, st.table)
		return true, nil
	}

	return m.handleSectionKey(key)
}

// handleSectionKey dispatches keys that only mean something in one section.
func (m *Model) handleSectionKey(key string) (bool, tea.Cmd) {
	switch m.active {
	case SectionHosts:
		switch key {
		case KeyAdd:
			m.openForm(newHostForm())
			return true, nil
		case KeyDelete:
			return true, m.askDeleteHost()
		}

	case SectionRules:
		switch key {
		case KeyAdd:
			m.openForm(newRuleForm())
			return true, nil
		case KeyToggle:
			return true, m.toggleSelectedRule()
		case KeyDelete:
			return true, m.askDeleteRule()
		}

	case SectionEvents:
		switch key {
		case KeyFilter:
			f := m.eventFilter
			m.openForm(newEventFilterForm(f.EventType, f.Severity, f.HostID.String()))
			return true, nil
		case KeyClearFilter:
			if m.eventFilter.IsZero() {
				return true, nil
			}
			m.eventFilter = api.EventFilter{}
			return true, tea.Batch(m.filterNotice("Event", true), m.load(SectionEvents))
		}

	case SectionAlerts:
		switch key {
		case KeySetStatus:
			if _, ok := m.selectedRow(); ok {
				m.mode = ModeStatus
			}
			return true, nil
		case KeyFilter:
			f := m.alertFilter
			m.openForm(newAlertFilterForm(f.Severity, string(f.Status)))
			return true, nil
		case KeyClearFilter:
			if m.alertFilter.IsZero() {
				return true, nil
			}
			m.alertFilter = api.AlertFilter{}
			return true, tea.Batch(m.filterNotice("Alert", true), m.load(SectionAlerts))
		}
	}
	return false, nil
}

func (m *Model) openForm(f *form) {
	m.form = f
	m.mode = ModeForm
	m.showHelp = false
}

func (m *Model) closeModal() {
	m.form = nil
	m.confirm = nil
	m.mode = ModeBrowse
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.form == nil {
		m.closeModal()
		return nil
	}
	result, cmd := m.form.update(msg)
	switch result {
	case formCanceled:
		m.closeModal()
		return nil
	case formSubmitted:
		f := m.form
		m.closeModal()
		return m.submitForm(f)
	}
	return cmd
}

func (m *Model) handleConfirmKey(key string) tea.Cmd {
	prompt := m.confirm
	switch key {
	case KeyConfirm, "Y", KeyConfirmAlt:
		m.closeModal()
		if prompt == nil {
			return nil
		}
		return prompt.action
	case KeyDeny, "N", KeyCollapse, KeyQuit:
		m.closeModal()
	}
	return nil
}

func (m *Model) handleStatusKey(key string) tea.Cmd {
	if key == KeyCollapse || key == KeyQuit {
		m.closeModal()
		return nil
	}
	status, ok := statusKeys[key]
	if !ok {
		return nil
	}
	m.closeModal()
	return m.setSelectedAlertStatus(status)
}
