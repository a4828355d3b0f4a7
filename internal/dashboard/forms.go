package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formKind identifies what a submitted form does.
type formKind int

const (
	formAddHost formKind = iota
	formAddRule
	formFilterEvents
	formFilterAlerts
)

// formField is one labelled text input.
type formField struct {
	key      string
	label    string
	required bool
	input    textinput.Model
}

// form is a small modal of text inputs. tab/shift+tab (or up/down) move
// focus, enter on the last field submits, esc cancels.
type form struct {
	kind   formKind
	title  string
	fields []formField
	focus  int
	err    string
}

// formResult is what form.update reports back to the model.
type formResult int

const (
	formEditing formResult = iota
	formSubmitted
	formCanceled
)

func newField(key, label, placeholder, value string, required bool) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 32
	in.Prompt = ""
	in.Cursor.SetMode(cursor.CursorStatic)
	in.SetValue(value)
	return formField{key: key, label: label, required: required, input: in}
}

func newForm(kind formKind, title string, fields ...formField) *form {
	f := &form{kind: kind, title: title, fields: fields}
	f.setFocus(0)
	return f
}

func newHostForm() *form {
	return newForm(formAddHost, "Add Host",
		newField("hostname", "Hostname", "web-01", "", true),
		newField("platform", "Platform", "linux", "", true),
		newField("os_version", "OS Version", "optional", "", false),
	)
}

func newRuleForm() *form {
	return newForm(formAddRule, "Add Rule",
		newField("name", "Name", "Suspicious shell", "", true),
		newField("type", "Type", "process", "", true),
		newField("pattern", "Pattern", "nc -e", "", true),
	)
}

func newEventFilterForm(eventType, severity, hostID string) *form {
	return newForm(formFilterEvents, "Filter Events",
		newField("event_type", "Event Type", "any", eventType, false),
		newField("severity", "Severity", "any", severity, false),
		newField("host_id", "Host ID", "any", hostID, false),
	)
}

func newAlertFilterForm(severity, status string) *form {
	return newForm(formFilterAlerts, "Filter Alerts",
		newField("severity", "Severity", "any", severity, false),
		newField("status", "Status", "new, in_progress, resolved, false_positive", status, false),
	)
}

func (f *form) setFocus(i int) {
	if len(f.fields) == 0 {
		return
	}
	if i < 0 {
		i = len(f.fields) - 1
	}
	if i >= len(f.fields) {
		i = 0
	}
	for j := range f.fields {
		f.fields[j].input.Blur()
	}
	f.focus = i
	f.fields[i].input.Focus()
}

// update feeds a key to the form.
func (f *form) update(msg tea.KeyMsg) (formResult, tea.Cmd) {
	switch msg.String() {
	case KeyCollapse:
		return formCanceled, nil
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return formEditing, nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return formEditing, nil
	case "enter":
		if f.focus < len(f.fields)-1 {
			f.setFocus(f.focus + 1)
			return formEditing, nil
		}
		if missing := f.missing(); missing != "" {
			f.err = missing + " is required"
			return formEditing, nil
		}
		return formSubmitted, nil
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	f.err = ""
	return formEditing, cmd
}

// missing returns the label of the first empty required field.
func (f *form) missing() string {
	for _, fld := range f.fields {
		if fld.required && strings.TrimSpace(fld.input.Value()) == "" {
			return fld.label
		}
	}
	return ""
}

// values returns trimmed input by field key.
func (f *form) values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, fld := range f.fields {
		out[fld.key] = strings.TrimSpace(fld.input.Value())
	}
	return out
}

// confirmPrompt asks a y/n question before a destructive action.
type confirmPrompt struct {
	message string
	action  tea.Cmd
}
