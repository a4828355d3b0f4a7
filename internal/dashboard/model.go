package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sentinel-lite/sentinel/internal/api"
	"github.com/sentinel-lite/sentinel/internal/logger"
	"github.com/sentinel-lite/sentinel/internal/notify"
	"github.com/sentinel-lite/sentinel/internal/refresh"
	"github.com/sentinel-lite/sentinel/internal/render"
	"github.com/sentinel-lite/sentinel/internal/ui"
)

// Mode is what currently receives key presses.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeForm
	ModeConfirm
	ModeStatus
)

// Options configures a Model. Zero values fall back to defaults.
type Options struct {
	Interval time.Duration  // counter refresh period
	TTL      time.Duration  // notification lifetime
	Initial  Section        // section shown first
	Logger   logger.Logger  // debug and error lines
	Version  string         // shown in the header
	APIURL   string         // shown in the header
	Now      func() time.Time
}

// sectionState is what the model knows about one section: the last applied
// render and load bookkeeping. Collections themselves are not kept.
type sectionState struct {
	table    render.Table
	loaded   bool
	loading  bool
	selected int
	loadedAt time.Time
}

// Model is the Bubble Tea model for the Sentinel dashboard. All state lives
// here and is only changed in Update.
type Model struct {
	ctx  context.Context
	api  API
	log  logger.Logger
	opts Options

	active   Section
	sections [sectionCount]sectionState
	seq      sequencer

	eventFilter api.EventFilter
	alertFilter api.AlertFilter

	notes *notify.Center

	mode    Mode
	form    *form
	confirm *confirmPrompt

	spinner  spinner.Model
	width    int
	height   int
	showHelp bool
	quitting bool
}

// NewModel creates a dashboard bound to client. Requests inherit ctx.
func NewModel(ctx context.Context, client API, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = refresh.DefaultInterval
	}
	if opts.TTL <= 0 {
		opts.TTL = notify.DefaultTTL
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewEnvLogger("[dashboard]")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if !opts.Initial.valid() {
		opts.Initial = SectionDashboard
	}
	if ctx == nil {
		ctx = context.Background()
	}

	m := Model{
		ctx:     ctx,
		api:     client,
		log:     opts.Logger,
		opts:    opts,
		active:  opts.Initial,
		notes:   notify.New(opts.TTL),
		spinner: ui.NewLoadingSpinner(),
		width:   100,
		height:  30,
	}
	for _, s := range Sections {
		m.sections[s].table = placeholderTable(s)
	}
	return m
}

// Init loads the dashboard counters immediately, loads the initial section
// when it isn't the dashboard, and arms the refresh timer.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		requestLoad(SectionDashboard),
		m.tickCmd(),
		m.spinner.Tick,
	}
	if m.active != SectionDashboard {
		cmds = append(cmds, requestLoad(m.active))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		_, cmd = m.HandleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case loadRequestMsg:
		cmd = m.load(msg.section)

	case tickMsg:
		// Counters refresh whatever section is showing; the timer always re-arms.
		m.notes.Prune(m.opts.Now())
		cmd = tea.Batch(m.load(SectionDashboard), m.tickCmd())

	case loadedMsg:
		cmd = m.applyLoad(msg)

	case actionDoneMsg:
		cmd = m.applyAction(msg)

	case dismissMsg:
		m.notes.Dismiss(msg.id)

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
	}

	return m, cmd
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// Activate shows s, hides every other section and starts exactly one load
// for s.
func (m *Model) Activate(s Section) tea.Cmd {
	if !s.valid() {
		return nil
	}
	m.active = s
	return m.load(s)
}

// Active returns the visible section.
func (m Model) Active() Section {
	return m.active
}

// Table returns the last applied render for s.
func (m Model) Table(s Section) render.Table {
	return m.sections[s].table
}

// Notifications returns the visible notifications, oldest first.
func (m Model) Notifications() []notify.Notification {
	return m.notes.Active()
}

// Mode returns what is receiving keys.
func (m Model) Mode() Mode {
	return m.mode
}

func requestLoad(s Section) tea.Cmd {
	return func() tea.Msg { return loadRequestMsg{section: s} }
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.opts.Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// load issues the next sequence number for s and returns the fetch command.
func (m *Model) load(s Section) tea.Cmd {
	seq := m.seq.next(s)
	m.sections[s].loading = true

	ctx, client, now := m.ctx, m.api, m.opts.Now
	events, alerts := m.eventFilter, m.alertFilter

	return func() tea.Msg {
		table, err := fetch(ctx, client, s, events, alerts)
		return loadedMsg{section: s, seq: seq, table: table, err: err, at: now()}
	}
}

// fetch calls the section's endpoint and renders the result.
func fetch(ctx context.Context, client API, s Section, events api.EventFilter, alerts api.AlertFilter) (render.Table, error) {
	switch s {
	case SectionDashboard:
		stats, err := client.Dashboard(ctx)
		if err != nil {
			return render.Table{}, err
		}
		return render.Dashboard(stats), nil
	case SectionHosts:
		hosts, err := client.Hosts(ctx)
		if err != nil {
			return render.Table{}, err
		}
		return render.Hosts(hosts), nil
	case SectionEvents:
		list, err := client.Events(ctx, events)
		if err != nil {
			return render.Table{}, err
		}
		return render.Events(list), nil
	case SectionRules:
		rules, err := client.Rules(ctx)
		if err != nil {
			return render.Table{}, err
		}
		return render.Rules(rules), nil
	case SectionAlerts:
		list, err := client.Alerts(ctx, alerts)
		if err != nil {
			return render.Table{}, err
		}
		return render.Alerts(list), nil
	}
	return render.Table{}, nil
}

// applyLoad applies a completion if it is the latest for its section.
// Failures leave the previous render in place and raise one notification.
func (m *Model) applyLoad(msg loadedMsg) tea.Cmd {
	if !m.seq.current(msg.section, msg.seq) {
		m.log.Debug("dropping stale %s load %d (latest %d)", msg.section, msg.seq, m.seq.latest(msg.section))
		return nil
	}

	st := &m.sections[msg.section]
	st.loading = false

	if msg.err != nil {
		if m.ctx.Err() != nil {
			return nil
		}
		m.log.Error("loading %s: %v", msg.section, msg.err)
		return m.notify("Error loading "+msg.section.loadNoun(), notify.Error)
	}

	st.table = msg.table
	st.loaded = true
	st.loadedAt = msg.at
	st.selected = clampSelection(st.selected, st.table)
	return nil
}

// notify pushes a notification and schedules its removal.
func (m *Model) notify(message string, kind notify.Kind) tea.Cmd {
	n := m.notes.Push(message, kind)
	id := n.ID
	return tea.Tick(m.notes.TTL, func(time.Time) tea.Msg {
		return dismissMsg{id: id}
	})
}

// placeholderTable is shown before a section's first successful load.
func placeholderTable(s Section) render.Table {
	switch s {
	case SectionHosts:
		return render.Table{Title: "Hosts", Columns: render.HostColumns}
	case SectionEvents:
		return render.Table{Title: "Events", Columns: render.EventColumns}
	case SectionRules:
		return render.Table{Title: "Rules", Columns: render.RuleColumns}
	case SectionAlerts:
		return render.Table{Title: "Alerts", Columns: render.AlertColumns}
	default:
		return render.Dashboard(nil)
	}
}

func clampSelection(i int, t render.Table) int {
	n := t.RecordCount()
	if n == 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	if i < 0 {
		return 0
	}
	return i
}

// selectedRow returns the record row under the cursor in the active section.
func (m Model) selectedRow() (render.Row, bool) {
	st := m.sections[m.active]
	if !st.loaded || st.table.IsPlaceholder() {
		return render.Row{}, false
	}
	i := st.selected
	if i < 0 || i >= len(st.table.Rows) || st.table.Rows[i].Placeholder {
		return render.Row{}, false
	}
	return st.table.Rows[i], true
}
