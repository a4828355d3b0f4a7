package dashboard

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/spinner"

	"github.com/sentinel-lite/sentinel/internal/api"
	"github.com/sentinel-lite/sentinel/internal/logger"
)

// fakeAPI records calls and serves canned data.
type fakeAPI struct {
	mu sync.Mutex

	stats  *api.DashboardStats
	hosts  []api.Host
	events []api.Event
	rules  []api.Rule
	alerts []api.Alert

	// hostsSeq, when set, is served in order by successive Hosts calls.
	hostsSeq [][]api.Host

	err error // returned by every call when set

	calls       map[string]int
	deleted     []api.ID
	created     []api.HostInput
	createdRule []api.RuleInput
	ruleUpdates map[api.ID]api.RuleUpdate
	alertSets   map[api.ID]api.AlertStatus
	eventFilter api.EventFilter
	alertFilter api.AlertFilter
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		stats:       &api.DashboardStats{TotalHosts: 2, TotalEvents: 10, TotalRules: 1, TotalAlerts: 1},
		calls:       make(map[string]int),
		ruleUpdates: make(map[api.ID]api.RuleUpdate),
		alertSets:   make(map[api.ID]api.AlertStatus),
	}
}

var errBackend = &api.RequestError{StatusCode: http.StatusInternalServerError, Method: "GET", Path: "/api"}

func (f *fakeAPI) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.err
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeAPI) Dashboard(context.Context) (*api.DashboardStats, error) {
	if err := f.record("Dashboard"); err != nil {
		return nil, err
	}
	return f.stats, nil
}

func (f *fakeAPI) Hosts(context.Context) ([]api.Host, error) {
	if err := f.record("Hosts"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if n := f.calls["Hosts"]; n <= len(f.hostsSeq) {
		return f.hostsSeq[n-1], nil
	}
	return f.hosts, nil
}

func (f *fakeAPI) CreateHost(_ context.Context, in api.HostInput) (*api.Host, error) {
	if err := f.record("CreateHost"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, in)
	return &api.Host{ID: api.NewID("99"), Hostname: in.Hostname, Platform: in.Platform}, nil
}

func (f *fakeAPI) DeleteHost(_ context.Context, id api.ID) error {
	if err := f.record("DeleteHost"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) Events(_ context.Context, filter api.EventFilter) ([]api.Event, error) {
	if err := f.record("Events"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.eventFilter = filter
	return f.events, nil
}

func (f *fakeAPI) Rules(context.Context) ([]api.Rule, error) {
	if err := f.record("Rules"); err != nil {
		return nil, err
	}
	return f.rules, nil
}

func (f *fakeAPI) CreateRule(_ context.Context, in api.RuleInput) (*api.Rule, error) {
	if err := f.record("CreateRule"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdRule = append(f.createdRule, in)
	return &api.Rule{ID: api.NewID("5"), Name: in.Name, Definition: in.Definition}, nil
}

func (f *fakeAPI) UpdateRule(_ context.Context, id api.ID, in api.RuleUpdate) (*api.Rule, error) {
	if err := f.record("UpdateRule"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ruleUpdates[id] = in
	return &api.Rule{ID: id}, nil
}

func (f *fakeAPI) DeleteRule(_ context.Context, id api.ID) error {
	if err := f.record("DeleteRule"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) Alerts(_ context.Context, filter api.AlertFilter) ([]api.Alert, error) {
	if err := f.record("Alerts"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alertFilter = filter
	return f.alerts, nil
}

func (f *fakeAPI) UpdateAlert(_ context.Context, id api.ID, in api.AlertUpdate) (*api.Alert, error) {
	if err := f.record("UpdateAlert"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alertSets[id] = in.Status
	return &api.Alert{ID: id, Status: in.Status}, nil
}

// newTestModel builds a model with timers short enough to run in tests.
func newTestModel(t *testing.T, client API, opts ...func(*Options)) Model {
	t.Helper()
	o := Options{
		Interval: time.Millisecond,
		TTL:      time.Millisecond,
		Logger:   logger.NewBufferLogger(),
	}
	for _, fn := range opts {
		fn(&o)
	}
	return NewModel(context.Background(), client, o)
}

// drain runs cmd and any batched commands, returning the messages they
// produce. Spinner frames are skipped.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, drain(c)...)
		}
		return out
	case spinner.TickMsg:
		return nil
	default:
		return []tea.Msg{msg}
	}
}

// step feeds msg to m and returns the updated model and drained messages.
func step(m Model, msg tea.Msg) (Model, []tea.Msg) {
	next, cmd := m.Update(msg)
	return next.(Model), drain(cmd)
}

// settle feeds msgs to m, then every message they produce, until only
// timer messages remain. Timer messages are returned unprocessed.
func settle(m Model, msgs ...tea.Msg) (Model, []tea.Msg) {
	var timers []tea.Msg
	for len(msgs) > 0 {
		msg := msgs[0]
		msgs = msgs[1:]
		switch msg.(type) {
		case tickMsg, dismissMsg:
			timers = append(timers, msg)
			continue
		}
		var out []tea.Msg
		m, out = step(m, msg)
		msgs = append(msgs, out...)
	}
	return m, timers
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pressKeys(m Model, keys ...string) (Model, []tea.Msg) {
	var all []tea.Msg
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = keyRunes(k)
		}
		var out []tea.Msg
		m, out = step(m, msg)
		all = append(all, out...)
	}
	return m, all
}

func msgsOfType[T any](msgs []tea.Msg) []T {
	var out []T
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
