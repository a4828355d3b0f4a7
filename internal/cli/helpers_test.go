package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sentinel-lite/sentinel/internal/api"
)

// fakeBackend serves the /api routes from in-memory records.
type fakeBackend struct {
	mu sync.Mutex

	health   api.Health
	stats    api.DashboardStats
	hosts    []api.Host
	rules    []api.Rule
	alerts   []api.Alert
	events   []api.Event
	failures map[string]int // "METHOD /path" -> status
	requests []recordedRequest
}

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   string
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()
	fb := &fakeBackend{
		health:   api.Health{Status: "healthy", Service: "sentinel"},
		stats:    api.DashboardStats{TotalHosts: 2, TotalEvents: 10, TotalRules: 1, TotalAlerts: 3},
		failures: map[string]int{},
	}
	srv := httptest.NewServer(http.HandlerFunc(fb.serve))
	t.Cleanup(srv.Close)
	return fb, srv
}

func (fb *fakeBackend) fail(method, path string, status int) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.failures[method+" "+path] = status
}

// update changes records while the server may be handling requests.
func (fb *fakeBackend) update(fn func()) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fn()
}

func (fb *fakeBackend) recorded(method, path string) []recordedRequest {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	var out []recordedRequest
	for _, r := range fb.requests {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func (fb *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	fb.mu.Lock()
	defer fb.mu.Unlock()

	fb.requests = append(fb.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Body:   string(body),
	})

	if status, ok := fb.failures[r.Method+" "+r.URL.Path]; ok {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"detail":"backend said no"}`))
		return
	}

	route := r.Method + " " + r.URL.Path
	id := api.NewID(r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:])

	switch {
	case route == "GET "+api.PathHealth:
		writeJSON(w, fb.health)
	case route == "GET "+api.PathDashboard:
		writeJSON(w, fb.stats)
	case route == "GET "+api.PathHosts:
		writeJSON(w, nonNil(fb.hosts))
	case route == "POST "+api.PathHosts:
		var in api.HostInput
		_ = json.Unmarshal(body, &in)
		writeJSON(w, api.Host{ID: api.NewID("42"), Hostname: in.Hostname, Platform: in.Platform})
	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, api.PathHosts+"/"):
		w.WriteHeader(http.StatusNoContent)
	case route == "GET "+api.PathRules:
		writeJSON(w, nonNil(fb.rules))
	case route == "POST "+api.PathRules:
		var in api.RuleInput
		_ = json.Unmarshal(body, &in)
		writeJSON(w, api.Rule{ID: api.NewID("7"), Name: in.Name, Enabled: true, Definition: in.Definition})
	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, api.PathRules+"/"):
		var in api.RuleUpdate
		_ = json.Unmarshal(body, &in)
		rule := api.Rule{ID: id}
		if in.Enabled != nil {
			rule.Enabled = *in.Enabled
		}
		writeJSON(w, rule)
	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, api.PathRules+"/"):
		w.WriteHeader(http.StatusNoContent)
	case route == "GET "+api.PathEvents:
		writeJSON(w, nonNil(fb.events))
	case route == "GET "+api.PathAlerts:
		writeJSON(w, nonNil(fb.alerts))
	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, api.PathAlerts+"/"):
		var in api.AlertUpdate
		_ = json.Unmarshal(body, &in)
		writeJSON(w, api.Alert{ID: id, Status: in.Status})
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not Found"}`))
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// syncBuffer is a bytes.Buffer safe to read while a command writes to it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// isolateCLI points config discovery at an empty home directory and makes
// stdin look non-interactive. Prompt hooks are restored afterwards.
func isolateCLI(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SENTINEL_CONFIG", "")
	t.Setenv("SENTINEL_API_URL", "")
	t.Setenv("SENTINEL_OUTPUT_COLOR", "")

	oldTTY, oldConfirm, oldSelect := stdinIsTerminal, confirmFunc, selectStatusFunc
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() {
		stdinIsTerminal, confirmFunc, selectStatusFunc = oldTTY, oldConfirm, oldSelect
		resetFlags(rootCmd)
	})
}

// resetFlags returns every flag in the command tree to its default so state
// from one invocation doesn't leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runCLIWithContext(t, context.Background(), new(syncBuffer), new(syncBuffer), args...)
}

func runCLIWithContext(t *testing.T, ctx context.Context, out, errOut *syncBuffer, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

// decodeEnvelope parses a --json response.
func decodeEnvelope(t *testing.T, s string) (JSONEnvelope, map[string]interface{}) {
	t.Helper()
	var env JSONEnvelope
	if err := json.Unmarshal([]byte(s), &env); err != nil {
		t.Fatalf("output is not a JSON envelope: %v\n%s", err, s)
	}
	var raw map[string]interface{}
	_ = json.Unmarshal([]byte(s), &raw)
	return env, raw
}
