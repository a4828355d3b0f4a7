// Package doctor runs diagnostic checks against the local config and the
// backend, for the "sentinel doctor" command.
package doctor

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// CheckStatus represents the result status of a check.
type CheckStatus int

const (
	StatusPass CheckStatus = iota
	StatusWarn
	StatusFail
)

// String returns a human-readable status string.
func (s CheckStatus) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name in JSON output.
func (s CheckStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Check categories, in report order.
const (
	CategoryConfig   = "CONFIG"
	CategoryAPI      = "API"
	CategoryTerminal = "TERMINAL"
)

// Categories lists every category in the order reports show them.
var Categories = []string{CategoryConfig, CategoryAPI, CategoryTerminal}

// CheckResult contains the outcome of running a check.
type CheckResult struct {
	Name       string        `json:"name"`
	Status     CheckStatus   `json:"status"`
	Message    string        `json:"message"`
	Suggestion string        `json:"suggestion,omitempty"`
	Fixable    bool          `json:"fixable,omitempty"` // Whether --fix can address this
	Latency    time.Duration `json:"latency_ns,omitempty"`
}

// Check defines the interface for diagnostic checks.
type Check interface {
	// Name returns the check's identifier.
	Name() string

	// Category returns one of the Category constants.
	Category() string

	// Run executes the check and returns the result.
	Run(ctx context.Context) CheckResult

	// Fix attempts to address a failed or warned result.
	// Returns nil if fix was successful or not applicable.
	Fix(ctx context.Context) error
}

// Group is the results of one category, in check order.
type Group struct {
	Name    string        `json:"name"`
	Results []CheckResult `json:"results"`
}

// RunAll executes checks one after another.
func RunAll(ctx context.Context, checks []Check) []CheckResult {
	results := make([]CheckResult, len(checks))
	for i, check := range checks {
		results[i] = check.Run(ctx)
	}
	return results
}

// RunAllParallel executes all checks concurrently. Results keep the order of
// checks.
func RunAllParallel(ctx context.Context, checks []Check) []CheckResult {
	results := make([]CheckResult, len(checks))
	var wg sync.WaitGroup

	for i, check := range checks {
		wg.Add(1)
		go func(idx int, c Check) {
			defer wg.Done()
			results[idx] = c.Run(ctx)
		}(i, check)
	}

	wg.Wait()
	return results
}

// AttemptFixes runs Fix for every fixable issue and re-runs the check when the
// fix succeeds. results is updated in place and returned.
func AttemptFixes(ctx context.Context, checks []Check, results []CheckResult) []CheckResult {
	for i, result := range results {
		if !result.Fixable || result.Status == StatusPass {
			continue
		}
		if err := checks[i].Fix(ctx); err == nil {
			results[i] = checks[i].Run(ctx)
		}
	}
	return results
}

// GroupResults pairs checks with their results by category, following
// Categories. Unknown categories are appended in first-seen order.
func GroupResults(checks []Check, results []CheckResult) []Group {
	byCategory := make(map[string][]CheckResult)
	var extra []string
	for i, check := range checks {
		cat := check.Category()
		if _, seen := byCategory[cat]; !seen && !knownCategory(cat) {
			extra = append(extra, cat)
		}
		byCategory[cat] = append(byCategory[cat], results[i])
	}

	var groups []Group
	for _, cat := range append(append([]string{}, Categories...), extra...) {
		if rs, ok := byCategory[cat]; ok {
			groups = append(groups, Group{Name: cat, Results: rs})
		}
	}
	return groups
}

func knownCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// CountByStatus counts results by status.
func CountByStatus(results []CheckResult) map[CheckStatus]int {
	counts := make(map[CheckStatus]int)
	for _, r := range results {
		counts[r.Status]++
	}
	return counts
}

// HasFailures returns true if any result has a fail status.
func HasFailures(results []CheckResult) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

// HasIssues returns true if any result has a fail or warn status.
func HasIssues(results []CheckResult) bool {
	for _, r := range results {
		if r.Status == StatusFail || r.Status == StatusWarn {
			return true
		}
	}
	return false
}

// FixableCount returns the number of issues that can be fixed automatically.
func FixableCount(results []CheckResult) int {
	count := 0
	for _, r := range results {
		if r.Fixable && (r.Status == StatusFail || r.Status == StatusWarn) {
			count++
		}
	}
	return count
}

// Summary returns a summary string of the check results.
func Summary(results []CheckResult) string {
	counts := CountByStatus(results)
	warn := counts[StatusWarn]
	fail := counts[StatusFail]

	if fail == 0 && warn == 0 {
		return "Everything looks good"
	}

	total := warn + fail
	return fmt.Sprintf("%d issue%s found", total, pluralize(total))
}

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
