package doctor

import (
	"context"
	"fmt"
)

// MinDashboardWidth is the narrowest terminal the dashboard lays out cleanly.
const MinDashboardWidth = 80

// TerminalCheck reports whether the dashboard can run here.
type TerminalCheck struct {
	IsTerminal func() bool
	Size       func() (width, height int, err error)
}

func (c *TerminalCheck) Name() string     { return "terminal" }
func (c *TerminalCheck) Category() string { return CategoryTerminal }

func (c *TerminalCheck) Run(context.Context) CheckResult {
	if c.IsTerminal == nil || !c.IsTerminal() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Not an interactive terminal, the dashboard won't start",
			Suggestion: "Use 'sentinel watch' or the list commands when piping output",
		}
	}

	if c.Size == nil {
		return CheckResult{Name: c.Name(), Status: StatusPass, Message: "Interactive terminal"}
	}
	w, h, err := c.Size()
	if err != nil {
		return CheckResult{Name: c.Name(), Status: StatusPass, Message: "Interactive terminal (size unknown)"}
	}
	if w < MinDashboardWidth {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Terminal is %d columns wide", w),
			Suggestion: fmt.Sprintf("Widen it to at least %d columns; tables are truncated below that", MinDashboardWidth),
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Interactive terminal (%dx%d)", w, h),
	}
}

func (c *TerminalCheck) Fix(context.Context) error {
	return nil
}
