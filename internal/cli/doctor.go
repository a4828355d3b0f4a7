package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sentinel-lite/sentinel/internal/config"
	"github.com/sentinel-lite/sentinel/internal/doctor"
	"github.com/sentinel-lite/sentinel/internal/errors"
	"github.com/sentinel-lite/sentinel/internal/ui"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose config, backend and terminal problems",
	Long: `Run diagnostic checks and report what needs attention.

Checks the config file and settings, that every endpoint the dashboard
reads answers, and that this terminal can host the dashboard.

Examples:
  sentinel doctor
  sentinel doctor --fix
  sentinel doctor --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand(cmd, doctorFix)
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "attempt automatic fixes where possible")
	rootCmd.AddCommand(doctorCmd)
}

// DoctorOutput is the --json payload for doctor.
type DoctorOutput struct {
	Categories []doctor.Group `json:"categories"`
	Summary    SummaryOutput  `json:"summary"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	Fixable  int  `json:"fixable"`
	AllClear bool `json:"all_clear"`
}

func doctorCommand(cmd *cobra.Command, fix bool) error {
	ctx := cmd.Context()
	checks := collectChecks(cmd.OutOrStdout())

	results := doctor.RunAllParallel(ctx, checks)
	if fix {
		results = doctor.AttemptFixes(ctx, checks, results)
	}

	groups := doctor.GroupResults(checks, results)
	w := cmd.OutOrStdout()
	if MachineMode() {
		counts := doctor.CountByStatus(results)
		if err := WriteJSONSuccess(w, DoctorOutput{
			Categories: groups,
			Summary: SummaryOutput{
				Pass:     counts[doctor.StatusPass],
				Warn:     counts[doctor.StatusWarn],
				Fail:     counts[doctor.StatusFail],
				Fixable:  doctor.FixableCount(results),
				AllClear: !doctor.HasIssues(results),
			},
		}); err != nil {
			return err
		}
	} else {
		writeDoctorReport(w, groups, results, fix)
	}

	if doctor.HasFailures(results) {
		return errors.NewExitError(ExitError)
	}
	return nil
}

// collectChecks gathers every check. Settings errors are reported by the
// config checks, so the API checks are only added when settings load.
func collectChecks(out io.Writer) []doctor.Check {
	logFile := config.DefaultLogFile()
	cfg, _, err := config.LoadOrDefault(cfgFile)
	if err == nil {
		if apiURLFlag != "" {
			cfg.API.URL = apiURLFlag
		}
		logFile = cfg.LogFile
	}

	target, _ := targetConfigPath()
	checks := doctor.NewConfigChecks(cfgFile, target, logFile)

	if err == nil && config.Validate(cfg) == nil {
		checks = append(checks, doctor.NewAPIChecks(newClient(cfg))...)
	}

	checks = append(checks, &doctor.TerminalCheck{
		IsTerminal: func() bool { return isTerminal(out) },
		Size: func() (int, int, error) {
			f, ok := out.(*os.File)
			if !ok {
				return 0, 0, fmt.Errorf("not a file")
			}
			return term.GetSize(int(f.Fd()))
		},
	})
	return checks
}

func writeDoctorReport(w io.Writer, groups []doctor.Group, results []doctor.CheckResult, fixed bool) {
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Sentinel Diagnostic Report"))
	fmt.Fprintln(w)

	for _, g := range groups {
		fmt.Fprintln(w, headerStyle.Render(g.Name))
		for _, r := range g.Results {
			writeCheckResult(w, r)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("━", 60))
	fmt.Fprintln(w)

	if !doctor.HasIssues(results) {
		fmt.Fprintf(w, "%s Everything looks good\n\n", ui.SuccessStyle().Render(ui.SymbolSuccess))
		return
	}

	fmt.Fprintf(w, "%s %s\n", ui.ErrorStyle().Render(ui.SymbolFail), doctor.Summary(results))
	if doctor.FixableCount(results) > 0 && !fixed {
		fmt.Fprintf(w, "\n  Run with %s to attempt automatic fixes where possible.\n", ui.MutedStyle().Render("--fix"))
	}
	fmt.Fprintln(w)
}

func writeCheckResult(w io.Writer, r doctor.CheckResult) {
	symbol, style := ui.SymbolComplete, ui.SuccessStyle()
	switch r.Status {
	case doctor.StatusWarn:
		style = ui.WarningStyle()
	case doctor.StatusFail:
		symbol, style = ui.SymbolFail, ui.ErrorStyle()
	}

	fmt.Fprintf(w, "  %s %s\n", style.Render(symbol), r.Message)
	if r.Suggestion != "" && r.Status != doctor.StatusPass {
		for _, line := range strings.Split(r.Suggestion, "\n") {
			fmt.Fprintf(w, "    %s\n", ui.MutedStyle().Render(line))
		}
	}
}
