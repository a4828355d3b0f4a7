package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sentinel-lite/sentinel/internal/dashboard"
	"github.com/sentinel-lite/sentinel/internal/errors"
	"github.com/sentinel-lite/sentinel/internal/logger"
)

// dashboardOptions holds the dashboard command's flags.
type dashboardOptions struct {
	Section  string
	Interval string
}

var dashboardOpts dashboardOptions

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"ui", "tui"},
	Short:   "Open the interactive dashboard (default)",
	Long: `Open the interactive terminal dashboard.

The counters refresh every refresh.interval whatever section is showing.
Press ? inside the dashboard for keyboard shortcuts.

Examples:
  sentinel dashboard
  sentinel dashboard --section alerts
  sentinel dashboard --interval 10s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd, dashboardOpts)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().StringVar(&dashboardOpts.Section, "section", "", "section to open: dashboard, hosts, events, rules, alerts")
	dashboardCmd.Flags().StringVar(&dashboardOpts.Interval, "interval", "", "counter refresh interval (default refresh.interval)")
}

// dashboardCommand runs the Bubble Tea dashboard until the user quits.
func dashboardCommand(cmd *cobra.Command, opts dashboardOptions) error {
	section := dashboard.SectionDashboard
	if opts.Section != "" {
		s, err := parseSectionFlag(opts.Section)
		if err != nil {
			return err
		}
		section = s
	}

	cfg, _, err := loadSettings()
	if err != nil {
		return err
	}
	interval, err := ParseInterval(opts.Interval, cfg.Refresh.Interval)
	if err != nil {
		return err
	}

	if MachineMode() || !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errors.New(errors.ErrInput,
			"The dashboard needs an interactive terminal",
			"Use 'sentinel stats', 'sentinel watch' or the list commands for plain output.")
	}

	// The alternate screen owns the terminal, so log lines go to a file.
	logFile, err := tea.LogToFile(cfg.LogFile, "sentinel")
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't open the log file "+cfg.LogFile,
			"Set log_file to a writable path.")
	}
	defer logFile.Close()

	// Request failures are kept in the log file even without --verbose.
	client := newClientWithLogger(cfg, logger.NewEnvLogger("[api]"))

	model := dashboard.NewModel(cmd.Context(), client, dashboard.Options{
		Interval: interval,
		TTL:      cfg.Notify.TTL,
		Initial:  section,
		Logger:   logger.NewEnvLogger("[dashboard]"),
		Version:  formatVersion(version),
		APIURL:   cfg.API.URL,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
		return nil
	}
	return err
}
