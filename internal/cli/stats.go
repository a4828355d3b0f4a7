package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sentinel-lite/sentinel/internal/api"
	"github.com/sentinel-lite/sentinel/internal/dashboard"
	"github.com/sentinel-lite/sentinel/internal/errors"
	"github.com/sentinel-lite/sentinel/internal/refresh"
	"github.com/sentinel-lite/sentinel/internal/render"
	"github.com/sentinel-lite/sentinel/internal/ui"
)

var (
	watchIntervalFlag string
	watchSectionFlag  string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the dashboard counters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := connect()
		if err != nil {
			return err
		}
		var data interface{}
		var table render.Table
		err = withSpinner("Loading dashboard", func() error {
			data, table, err = fetchSection(cmd.Context(), client, dashboard.SectionDashboard)
			return err
		})
		if err != nil {
			return err
		}
		return emit(cmd.OutOrStdout(), data, table)
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print a section repeatedly without the interactive dashboard",
	Long: `Print the dashboard counters (or another section) now and then on every
refresh interval until interrupted. Failed refreshes are reported and the
schedule continues.

Examples:
  sentinel watch
  sentinel watch --section alerts --interval 10s
  sentinel watch --json | jq .data`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(cmd, watchSectionFlag, watchIntervalFlag)
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the backend is reachable and healthy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return healthCommand(cmd)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd, watchCmd, healthCmd)

	watchCmd.Flags().StringVar(&watchIntervalFlag, "interval", "", "refresh interval (default refresh.interval)")
	watchCmd.Flags().StringVar(&watchSectionFlag, "section", "dashboard", "section to print: dashboard, hosts, events, rules, alerts")
}

// fetchSection loads one section and renders it. Events and alerts are
// unfiltered.
func fetchSection(ctx context.Context, client *api.Client, s dashboard.Section) (interface{}, render.Table, error) {
	switch s {
	case dashboard.SectionHosts:
		hosts, err := client.Hosts(ctx)
		return hosts, render.Hosts(hosts), err
	case dashboard.SectionEvents:
		events, err := client.Events(ctx, api.EventFilter{})
		return events, render.Events(events), err
	case dashboard.SectionRules:
		rules, err := client.Rules(ctx)
		return rules, render.Rules(rules), err
	case dashboard.SectionAlerts:
		alerts, err := client.Alerts(ctx, api.AlertFilter{})
		return alerts, render.Alerts(alerts), err
	default:
		stats, err := client.Dashboard(ctx)
		return stats, render.Dashboard(stats), err
	}
}

func parseSectionFlag(name string) (dashboard.Section, error) {
	s, ok := dashboard.ParseSection(name)
	if !ok {
		names := make([]string, len(dashboard.Sections))
		for i, sec := range dashboard.Sections {
			names[i] = sec.String()
		}
		return 0, errors.New(errors.ErrInput,
			fmt.Sprintf("'%s' isn't a section", name),
			"Use one of: "+strings.Join(names, ", "))
	}
	return s, nil
}

func watchCommand(cmd *cobra.Command, sectionName, intervalFlag string) error {
	section, err := parseSectionFlag(sectionName)
	if err != nil {
		return err
	}

	client, cfg, err := connect()
	if err != nil {
		return err
	}
	interval, err := ParseInterval(intervalFlag, cfg.Refresh.Interval)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	clearScreen := isTerminal(out) && !MachineMode()

	sched := refresh.New(interval, func(ctx context.Context) error {
		data, table, err := fetchSection(ctx, client, section)
		if err != nil {
			return err
		}
		if clearScreen {
			fmt.Fprint(out, "\033[H\033[2J")
		}
		return writeWatchFrame(out, section, data, table, time.Now())
	})
	sched.OnError = func(err error) {
		fmt.Fprintf(errOut, "%s Error loading %s: %v\n", ui.SymbolFail, section, err)
	}

	err = sched.Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func writeWatchFrame(w io.Writer, section dashboard.Section, data interface{}, table render.Table, at time.Time) error {
	if MachineMode() {
		return WriteJSONSuccess(w, map[string]interface{}{
			"section": section.String(),
			"at":      at.Format(time.RFC3339),
			"data":    data,
		})
	}
	fmt.Fprintf(w, "%s %s\n", ui.InfoStyle().Render(section.Title()), ui.MutedStyle().Render(at.Format("15:04:05")))
	printTable(w, table)
	fmt.Fprintln(w)
	return nil
}

func healthCommand(cmd *cobra.Command) error {
	client, cfg, err := connect()
	if err != nil {
		return err
	}

	health, err := client.Health(cmd.Context())
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if !health.Healthy() {
		if MachineMode() {
			if werr := WriteJSONError(w, ErrCodeUnhealthy,
				fmt.Sprintf("%s reports status '%s'", cfg.API.URL, health.Status),
				"Check the backend logs", health); werr != nil {
				return werr
			}
		} else {
			fmt.Fprintf(w, "%s %s reports status '%s'\n",
				ui.ErrorStyle().Render(ui.SymbolFail), cfg.API.URL, health.Status)
		}
		return errors.NewExitError(ExitAPI)
	}
	if MachineMode() {
		return WriteJSONSuccess(w, health)
	}
	fmt.Fprintf(w, "%s %s is %s\n",
		ui.SuccessStyle().Render(ui.SymbolSuccess), cfg.API.URL, health.Status)
	return nil
}
