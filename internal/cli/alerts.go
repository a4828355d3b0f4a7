package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sentinel-lite/sentinel/internal/api"
	"github.com/sentinel-lite/sentinel/internal/errors"
	"github.com/sentinel-lite/sentinel/internal/render"
)

var (
	alertSeverityFlag string
	alertStatusFlag   string
	alertPage         PageFlags
)

var alertsCmd = &cobra.Command{
	Use:     "alerts",
	Aliases: []string{"alert"},
	Short:   "List alerts and set their status",
	Long: `List alerts raised by the backend, optionally filtered.

Statuses: new, in_progress, resolved, false_positive.

Examples:
  sentinel alerts
  sentinel alerts --status new --severity high
  sentinel alerts set-status 12 resolved
  sentinel alerts set-status 12`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return alertsList(cmd)
	},
}

var alertsSetStatusCmd = &cobra.Command{
	Use:   "set-status <id> [status]",
	Short: "Change an alert's status (prompts when status is omitted)",
	Args:  cobra.RangeArgs(1, 2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) != 1 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		out := make([]string, len(api.AlertStatuses))
		for i, s := range api.AlertStatuses {
			out[i] = string(s)
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		status := ""
		if len(args) == 2 {
			status = args[1]
		}
		return alertsSetStatus(cmd, args[0], status)
	},
}

func init() {
	rootCmd.AddCommand(alertsCmd)
	alertsCmd.AddCommand(alertsSetStatusCmd)

	alertsCmd.Flags().StringVar(&alertSeverityFlag, "severity", "", "only alerts with this severity")
	alertsCmd.Flags().StringVar(&alertStatusFlag, "status", "", "only alerts with this status")
	AddPageFlags(alertsCmd, &alertPage)
}

// parseStatus accepts wire values and their short aliases.
func parseStatus(s string) (api.AlertStatus, error) {
	status, ok := api.ParseAlertStatus(strings.ToLower(strings.TrimSpace(s)))
	if !ok {
		names := make([]string, len(api.AlertStatuses))
		for i, st := range api.AlertStatuses {
			names[i] = string(st)
		}
		return "", errors.New(errors.ErrInput,
			fmt.Sprintf("'%s' isn't an alert status", s),
			"Use one of: "+strings.Join(names, ", "))
	}
	return status, nil
}

func alertsFilter() (api.AlertFilter, error) {
	if err := alertPage.Validate(); err != nil {
		return api.AlertFilter{}, err
	}
	f := api.AlertFilter{
		Severity: strings.TrimSpace(alertSeverityFlag),
		Skip:     alertPage.Skip,
		Limit:    alertPage.Limit,
	}
	if alertStatusFlag != "" {
		status, err := parseStatus(alertStatusFlag)
		if err != nil {
			return api.AlertFilter{}, err
		}
		f.Status = status
	}
	return f, nil
}

func alertsList(cmd *cobra.Command) error {
	filter, err := alertsFilter()
	if err != nil {
		return err
	}

	client, _, err := connect()
	if err != nil {
		return err
	}

	var alerts []api.Alert
	err = withSpinner("Loading alerts", func() error {
		alerts, err = client.Alerts(cmd.Context(), filter)
		return err
	})
	if err != nil {
		return err
	}
	if alerts == nil {
		alerts = []api.Alert{}
	}
	return emit(cmd.OutOrStdout(), alerts, render.Alerts(alerts))
}

func alertsSetStatus(cmd *cobra.Command, arg, statusArg string) error {
	id, err := parseID("alert", arg)
	if err != nil {
		return err
	}

	client, _, err := connect()
	if err != nil {
		return err
	}

	var status api.AlertStatus
	if statusArg != "" {
		if status, err = parseStatus(statusArg); err != nil {
			return err
		}
	} else {
		if MachineMode() || !stdinIsTerminal() {
			return errors.New(errors.ErrInput,
				"An alert status is required",
				"Try: sentinel alerts set-status "+id.String()+" resolved")
		}
		if status, err = selectStatusFunc(currentStatus(cmd, client, id)); err != nil {
			return err
		}
	}

	alert, err := client.UpdateAlert(cmd.Context(), id, api.AlertUpdate{Status: status})
	if err != nil {
		return recordNotFound(err, "alert", id)
	}
	return printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Alert %s is now %s", id, status.Label()), alert)
}

// currentStatus looks up the alert's status for the picker's default. It
// returns "" when the alert can't be found.
func currentStatus(cmd *cobra.Command, client *api.Client, id api.ID) api.AlertStatus {
	alerts, err := client.Alerts(cmd.Context(), api.AlertFilter{})
	if err != nil {
		return ""
	}
	for _, a := range alerts {
		if a.ID.Same(id) {
			return a.Status
		}
	}
	return ""
}
