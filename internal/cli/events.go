package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sentinel-lite/sentinel/internal/api"
	"github.com/sentinel-lite/sentinel/internal/render"
)

var (
	eventTypeFlag     string
	eventSeverityFlag string
	eventHostFlag     string
	eventPage         PageFlags
)

var eventsCmd = &cobra.Command{
	Use:     "events",
	Aliases: []string{"event"},
	Short:   "List security events",
	Long: `List events reported by monitored hosts, optionally filtered.

Examples:
  sentinel events
  sentinel events --type process --severity high
  sentinel events --host 3 --limit 20`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return eventsList(cmd)
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)

	eventsCmd.Flags().StringVar(&eventTypeFlag, "type", "", "only events of this type")
	eventsCmd.Flags().StringVar(&eventSeverityFlag, "severity", "", "only events with this severity")
	eventsCmd.Flags().StringVar(&eventHostFlag, "host", "", "only events from this host ID")
	AddPageFlags(eventsCmd, &eventPage)
}

func eventsFilter() (api.EventFilter, error) {
	if err := eventPage.Validate(); err != nil {
		return api.EventFilter{}, err
	}
	return api.EventFilter{
		EventType: strings.TrimSpace(eventTypeFlag),
		Severity:  strings.TrimSpace(eventSeverityFlag),
		HostID:    api.NewID(strings.TrimSpace(eventHostFlag)),
		Skip:      eventPage.Skip,
		Limit:     eventPage.Limit,
	}, nil
}

func eventsList(cmd *cobra.Command) error {
	filter, err := eventsFilter()
	if err != nil {
		return err
	}

	client, _, err := connect()
	if err != nil {
		return err
	}

	var events []api.Event
	err = withSpinner("Loading events", func() error {
		events, err = client.Events(cmd.Context(), filter)
		return err
	})
	if err != nil {
		return err
	}
	if events == nil {
		events = []api.Event{}
	}
	return emit(cmd.OutOrStdout(), events, render.Events(events))
}
