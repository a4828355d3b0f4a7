package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sentinel-lite/sentinel/internal/api"
	"github.com/sentinel-lite/sentinel/internal/errors"
	"github.com/sentinel-lite/sentinel/internal/render"
)

// HostAddOptions holds options for the hosts add command.
type HostAddOptions struct {
	Hostname  string
	Platform  string
	OSVersion string
}

var (
	hostAddOpts HostAddOptions
	hostsYes    bool
)

var hostsCmd = &cobra.Command{
	Use:     "hosts",
	Aliases: []string{"host"},
	Short:   "List and manage monitored hosts",
	Long: `List the hosts registered with the backend.

Examples:
  sentinel hosts
  sentinel hosts add web-01 --platform linux --os-version "Ubuntu 22.04"
  sentinel hosts delete 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return hostsList(cmd)
	},
}

var hostsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List hosts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return hostsList(cmd)
	},
}

var hostsAddCmd = &cobra.Command{
	Use:   "add <hostname>",
	Short: "Register a host",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := hostAddOpts
		opts.Hostname = args[0]
		return hostsAdd(cmd, opts)
	},
}

var hostsDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete a host",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return hostsDelete(cmd, args[0], hostsYes)
	},
}

func init() {
	rootCmd.AddCommand(hostsCmd)
	hostsCmd.AddCommand(hostsListCmd, hostsAddCmd, hostsDeleteCmd)

	hostsAddCmd.Flags().StringVar(&hostAddOpts.Platform, "platform", "", "host platform, e.g. linux")
	hostsAddCmd.Flags().StringVar(&hostAddOpts.OSVersion, "os-version", "", "operating system version")
	_ = hostsAddCmd.MarkFlagRequired("platform")

	hostsDeleteCmd.Flags().BoolVarP(&hostsYes, "yes", "y", false, "skip the confirmation prompt")
}

func hostsList(cmd *cobra.Command) error {
	client, _, err := connect()
	if err != nil {
		return err
	}

	var hosts []api.Host
	err = withSpinner("Loading hosts", func() error {
		hosts, err = client.Hosts(cmd.Context())
		return err
	})
	if err != nil {
		return err
	}
	if hosts == nil {
		hosts = []api.Host{}
	}
	return emit(cmd.OutOrStdout(), hosts, render.Hosts(hosts))
}

func hostsAdd(cmd *cobra.Command, opts HostAddOptions) error {
	if opts.Hostname == "" || opts.Platform == "" {
		return errors.New(errors.ErrInput,
			"Hostname and platform are required",
			"Try: sentinel hosts add web-01 --platform linux")
	}

	client, _, err := connect()
	if err != nil {
		return err
	}

	host, err := client.CreateHost(cmd.Context(), api.HostInput{
		Hostname:  opts.Hostname,
		Platform:  opts.Platform,
		OSVersion: opts.OSVersion,
	})
	if err != nil {
		return err
	}
	return printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Added host '%s' (ID %s)", host.Hostname, host.ID), host)
}

func hostsDelete(cmd *cobra.Command, arg string, yes bool) error {
	id, err := parseID("host", arg)
	if err != nil {
		return err
	}

	ok, err := confirmDestructive(fmt.Sprintf("Delete host %s?", id), yes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return nil
	}

	client, _, err := connect()
	if err != nil {
		return err
	}
	if err := client.DeleteHost(cmd.Context(), id); err != nil {
		return recordNotFound(err, "host", id)
	}
	return printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Deleted host %s", id), map[string]interface{}{"id": id})
}
