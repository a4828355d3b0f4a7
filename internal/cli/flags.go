package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sentinel-lite/sentinel/internal/api"
	"github.com/sentinel-lite/sentinel/internal/errors"
)

// PageFlags holds the --skip and --limit flags used by list commands.
type PageFlags struct {
	Skip  int
	Limit int
}

// AddPageFlags registers --skip and --limit on a command.
func AddPageFlags(cmd *cobra.Command, flags *PageFlags) {
	cmd.Flags().IntVar(&flags.Skip, "skip", 0, "number of records to skip")
	cmd.Flags().IntVar(&flags.Limit, "limit", 0, "maximum number of records (server default when 0)")
}

// Validate rejects negative paging values.
func (p PageFlags) Validate() error {
	if p.Skip < 0 || p.Limit < 0 {
		return errors.New(errors.ErrInput,
			"--skip and --limit can't be negative",
			"Use 0 for the server default.")
	}
	return nil
}

// ParseInterval parses a refresh interval flag. An empty flag returns
// fallback.
func ParseInterval(flag string, fallback time.Duration) (time.Duration, error) {
	if flag == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrInput,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 10s, 1m, or 30s.")
	}
	if d < time.Second {
		return 0, errors.New(errors.ErrInput,
			fmt.Sprintf("Interval %s is too short", d),
			"Use at least 1s.")
	}
	return d, nil
}

// parseID turns a positional argument into an API ID.
func parseID(kind, arg string) (api.ID, error) {
	id := api.NewID(strings.TrimSpace(arg))
	if id.IsZero() {
		return api.ID{}, errors.New(errors.ErrInput,
			fmt.Sprintf("A %s ID is required", kind),
			fmt.Sprintf("Find it with 'sentinel %ss'.", kind))
	}
	return id, nil
}

// recordNotFound names the record when the backend answers 404. Other errors
// are returned unchanged.
func recordNotFound(err error, kind string, id api.ID) error {
	if !api.IsNotFound(err) {
		return err
	}
	title := strings.ToUpper(kind[:1]) + kind[1:]
	return errors.WrapWithCode(err, errors.ErrInput,
		fmt.Sprintf("%s %s not found", title, id),
		fmt.Sprintf("List them with 'sentinel %ss'.", kind))
}
