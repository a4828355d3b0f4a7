package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"regexp"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sentinel-lite/sentinel/internal/api"
	"github.com/sentinel-lite/sentinel/internal/config"
	"github.com/sentinel-lite/sentinel/internal/errors"
	"github.com/sentinel-lite/sentinel/internal/logger"
	"github.com/sentinel-lite/sentinel/internal/ui"
)

// Global flags
var (
	cfgFile    string
	apiURLFlag string
	noColor    bool
	verbose    bool
)

// Exit codes returned by Execute.
const (
	ExitOK     = 0
	ExitError  = 1
	ExitConfig = 2
	ExitAPI    = 3
)

var rootCmd = &cobra.Command{
	Use:   "sentinel",
	Short: "Terminal dashboard for the Sentinel One Lite API",
	Long: `sentinel is a terminal client for a Sentinel One Lite backend.

Run it without arguments to open the interactive dashboard, or use the
subcommands for one-shot, scriptable output.

Examples:
  sentinel
  sentinel dashboard --section alerts
  sentinel hosts
  sentinel alerts --status new --json
  sentinel rules toggle 4`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.EnableDebug(verbose)
		if noColor {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd, dashboardOptions{})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/sentinel/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "backend base URL, overrides api.url")
	rootCmd.PersistentFlags().BoolVar(&machineMode, "json", false, "output JSON for scripts")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log request details")
}

// Execute runs the root command and exits with a code that reflects the
// failure category.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		reportError(err)
		os.Exit(ExitCode(err))
	}
}

// reportError prints err for a human, or as a JSON envelope in --json mode.
func reportError(err error) {
	if _, ok := errors.GetExitCode(err); ok {
		return
	}
	if MachineMode() {
		_ = WriteJSONFromError(os.Stdout, err)
		return
	}
	if isUnknownCommandError(err) {
		fmt.Fprintf(os.Stderr, "%s Unknown command '%s'\n\n  Run 'sentinel --help' to see what's available.\n",
			ui.SymbolFail, extractUnknownCommand(err))
		return
	}
	fmt.Fprint(os.Stderr, formatError(err))
}

func formatError(err error) string {
	var structured *errors.Error
	if errors.As(err, &structured) {
		return structured.Error()
	}
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Sprintf("%s %s\n", ui.SymbolFail, reqErr.Error())
	}
	return fmt.Sprintf("%s %s\n", ui.SymbolFail, err.Error())
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if code, ok := errors.GetExitCode(err); ok {
		return code
	}
	if api.StatusCode(err) != 0 {
		return ExitAPI
	}
	switch {
	case errors.IsCode(err, errors.ErrConfig), errors.IsCode(err, errors.ErrInput):
		return ExitConfig
	case errors.IsCode(err, errors.ErrAPI):
		return ExitAPI
	}
	if isUnknownCommandError(err) {
		return ExitConfig
	}
	return ExitError
}

var (
	unknownCommandRe = regexp.MustCompile(`^unknown command "([^"]+)"`)
	unknownFlagRe    = regexp.MustCompile(`^unknown (shorthand )?flag`)
)

// isUnknownCommandError reports whether err is cobra's usage error for a bad
// command or flag.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return unknownCommandRe.MatchString(msg) || unknownFlagRe.MatchString(msg)
}

// extractUnknownCommand pulls the command name out of cobra's error.
func extractUnknownCommand(err error) string {
	m := unknownCommandRe.FindStringSubmatch(err.Error())
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// loadSettings resolves config from --config, SENTINEL_* and defaults, then
// applies command-line overrides and validates the result.
func loadSettings() (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, "", err
	}
	if apiURLFlag != "" {
		cfg.API.URL = apiURLFlag
	}
	if err := config.Validate(cfg); err != nil {
		return nil, path, err
	}
	applyColorMode(cfg.Output.Color)
	return cfg, path, nil
}

// applyColorMode honors output.color; --no-color always wins.
func applyColorMode(mode string) {
	switch {
	case noColor || mode == config.ColorNever:
		ui.DisableColors()
	case mode == config.ColorAlways:
		ui.ForceColors()
	}
}

// newClient builds the API client for cfg. Request logging is only shown
// with --verbose so it doesn't duplicate the error report.
func newClient(cfg *config.Config) *api.Client {
	log := logger.Noop()
	if verbose {
		log = logger.NewEnvLogger("[api]")
	}
	return newClientWithLogger(cfg, log)
}

func newClientWithLogger(cfg *config.Config, log logger.Logger) *api.Client {
	return api.NewClient(cfg.API.URL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(log),
	)
}

// connect loads settings and returns a client for them.
func connect() (*api.Client, *config.Config, error) {
	cfg, _, err := loadSettings()
	if err != nil {
		return nil, nil, err
	}
	return newClient(cfg), cfg, nil
}
