package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sentinel-lite/sentinel/internal/config"
	"github.com/sentinel-lite/sentinel/internal/ui"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create, inspect and edit the config file",
	Long: `Manage sentinel's config file (~/.config/sentinel/config.yaml).

Every key can also be set with a SENTINEL_ environment variable, e.g.
SENTINEL_API_URL or SENTINEL_REFRESH_INTERVAL.

Examples:
  sentinel config init
  sentinel config show
  sentinel config set api.url http://10.0.0.5:8000`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configInit(cmd, configInitForce)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShow(cmd)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one config key",
	Args:  cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return config.Keys, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return configSet(cmd, args[0], args[1])
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where the config file is read from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := targetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd, configSetCmd, configPathCmd)
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
}

// targetConfigPath is the file init and set write to: --config, then
// $SENTINEL_CONFIG, then the default location.
func targetConfigPath() (string, error) {
	if cfgFile != "" {
		return config.ExpandTilde(cfgFile), nil
	}
	if env := os.Getenv(config.PathEnv); env != "" {
		return config.ExpandTilde(env), nil
	}
	return config.DefaultPath()
}

func configInit(cmd *cobra.Command, force bool) error {
	path, err := targetConfigPath()
	if err != nil {
		return err
	}
	if err := config.WriteDefault(path, force); err != nil {
		return err
	}
	return printSuccess(cmd.OutOrStdout(), "Wrote "+path, map[string]string{"path": path})
}

func configShow(cmd *cobra.Command) error {
	cfg, path, err := loadSettings()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if MachineMode() {
		var doc map[string]interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return err
		}
		return WriteJSONSuccess(out, map[string]interface{}{"path": path, "config": doc})
	}

	source := path
	if source == "" {
		source = "defaults and environment (no config file)"
	}
	fmt.Fprintln(out, ui.MutedStyle().Render("# "+source))
	_, err = out.Write(data)
	return err
}

func configSet(cmd *cobra.Command, key, value string) error {
	path, err := targetConfigPath()
	if err != nil {
		return err
	}
	if err := config.Set(path, key, value); err != nil {
		return err
	}
	return printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Set %s = %s in %s", key, value, path),
		map[string]string{"path": path, "key": key, "value": value})
}
