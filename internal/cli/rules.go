package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sentinel-lite/sentinel/internal/api"
	"github.com/sentinel-lite/sentinel/internal/errors"
	"github.com/sentinel-lite/sentinel/internal/render"
)

// RuleAddOptions holds options for the rules add command.
type RuleAddOptions struct {
	Name    string
	Type    string
	Pattern string
}

var (
	ruleAddOpts RuleAddOptions
	rulesYes    bool
)

var rulesCmd = &cobra.Command{
	Use:     "rules",
	Aliases: []string{"rule"},
	Short:   "List and manage detection rules",
	Long: `List the detection rules configured on the backend.

Examples:
  sentinel rules
  sentinel rules add "Reverse shell" --type process --pattern "nc -e"
  sentinel rules toggle 4
  sentinel rules delete 4 --yes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rulesList(cmd)
	},
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rulesList(cmd)
	},
}

var rulesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a rule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := ruleAddOpts
		opts.Name = args[0]
		return rulesAdd(cmd, opts)
	},
}

var rulesToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Enable a disabled rule or disable an enabled one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return rulesToggle(cmd, args[0])
	},
}

var rulesDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete a rule",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return rulesDelete(cmd, args[0], rulesYes)
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd, rulesAddCmd, rulesToggleCmd, rulesDeleteCmd)

	rulesAddCmd.Flags().StringVar(&ruleAddOpts.Type, "type", "", "rule type, e.g. process, file, network")
	rulesAddCmd.Flags().StringVar(&ruleAddOpts.Pattern, "pattern", "", "pattern the rule matches")
	_ = rulesAddCmd.MarkFlagRequired("type")
	_ = rulesAddCmd.MarkFlagRequired("pattern")

	rulesDeleteCmd.Flags().BoolVarP(&rulesYes, "yes", "y", false, "skip the confirmation prompt")
}

func rulesList(cmd *cobra.Command) error {
	client, _, err := connect()
	if err != nil {
		return err
	}

	var rules []api.Rule
	err = withSpinner("Loading rules", func() error {
		rules, err = client.Rules(cmd.Context())
		return err
	})
	if err != nil {
		return err
	}
	if rules == nil {
		rules = []api.Rule{}
	}
	return emit(cmd.OutOrStdout(), rules, render.Rules(rules))
}

func rulesAdd(cmd *cobra.Command, opts RuleAddOptions) error {
	if opts.Name == "" || opts.Type == "" || opts.Pattern == "" {
		return errors.New(errors.ErrInput,
			"Name, type and pattern are required",
			`Try: sentinel rules add "Reverse shell" --type process --pattern "nc -e"`)
	}

	client, _, err := connect()
	if err != nil {
		return err
	}

	rule, err := client.CreateRule(cmd.Context(), api.RuleInput{
		Name:       opts.Name,
		Definition: api.RuleDefinition{Type: opts.Type, Pattern: opts.Pattern},
	})
	if err != nil {
		return err
	}
	return printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Added rule '%s' (ID %s)", rule.Name, rule.ID), rule)
}

// rulesToggle reads the rule's current state from the backend and sends the
// opposite.
func rulesToggle(cmd *cobra.Command, arg string) error {
	id, err := parseID("rule", arg)
	if err != nil {
		return err
	}

	client, _, err := connect()
	if err != nil {
		return err
	}

	rules, err := client.Rules(cmd.Context())
	if err != nil {
		return err
	}
	current, ok := findRule(rules, id)
	if !ok {
		return errors.New(errors.ErrInput,
			fmt.Sprintf("Rule %s not found", id),
			"List rules with 'sentinel rules'.")
	}

	enable := !current.Enabled
	updated, err := client.UpdateRule(cmd.Context(), id, api.RuleUpdate{Enabled: api.Bool(enable)})
	if err != nil {
		return recordNotFound(err, "rule", id)
	}

	state := render.StateDisabled
	if enable {
		state = render.StateEnabled
	}
	return printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Rule %s is now %s", id, state), updated)
}

func findRule(rules []api.Rule, id api.ID) (api.Rule, bool) {
	for _, r := range rules {
		if r.ID.Same(id) {
			return r, true
		}
	}
	return api.Rule{}, false
}

func rulesDelete(cmd *cobra.Command, arg string, yes bool) error {
	id, err := parseID("rule", arg)
	if err != nil {
		return err
	}

	ok, err := confirmDestructive(fmt.Sprintf("Delete rule %s?", id), yes)
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
	if err := client.DeleteRule(cmd.Context(), id); err != nil {
		return recordNotFound(err, "rule", id)
	}
	return printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Deleted rule %s", id), map[string]interface{}{"id": id})
}
