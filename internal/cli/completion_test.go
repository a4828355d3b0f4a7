package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBareRoot creates a root command with nothing registered.
func newBareRoot() *cobra.Command {
	return &cobra.Command{
		Use:   "sentinel",
		Short: "Terminal dashboard for the Sentinel One Lite API",
	}
}

func TestCompletionBashGeneration(t *testing.T) {
	cmd := newBareRoot()

	var buf bytes.Buffer
	err := cmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "# bash completion for sentinel")
	assert.Contains(t, output, "__sentinel_debug")
	assert.Contains(t, output, "complete -o default -F __start_sentinel sentinel")
}

func TestCompletionZshGeneration(t *testing.T) {
	cmd := newBareRoot()

	var buf bytes.Buffer
	err := cmd.GenZshCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "#compdef sentinel")
	assert.Contains(t, output, "_sentinel()")
}

func TestCompletionFishGeneration(t *testing.T) {
	cmd := newBareRoot()

	var buf bytes.Buffer
	err := cmd.GenFishCompletion(&buf, true)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "fish completion for sentinel")
	assert.Contains(t, output, "complete -c sentinel")
}

func TestCompletionPowershellGeneration(t *testing.T) {
	cmd := newBareRoot()

	var buf bytes.Buffer
	err := cmd.GenPowerShellCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, strings.ToLower(output), "powershell completion")
	assert.Contains(t, output, "Register-ArgumentCompleter")
}

func TestCompletionIncludesCommands(t *testing.T) {
	var buf bytes.Buffer
	err := rootCmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "__completeNoDesc", "should use dynamic completion")
	assert.Contains(t, output, "__start_sentinel", "should have start function")
	assert.Contains(t, output, "_sentinel_root_command", "should have root command function")

	// Commands with local flags get their own functions.
	assert.Contains(t, output, "_sentinel_alerts()")
	assert.Contains(t, output, "_sentinel_events()")
	assert.Contains(t, output, "_sentinel_completion()")
}

func TestCompletionCommandValidArgs(t *testing.T) {
	assert.Equal(t, []string{"bash", "zsh", "fish", "powershell"}, completionCmd.ValidArgs)
}

func TestCompletionCommand_WritesToOutput(t *testing.T) {
	isolateCLI(t)

	out, _, err := runCLI(t, "completion", "zsh")
	require.NoError(t, err)
	assert.Contains(t, out, "#compdef sentinel")

	_, _, err = runCLI(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestAlertStatusCompletion(t *testing.T) {
	got, directive := alertsSetStatusCmd.ValidArgsFunction(alertsSetStatusCmd, []string{"3"}, "")
	assert.Equal(t, []string{"new", "in_progress", "resolved", "false_positive"}, got)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	got, _ = alertsSetStatusCmd.ValidArgsFunction(alertsSetStatusCmd, nil, "")
	assert.Empty(t, got, "the id isn't completed")
}
