package cli

import (
	"os"

	"github.com/charmbracelet/huh"

	"github.com/sentinel-lite/sentinel/internal/api"
	"github.com/sentinel-lite/sentinel/internal/errors"
)

// confirmFunc asks a yes/no question. Tests replace it.
var confirmFunc = promptConfirm

// selectStatusFunc asks which alert status to assign. Tests replace it.
var selectStatusFunc = promptStatus

// stdinIsTerminal is swapped in tests to simulate a TTY.
var stdinIsTerminal = func() bool { return isTerminal(os.Stdin) }

// confirmDestructive asks before a delete unless yes is set. Without a
// terminal to ask on, it refuses.
func confirmDestructive(title string, yes bool) (bool, error) {
	if yes {
		return true, nil
	}
	if MachineMode() || !stdinIsTerminal() {
		return false, errors.New(errors.ErrInput,
			"Refusing to delete without confirmation",
			"Pass --yes to confirm when not running interactively.")
	}
	return confirmFunc(title)
}

func promptConfirm(title string) (bool, error) {
	var confirm bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description("This cannot be undone").
				Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		return false, errors.WrapWithCode(err, errors.ErrInput,
			"Couldn't get your input",
			"Try again, or pass --yes.")
	}
	return confirm, nil
}

func promptStatus(current api.AlertStatus) (api.AlertStatus, error) {
	options := make([]huh.Option[api.AlertStatus], len(api.AlertStatuses))
	for i, s := range api.AlertStatuses {
		label := s.Label()
		if s == current {
			label += " (current)"
		}
		options[i] = huh.NewOption(label, s)
	}

	selected := api.AlertNew
	if current.Known() {
		selected = current
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[api.AlertStatus]().
				Title("Select alert status").
				Options(options...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrInput,
			"Couldn't get your selection",
			"Try again or use: sentinel alerts set-status <id> <status>")
	}
	return selected, nil
}
