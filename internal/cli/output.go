package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/sentinel-lite/sentinel/internal/render"
	"github.com/sentinel-lite/sentinel/internal/ui"
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w interface{}) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w, or 0 when unknown.
func terminalWidth(w interface{}) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// printTable writes t styled for a terminal, or as plain aligned text when
// output is piped.
func printTable(w io.Writer, t render.Table) {
	if isTerminal(w) {
		fmt.Fprint(w, ui.RenderTable(t, ui.WithMaxWidth(terminalWidth(w))))
		return
	}
	fmt.Fprint(w, ui.RenderPlainTable(t))
}

// emit writes data as a JSON envelope in --json mode, otherwise the table.
func emit(w io.Writer, data interface{}, t render.Table) error {
	if MachineMode() {
		return WriteJSONSuccess(w, data)
	}
	printTable(w, t)
	return nil
}

// printSuccess writes a confirmation line, or the JSON envelope carrying data.
func printSuccess(w io.Writer, message string, data interface{}) error {
	if MachineMode() {
		return WriteJSONSuccess(w, data)
	}
	fmt.Fprintf(w, "%s %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), message)
	return nil
}

// withSpinner runs fn behind a spinner on stderr when it is a terminal and
// output isn't JSON.
func withSpinner(label string, fn func() error) error {
	if MachineMode() || !isTerminal(os.Stderr) {
		return fn()
	}
	s := ui.NewSpinner(os.Stderr, label)
	s.Start()
	err := fn()
	s.Stop()
	return err
}
