package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/alignby/internal/errors"
)

// reportError prints err to w. Labels are colored when w is a terminal.
// Errors that are not user facing get a pointer to the debug log.
func reportError(w io.Writer, cmd *cobra.Command, err error) {
	r := lipgloss.NewRenderer(w)
	label := r.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	hint := r.NewStyle().Faint(true)

	var usageErr *errors.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(w, label.Render(usageErr.Error()))
		usage := usageErr.Usage
		if usage == "" {
			usage = usageLine(cmd)
		}
		fmt.Fprintln(w, hint.Render(usage))
		return
	}

	var writeErr *errors.WriteError
	if errors.As(err, &writeErr) {
		cause := errors.Unwrap(writeErr)
		if cause == nil {
			cause = writeErr
		}
		fmt.Fprintf(w, "%s %v\n", label.Render("Error writing to stdout:"), cause)
		return
	}

	fmt.Fprintf(w, "%s %v\n", label.Render("Error:"), err)
	switch {
	case errors.Is(err, errors.ErrInvalidConfig):
		fmt.Fprintln(w, hint.Render("Fix the values above in the config file or the ALIGNBY_* environment variables."))
	case !errors.IsUserFacing(err):
		fmt.Fprintln(w, hint.Render("Run with --log-level debug for details."))
	}
}
