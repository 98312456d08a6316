// Package banner renders the ABI break notice.
package banner

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const width = 76

// Render writes the five-line break notice for library to w. Colour is used
// only when w is a terminal.
func Render(w io.Writer, library, reportPath string) error {
	c := color.New(color.FgRed, color.Bold)
	if isTerminal(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	rule := strings.Repeat("~", width)
	for _, line := range []string{
		rule,
		"~ ERROR: ABI break detected in " + library,
		"~ Please check the report at file://" + reportPath,
		"~ On GitHub Actions, this report is also available in workflow artifacts",
		rule,
	} {
		if _, err := c.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
