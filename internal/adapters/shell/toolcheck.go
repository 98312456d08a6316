package shell

import (
	"os"
	"strings"

	"go.trai.ch/abicheck/internal/core/domain"
	"go.trai.ch/zerr"
)

// CheckTools verifies that each tool is on PATH and reports all missing ones at once.
func (e *Executor) CheckTools(tools ...string) error {
	env := os.Environ()

	var missing []string
	for _, tool := range tools {
		if _, err := lookPath(tool, env); err != nil {
			missing = append(missing, tool)
		}
	}

	if len(missing) == 0 {
		return nil
	}
	return zerr.With(
		zerr.Wrap(domain.ErrToolMissing, "missing "+strings.Join(missing, ", ")),
		"tools", missing,
	)
}
