package domain

import (
	"fmt"
	"strings"
)

// Command describes one external process invocation. Arguments are passed to the
// process as-is; nothing is interpreted by a shell.
type Command struct {
	// Name is the executable, looked up on PATH when not absolute.
	Name string
	// Args are the arguments following Name.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds variables layered over the process environment.
	Env map[string]string
}

// String renders the command for log messages.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// CommandError reports an external process that ran and exited with a non-zero status.
type CommandError struct {
	Command  Command
	ExitCode int
	Err      error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command.Name, e.ExitCode)
}

// Unwrap returns the underlying process error.
func (e *CommandError) Unwrap() error {
	return e.Err
}
