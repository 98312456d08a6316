// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/abicheck/internal/core/domain"
)

// Executor runs external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes the command, streaming its output, and returns an error if it
	// cannot be started or exits with a non-zero status. A non-zero exit is
	// reported as a *domain.CommandError somewhere in the error chain.
	Run(ctx context.Context, cmd domain.Command) error

	// Output executes the command and returns its standard output.
	Output(ctx context.Context, cmd domain.Command) ([]byte, error)
}

// ToolChecker verifies that external tools are installed.
type ToolChecker interface {
	// CheckTools returns domain.ErrToolMissing naming every tool that is not on PATH.
	CheckTools(tools ...string) error
}
