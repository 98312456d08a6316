package abitools

import (
	"context"
	"errors"

	"go.trai.ch/abicheck/internal/core/domain"
	"go.trai.ch/abicheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Comparator = (*Comparator)(nil)

// Comparator compares two ABI dumps of the same library.
type Comparator struct {
	executor ports.Executor
}

// NewComparator creates a new Comparator.
func NewComparator(executor ports.Executor) *Comparator {
	return &Comparator{executor: executor}
}

// Compare runs abi-compliance-checker. A positive exit status marks the result
// incompatible. Failing to start the checker, cancellation and termination by a
// signal are errors.
func (c *Comparator) Compare(
	ctx context.Context,
	library, oldDump, newDump, reportPath string,
) (domain.CompareResult, error) {
	result := domain.CompareResult{
		Library:    library,
		ReportPath: reportPath,
		Compatible: true,
	}

	err := c.executor.Run(ctx, domain.Command{
		Name: domain.ToolABIComplianceChecker,
		Args: []string{
			"-l", library,
			"-old", oldDump,
			"-new", newDump,
			"-report-path", reportPath,
		},
	})
	if err == nil {
		return result, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, zerr.With(zerr.Wrap(ctxErr, "abi-compliance-checker interrupted"), "library", library)
	}

	// A negative exit code means the checker was killed by a signal and
	// never reached a verdict.
	var cmdErr *domain.CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		result.Compatible = false
		result.ExitCode = cmdErr.ExitCode
		return result, nil
	}
	return result, zerr.With(zerr.Wrap(err, "abi-compliance-checker failed"), "library", library)
}
