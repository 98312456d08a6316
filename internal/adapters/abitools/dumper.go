// Package abitools invokes abi-dumper and abi-compliance-checker.
package abitools

import (
	"context"

	"go.trai.ch/abicheck/internal/core/domain"
	"go.trai.ch/abicheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Dumper = (*Dumper)(nil)

// Dumper extracts ABI dumps from built shared objects.
type Dumper struct {
	executor ports.Executor
}

// NewDumper creates a new Dumper.
func NewDumper(executor ports.Executor) *Dumper {
	return &Dumper{executor: executor}
}

// Dump runs abi-dumper in req.WorkingDir.
func (d *Dumper) Dump(ctx context.Context, req ports.DumpRequest) error {
	cmd := domain.Command{
		Name: domain.ToolABIDumper,
		Args: []string{
			"-lver", req.Label.String(),
			req.Artifact,
			"-o", req.Output,
			"-public-headers", req.PublicHeaders,
		},
		Dir: req.WorkingDir,
	}

	if err := d.executor.Run(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(err, "abi-dumper failed"), "artifact", req.Artifact)
	}
	return nil
}
