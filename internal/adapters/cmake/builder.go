// Package cmake drives the CMake build of a revision snapshot.
package cmake

import (
	"context"
	"os"
	"strconv"

	"go.trai.ch/abicheck/internal/core/domain"
	"go.trai.ch/abicheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Builder = (*Builder)(nil)

// Builder configures and builds CMake projects.
type Builder struct {
	executor ports.Executor
}

// NewBuilder creates a new Builder.
func NewBuilder(executor ports.Executor) *Builder {
	return &Builder{executor: executor}
}

// Configure generates the build system for sourceDir inside buildDir, creating
// buildDir when needed. cflags is exported as CFLAGS for the configure step.
func (b *Builder) Configure(ctx context.Context, sourceDir, buildDir, cflags string) error {
	if err := os.MkdirAll(buildDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create build directory"), "dir", buildDir)
	}

	cmd := domain.Command{
		Name: domain.ToolCMake,
		Args: []string{sourceDir},
		Dir:  buildDir,
	}
	if cflags != "" {
		cmd.Env = map[string]string{"CFLAGS": cflags}
	}

	if err := b.executor.Run(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(err, "cmake configure failed"), "dir", sourceDir)
	}
	return nil
}

// Build builds a single target. jobs > 0 caps the build parallelism.
func (b *Builder) Build(ctx context.Context, buildDir, target string, jobs int) error {
	args := []string{"--build", ".", "--target", target}
	if jobs > 0 {
		args = append(args, "--parallel", strconv.Itoa(jobs))
	}

	if err := b.executor.Run(ctx, domain.Command{Name: domain.ToolCMake, Args: args, Dir: buildDir}); err != nil {
		return zerr.With(zerr.Wrap(err, "cmake build failed"), "target", target)
	}
	return nil
}
