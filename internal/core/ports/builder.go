package ports

import "context"

// Builder configures and builds a native source tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type Builder interface {
	// Configure generates the build system for sourceDir inside buildDir.
	Configure(ctx context.Context, sourceDir, buildDir, cflags string) error

	// Build compiles a single target inside buildDir. jobs <= 0 leaves
	// parallelism to the build tool.
	Build(ctx context.Context, buildDir, target string, jobs int) error
}
