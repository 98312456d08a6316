package ports

import (
	"context"
	"io"

	"go.trai.ch/abicheck/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the steps of a run.
type Telemetry interface {
	// Record starts a new vertex and returns a context carrying it.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording.
	Close() error
}

// Vertex is a single recorded step.
type Vertex interface {
	// Stdout returns a writer for the step's standard output.
	Stdout() io.Writer
	// Stderr returns a writer for the step's error output.
	Stderr() io.Writer
	// Log records a message against the step.
	Log(level domain.LogLevel, msg string)
	// Complete marks the step finished, failed when err is non-nil.
	Complete(err error)
	// Cached marks the step as satisfied from cache.
	Cached()
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex stored in ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
